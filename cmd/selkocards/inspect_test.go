package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/selkocards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Inspect(t *testing.T) {
	t.Parallel()

	t.Run("summarizes an exported deck", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deck.txt")
		deck := "#separator:tab\n#html:true\n#tags column:3\n\n" +
			"Yksi<br>rivi\tOne\tselkouutiset fi-en paragraph 2026-01-20\n" +
			strings.Repeat("Pitkä ", 20) + "\tLong\tselkouutiset fi-en paragraph 2026-01-20\n" +
			"Kolme\tThree\tselkouutiset fi-en paragraph 2026-01-20\n"
		require.NoError(t, os.WriteFile(path, []byte(deck), 0o600))
		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{"inspect", "-C", emptyConfig(t), "--no-detect", "-n", "2", path}, &stdout, &stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "3 cards\n")
		assert.Contains(t, output, "tags: selkouutiset fi-en paragraph 2026-01-20\n")
		assert.Contains(t, output, "1. Yksi rivi\n")
		assert.Contains(t, output, "2. Pitkä Pitkä")
		assert.Contains(t, output, "...\n")
		assert.NotContains(t, output, "3. Kolme")
	})

	t.Run("counts cards starting with a hash", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deck.txt")
		deck := &selkocards.Deck{
			Granularity: selkocards.GranularitySentence,
			Pair:        selkocards.DefaultLanguagePair,
			Cards: []selkocards.Card{
				{Front: "#MeToo-kampanja puhutti taas.", Back: "#MeToo was discussed again."},
				{Front: "Sää on kylmä.", Back: "The weather is cold."},
			},
			Metadata: &selkocards.Metadata{Title: "Selkouutiset", GeneratedDate: "2026-01-20"},
		}
		payload := selkocards.NewTSVWriter(selkocards.DefaultConfig()).Format(deck)
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{"inspect", "-C", emptyConfig(t), path}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "2 cards\n")
		assert.Contains(t, stdout.String(), "1. #MeToo-kampanja puhutti taas.\n")
	})

	t.Run("rejects malformed rows", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deck.txt")
		require.NoError(t, os.WriteFile(path, []byte("only one field\n"), 0o600))
		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{"inspect", "-C", emptyConfig(t), "--no-detect", path}, &stdout, &stderr)

		assert.Equal(t, selkocards.EINVALID, selkocards.ErrorCode(err))
		assert.Contains(t, stderr.String(), "expected 3 tab-separated fields")
	})
}
