package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/selkocards"
	sslog "github.com/fwojciec/selkocards/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDiagnostics(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var diags selkocards.Diagnostics
	diags.Infof("found %d paragraphs", 3)
	diags.Warnf("skipping paragraph %d", 2)

	sslog.LogDiagnostics(context.Background(), logger, diags)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=INFO")
	assert.Contains(t, lines[0], `msg="found 3 paragraphs"`)
	assert.Contains(t, lines[0], "seq=1")
	assert.Contains(t, lines[1], "level=WARN")
	assert.Contains(t, lines[1], `msg="skipping paragraph 2"`)
	assert.Contains(t, lines[1], "seq=2")
}

func TestLogDeck(t *testing.T) {
	t.Parallel()

	t.Run("logs summary after diagnostics", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		deck := &selkocards.Deck{
			Granularity: selkocards.GranularitySentence,
			Pair:        selkocards.DefaultLanguagePair,
			Current:     selkocards.English,
			Cards:       []selkocards.Card{{Front: "Hei.", Back: "Hi."}},
			Unpaired:    2,
			Skipped:     1,
		}
		deck.Diagnostics.Warnf("skipping paragraph 1")

		sslog.LogDeck(context.Background(), logger, deck)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		summary := lines[1]
		assert.Contains(t, summary, `msg="deck generated"`)
		assert.Contains(t, summary, "granularity=sentence")
		assert.Contains(t, summary, "pair=fi-en")
		assert.Contains(t, summary, "current=en")
		assert.Contains(t, summary, "cards=1")
		assert.Contains(t, summary, "unpaired=2")
		assert.Contains(t, summary, "skipped=1")
		assert.Contains(t, summary, "warnings=1")
	})

	t.Run("filters by handler level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		deck := &selkocards.Deck{Pair: selkocards.DefaultLanguagePair}
		deck.Diagnostics.Infof("found 0 paragraphs")
		deck.Diagnostics.Warnf("paragraph count mismatch")

		sslog.LogDeck(context.Background(), logger, deck)

		output := buf.String()
		assert.Contains(t, output, "paragraph count mismatch")
		assert.NotContains(t, output, "found 0 paragraphs")
		assert.NotContains(t, output, "deck generated")
	})
}
