package lingua_test

import (
	"testing"

	"github.com/fwojciec/selkocards"
	"github.com/fwojciec/selkocards/lingua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetector(t *testing.T) {
	t.Parallel()

	t.Run("requires two languages", func(t *testing.T) {
		t.Parallel()

		_, err := lingua.NewDetector(selkocards.Finnish)

		require.Error(t, err)
		assert.Equal(t, selkocards.EINVALID, selkocards.ErrorCode(err))
	})

	t.Run("rejects unknown language codes", func(t *testing.T) {
		t.Parallel()

		_, err := lingua.NewDetector(selkocards.Finnish, "xx")

		require.Error(t, err)
		assert.Equal(t, selkocards.EINVALID, selkocards.ErrorCode(err))
	})
}

func TestDetector_DetectLanguage(t *testing.T) {
	t.Parallel()

	detector, err := lingua.NewDetector(selkocards.Finnish, selkocards.English)
	require.NoError(t, err)

	t.Run("detects Finnish", func(t *testing.T) {
		t.Parallel()

		lang, ok := detector.DetectLanguage("Suomen hallitus päätti tänään, että kouluissa aloitetaan uusi kokeilu ensi syksynä.")

		require.True(t, ok)
		assert.Equal(t, selkocards.Finnish, lang)
	})

	t.Run("detects English", func(t *testing.T) {
		t.Parallel()

		lang, ok := detector.DetectLanguage("The Finnish government decided today that schools will start a new trial next autumn.")

		require.True(t, ok)
		assert.Equal(t, selkocards.English, lang)
	})

	t.Run("reports empty text as undetected", func(t *testing.T) {
		t.Parallel()

		_, ok := detector.DetectLanguage("   ")

		assert.False(t, ok)
	})
}
