// Package lingua implements selkocards.LanguageDetector with
// github.com/pemistahl/lingua-go.
package lingua

import (
	"strings"

	"github.com/fwojciec/selkocards"
	"github.com/pemistahl/lingua-go"
)

// DefaultMinimumRelativeDistance keeps detection conservative: short or
// mixed texts are reported as undetected rather than guessed.
const DefaultMinimumRelativeDistance = 0.1

// Ensure Detector implements selkocards.LanguageDetector at compile time.
var _ selkocards.LanguageDetector = (*Detector)(nil)

// Detector detects which of a fixed set of languages a text is written in.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector restricted to langs.
// Returns EINVALID for fewer than two languages or unsupported codes.
func NewDetector(langs ...selkocards.Language) (*Detector, error) {
	if len(langs) < 2 {
		return nil, selkocards.Errorf(selkocards.EINVALID, "language detection needs at least two languages")
	}

	linguaLangs := make([]lingua.Language, 0, len(langs))
	for _, l := range langs {
		iso := lingua.GetIsoCode639_1FromValue(strings.ToUpper(string(l)))
		if iso == lingua.UnknownIsoCode639_1 {
			return nil, selkocards.Errorf(selkocards.EINVALID, "unsupported language %q", l)
		}
		linguaLangs = append(linguaLangs, lingua.GetLanguageFromIsoCode639_1(iso))
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(linguaLangs...).
		WithMinimumRelativeDistance(DefaultMinimumRelativeDistance).
		Build()

	return &Detector{detector: detector}, nil
}

// DetectLanguage returns the language of text and whether it could be
// determined.
func (d *Detector) DetectLanguage(text string) (selkocards.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return selkocards.Language(strings.ToLower(lang.IsoCode639_1().String())), true
}
