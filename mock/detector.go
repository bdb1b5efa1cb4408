package mock

import "github.com/fwojciec/selkocards"

var _ selkocards.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of selkocards.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) (selkocards.Language, bool)
}

func (d *LanguageDetector) DetectLanguage(text string) (selkocards.Language, bool) {
	return d.DetectLanguageFn(text)
}
