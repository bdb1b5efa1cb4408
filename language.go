package selkocards

import "strings"

// Language is a lowercase ISO 639-1 code such as "fi" or "en".
type Language string

// Languages published by the archive.
const (
	Finnish Language = "fi"
	English Language = "en"
)

// ParseLanguage normalizes a language tag ("fi-FI", "EN") to its base code.
func ParseLanguage(tag string) Language {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return Language(tag)
}

// LanguagePair fixes which language occupies which side of a card.
// Primary is always the front, regardless of the page being viewed.
type LanguagePair struct {
	Primary   Language
	Secondary Language
}

// DefaultLanguagePair puts Finnish on the front and English on the back.
var DefaultLanguagePair = LanguagePair{Primary: Finnish, Secondary: English}

// Validate returns an error if the pair is not usable.
func (p LanguagePair) Validate() error {
	if p.Primary == "" || p.Secondary == "" {
		return Errorf(EINVALID, "language pair requires two languages")
	}
	if p.Primary == p.Secondary {
		return Errorf(EINVALID, "language pair requires two different languages, got %q twice", p.Primary)
	}
	return nil
}

// Contains reports whether lang is one of the pair's languages.
func (p LanguagePair) Contains(lang Language) bool {
	return lang == p.Primary || lang == p.Secondary
}

// Other returns the counterpart of lang within the pair.
// Returns EINVALID if lang does not belong to the pair.
func (p LanguagePair) Other(lang Language) (Language, error) {
	switch lang {
	case p.Primary:
		return p.Secondary, nil
	case p.Secondary:
		return p.Primary, nil
	}
	return "", Errorf(EINVALID, "language %q is not part of the %s pair", lang, p.Code())
}

// Code returns the pair in "front-back" form, e.g. "fi-en".
func (p LanguagePair) Code() string {
	return string(p.Primary) + "-" + string(p.Secondary)
}

// LanguageDetector guesses the language of a piece of text.
type LanguageDetector interface {
	// DetectLanguage returns the detected language and whether detection
	// was reliable enough to be used.
	DetectLanguage(text string) (Language, bool)
}
