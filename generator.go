package selkocards

import (
	"context"
	"fmt"
	"time"
)

// Deck is the result of one export: the cards plus everything needed to
// serialize them and to explain what was left out.
type Deck struct {
	Granularity Granularity
	Pair        LanguagePair

	// Current is the language of the page the export started from.
	Current Language

	Cards    []Card
	Unpaired int
	Skipped  int

	Diagnostics Diagnostics
	Metadata    *Metadata
}

// Empty reports whether the export produced no cards. This usually means the
// page is untranslated or structured differently from its translation and
// is not an error.
func (d *Deck) Empty() bool {
	return len(d.Cards) == 0
}

// Generator runs the export pipeline for one page: locate both articles,
// segment them, pair the segments. A Generator holds no per-export state
// and may be reused.
type Generator struct {
	Config  Config
	Fetcher Fetcher
	Parser  PageParser

	// Detector is optional. When set it fills in a missing page language
	// and flags articles whose text does not match their declared language.
	Detector LanguageDetector

	// Now returns the export time. Defaults to time.Now.
	Now func() time.Time
}

// NewGenerator returns a Generator with the given collaborators.
func NewGenerator(cfg Config, fetcher Fetcher, parser PageParser) *Generator {
	return &Generator{
		Config:  cfg,
		Fetcher: fetcher,
		Parser:  parser,
		Now:     time.Now,
	}
}

// Generate builds a deck from current, the page being viewed, at the given
// granularity. The translated page is found through current's translation
// link and fetched; that fetch is the only blocking call.
//
// Returns EINVALID for an unknown granularity or a page language outside the
// configured pair, and ENOTFOUND when either article or the translation link
// is missing. A deck without cards is returned without error.
func (g *Generator) Generate(ctx context.Context, current *Page, level Granularity) (*Deck, error) {
	level, err := ParseGranularity(string(level))
	if err != nil {
		return nil, err
	}
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	if current == nil || current.Article == nil {
		return nil, Errorf(ENOTFOUND, "article content not found")
	}

	pair := g.Config.Pair
	deck := &Deck{Granularity: level, Pair: pair}

	lang := g.currentLanguage(current, &deck.Diagnostics)
	other, err := pair.Other(lang)
	if err != nil {
		return nil, err
	}
	deck.Current = lang

	link := current.Translations[other]
	if link == "" {
		return nil, Errorf(ENOTFOUND, "translation link not found")
	}

	html, err := g.Fetcher.Fetch(ctx, link)
	if err != nil {
		if ErrorCode(err) == ENOTFOUND {
			return nil, Errorf(ENOTFOUND, "failed to fetch translation: %s", ErrorMessage(err))
		}
		return nil, fmt.Errorf("failed to fetch translation: %w", err)
	}

	translated, err := g.Parser.Parse(html, link)
	if err != nil {
		return nil, err
	}
	if translated.Article == nil {
		return nil, Errorf(ENOTFOUND, "translation article not found")
	}

	g.checkLanguage(current.Article, lang, &deck.Diagnostics)
	g.checkLanguage(translated.Article, other, &deck.Diagnostics)

	front, back := current.Article, translated.Article
	if lang == pair.Secondary {
		front, back = back, front
	}

	pairer := &Pairer{Pair: pair, Current: lang}
	var result *PairResult
	switch level {
	case GranularitySentence:
		result = pairer.PairSentences(SegmentParagraphs(front), SegmentParagraphs(back))
	case GranularityParagraph:
		result = pairer.PairParagraphs(SegmentParagraphs(front), SegmentParagraphs(back))
	case GranularitySection:
		result = pairer.PairSections(SegmentSections(front), SegmentSections(back))
	}

	deck.Cards = result.Cards
	deck.Unpaired = result.Unpaired
	deck.Skipped = result.Skipped
	deck.Diagnostics = append(deck.Diagnostics, result.Diagnostics...)
	deck.Metadata = NewMetadata(current, g.Config.ArchiveURL, g.now())

	return deck, nil
}

// currentLanguage resolves the viewed page's language: the declared one,
// else the detected one, else the pair's primary language.
func (g *Generator) currentLanguage(page *Page, diags *Diagnostics) Language {
	if page.Lang != "" {
		return page.Lang
	}
	if g.Detector != nil {
		if lang, ok := g.Detector.DetectLanguage(page.Article.Text()); ok {
			diags.Infof("page declares no language, detected %s", lang)
			return lang
		}
	}
	return g.Config.Pair.Primary
}

func (g *Generator) checkLanguage(a *Article, declared Language, diags *Diagnostics) {
	if g.Detector == nil {
		return
	}
	detected, ok := g.Detector.DetectLanguage(a.Text())
	if ok && detected != declared {
		diags.Warnf("%s article text looks like %s, cards may be mispaired", declared, detected)
	}
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}
