package selkocards

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Paragraph and sentence thresholds. These were tuned against the archive's
// markup and are kept literal.
const (
	MinParagraphLength  = 20
	LongParagraphLength = 60
	MaxCaptionLength    = 50
	MinSentenceLength   = 15
)

var (
	// creditRe matches photo credits such as "Kuva: Matti Meikäläinen".
	creditRe = regexp.MustCompile(`(?i)^(kuva|photo|image|copyright|©|photographer|valokuva|foto):`)

	// creditClauseRe matches the credit half of a "Name. Kuva Yle" caption.
	creditClauseRe = regexp.MustCompile(`(?i)^\s*(kuva|photo|image|foto|valokuva)`)

	markdownImageRe  = regexp.MustCompile(`^!\[.*?\]\(.*?\)`)
	imageExtensionRe = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|svg|webp)`)
	terminalRe       = regexp.MustCompile(`[.!?]`)
	clauseSplitRe    = regexp.MustCompile(`[.!?]+`)

	// sentenceBoundaryRe matches terminal punctuation, whitespace and the
	// uppercase letter opening the next sentence.
	sentenceBoundaryRe = regexp.MustCompile(`[.!?][\s\p{Zs}]+[A-ZÄÖÅ]`)

	timeCodeRe       = regexp.MustCompile(`^\d+:\d+$`)
	listenTimeCodeRe = regexp.MustCompile(`(?i)^(kuuntele|listen|avaa|open)\s*\d+:\d+`)
	imageViewerRe    = regexp.MustCompile(`(?i)^(avaa kuvi|open image|view)`)
)

// Section is a heading together with the paragraphs that follow it.
// Content before the first heading has an empty heading.
type Section struct {
	Heading    string
	Paragraphs []string
}

// SegmentParagraphs returns the prose paragraphs of an article in document
// order. Captions, credits and embedded media artifacts are dropped.
func SegmentParagraphs(a *Article) []string {
	if a == nil {
		return nil
	}
	var paragraphs []string
	for _, raw := range a.Paragraphs {
		text := strings.TrimSpace(raw)
		if KeepParagraph(text) {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}

// SegmentSections groups the article's direct children into sections.
// A heading of level 2-6 opens a new section; paragraphs passing the
// paragraph filter are appended to the current one. Sections with neither a
// heading nor content are dropped.
func SegmentSections(a *Article) []Section {
	if a == nil {
		return nil
	}

	var sections []Section
	current := Section{}
	flush := func() {
		if current.Heading != "" || len(current.Paragraphs) > 0 {
			sections = append(sections, current)
		}
	}

	for _, block := range a.Blocks {
		switch block.Kind {
		case BlockHeading:
			if block.Level < 2 || block.Level > 6 {
				continue
			}
			flush()
			current = Section{Heading: strings.TrimSpace(block.Text)}
		case BlockParagraph:
			text := strings.TrimSpace(block.Text)
			if KeepParagraph(text) {
				current.Paragraphs = append(current.Paragraphs, text)
			}
		}
	}
	flush()

	return sections
}

// KeepParagraph reports whether trimmed paragraph text is prose worth a card.
func KeepParagraph(text string) bool {
	if creditRe.MatchString(text) {
		return false
	}
	if hasMarkdownImage(text) || hasImageData(text) {
		return false
	}

	// Captions: "Matti Meikäläinen" or "Matti Meikäläinen. Kuva: Yle".
	clauses := splitClauses(text)
	length := utf8.RuneCountInString(text)
	if len(clauses) == 1 && length < MaxCaptionLength {
		return false
	}
	if len(clauses) == 2 && creditClauseRe.MatchString(clauses[1]) {
		return false
	}

	if length < MinParagraphLength {
		return false
	}
	return length >= LongParagraphLength || terminalRe.MatchString(text)
}

// SplitSentences splits paragraph text into sentences. A boundary is
// terminal punctuation followed by whitespace and an uppercase letter.
// Fragments that are too short, time codes, image references or credits
// are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	for _, s := range splitAtBoundaries(text) {
		s = strings.TrimSpace(s)
		if keepSentence(s) {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func keepSentence(s string) bool {
	if utf8.RuneCountInString(s) < MinSentenceLength {
		return false
	}
	if timeCodeRe.MatchString(s) || listenTimeCodeRe.MatchString(s) {
		return false
	}
	if imageViewerRe.MatchString(s) || creditRe.MatchString(s) {
		return false
	}
	return !hasMarkdownImage(s) && !hasImageData(s)
}

func splitAtBoundaries(text string) []string {
	var parts []string
	start := 0
	for _, loc := range sentenceBoundaryRe.FindAllStringIndex(text, -1) {
		// The match ends with the first letter of the next sentence.
		_, size := utf8.DecodeLastRuneInString(text[loc[0]:loc[1]])
		parts = append(parts, text[start:loc[0]+1])
		start = loc[1] - size
	}
	return append(parts, text[start:])
}

func splitClauses(text string) []string {
	var clauses []string
	for _, c := range clauseSplitRe.Split(text, -1) {
		if strings.TrimSpace(c) != "" {
			clauses = append(clauses, c)
		}
	}
	return clauses
}

func hasMarkdownImage(s string) bool {
	return markdownImageRe.MatchString(s) || (strings.Contains(s, "![") && strings.Contains(s, "]("))
}

func hasImageData(s string) bool {
	return strings.Contains(s, "data:image/") || strings.Contains(s, "base64") || imageExtensionRe.MatchString(s)
}
