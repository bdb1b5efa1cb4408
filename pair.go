package selkocards

import "strings"

// Sentence alignment thresholds. A paragraph pair whose sentence counts
// differ by more than MaxSentenceRatio and by more than MaxSentenceDiff is
// considered misaligned and skipped entirely.
const (
	MaxSentenceRatio = 2.5
	MaxSentenceDiff  = 2

	// MaxParagraphRatio is the paragraph count ratio above which sentence
	// pairing warns about diverging article structures.
	MaxParagraphRatio = 1.5
)

// PairResult is the outcome of pairing two segmentations.
type PairResult struct {
	Cards []Card

	// Unpaired counts units of the longer side that had no counterpart.
	// For sentence pairing this includes the sentences of trailing
	// paragraphs; skipped paragraphs are counted in Skipped instead.
	Unpaired int

	// Skipped counts paragraph pairs dropped for severe sentence mismatch.
	Skipped int

	Diagnostics Diagnostics
}

// Pairer aligns same-index units of two segmentations. The front slice is
// always the Pair's primary language and the back slice its secondary, so
// decks come out the same whichever language the page was viewed in.
//
// Pairing is positional: no lexical matching is attempted.
type Pairer struct {
	Pair LanguagePair

	// Current is the language of the page being viewed. Section headings
	// are taken from its side. Defaults to the front side.
	Current Language
}

// PairParagraphs pairs paragraphs by index up to the shorter side.
func (p *Pairer) PairParagraphs(front, back []string) *PairResult {
	r := &PairResult{}
	r.Diagnostics.Infof("found %d paragraphs in %s, %d in %s", len(front), p.frontLabel(), len(back), p.backLabel())
	if len(front) != len(back) {
		r.Diagnostics.Warnf("paragraph count mismatch (%d vs %d), some content may be missing from cards", len(front), len(back))
	}

	n := min(len(front), len(back))
	for i := 0; i < n; i++ {
		if front[i] == "" || back[i] == "" {
			continue
		}
		r.Cards = append(r.Cards, Card{
			Front:   front[i],
			Back:    back[i],
			Context: CardContext{Paragraph: i + 1},
		})
	}
	r.Unpaired = absDiff(len(front), len(back))

	return r
}

// PairSentences pairs sentences within each same-index paragraph pair.
// A paragraph pair with a severe sentence count mismatch is skipped.
func (p *Pairer) PairSentences(front, back []string) *PairResult {
	r := &PairResult{}
	r.Diagnostics.Infof("found %d paragraphs in %s, %d in %s", len(front), p.frontLabel(), len(back), p.backLabel())
	if ratio(len(front), len(back)) > MaxParagraphRatio {
		r.Diagnostics.Warnf("paragraph count mismatch (%d vs %d), this may indicate parsing issues or different article structures", len(front), len(back))
	}

	n := min(len(front), len(back))
	for i := 0; i < n; i++ {
		fs := SplitSentences(front[i])
		bs := SplitSentences(back[i])

		if Misaligned(len(fs), len(bs)) {
			r.Diagnostics.Warnf("skipping paragraph %d due to severe sentence count mismatch (%d vs %d)", i+1, len(fs), len(bs))
			r.Skipped++
			continue
		}

		m := min(len(fs), len(bs))
		for j := 0; j < m; j++ {
			r.Cards = append(r.Cards, Card{
				Front:   fs[j],
				Back:    bs[j],
				Context: CardContext{Paragraph: i + 1, Sentence: j + 1},
			})
		}

		if d := absDiff(len(fs), len(bs)); d > 0 {
			r.Diagnostics.Warnf("%d sentence(s) not paired in paragraph %d", d, i+1)
			r.Unpaired += d
		}
	}

	if d := absDiff(len(front), len(back)); d > 0 {
		r.Diagnostics.Warnf("%d paragraph(s) not paired", d)
		longer := front
		if len(back) > len(front) {
			longer = back
		}
		for _, para := range longer[n:] {
			r.Unpaired += len(SplitSentences(para))
		}
	}
	r.Diagnostics.Infof("paragraphs processed: %d, cards generated: %d", n, len(r.Cards))
	if r.Skipped > 0 {
		r.Diagnostics.Warnf("paragraphs skipped due to alignment issues: %d", r.Skipped)
	}

	return r
}

// PairSections pairs sections by index. Each side's paragraphs are joined
// with a blank line into one block of text.
func (p *Pairer) PairSections(front, back []Section) *PairResult {
	r := &PairResult{}
	r.Diagnostics.Infof("found %d sections in %s, %d in %s", len(front), p.frontLabel(), len(back), p.backLabel())

	headings := front
	if p.Current != "" && p.Current == p.Pair.Secondary {
		headings = back
	}

	n := min(len(front), len(back))
	for i := 0; i < n; i++ {
		f := strings.Join(front[i].Paragraphs, "\n\n")
		b := strings.Join(back[i].Paragraphs, "\n\n")
		if f == "" || b == "" {
			continue
		}
		r.Cards = append(r.Cards, Card{
			Front: f,
			Back:  b,
			Context: CardContext{
				Section:       headings[i].Heading,
				SectionNumber: i + 1,
			},
		})
	}

	if d := absDiff(len(front), len(back)); d > 0 {
		r.Diagnostics.Warnf("section count mismatch (%d vs %d), %d section(s) not paired", len(front), len(back), d)
		r.Unpaired = d
	}

	return r
}

// Misaligned reports whether two sentence counts diverge too far to pair:
// the larger exceeds the smaller by a ratio above MaxSentenceRatio and by
// more than MaxSentenceDiff sentences.
func Misaligned(a, b int) bool {
	return ratio(a, b) > MaxSentenceRatio && absDiff(a, b) > MaxSentenceDiff
}

func (p *Pairer) frontLabel() string {
	if p.Pair.Primary == "" {
		return "front"
	}
	return string(p.Pair.Primary)
}

func (p *Pairer) backLabel() string {
	if p.Pair.Secondary == "" {
		return "back"
	}
	return string(p.Pair.Secondary)
}

// ratio divides the larger count by the smaller, treating zero as one.
func ratio(a, b int) float64 {
	return float64(max(a, b)) / float64(max(min(a, b), 1))
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
