package goquery

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Selectors for elements that never carry article prose.
const (
	mediaSelector  = "img, picture, figure, svg, audio, video, iframe, embed, object, button"
	playerSelector = `[class*="player"], [class*="audio"], [class*="video"], [data-player], [data-audio]`
)

var (
	// linkVerbRe matches links opening with an "open/view" verb in Finnish or English.
	linkVerbRe = regexp.MustCompile(`(?i)^(avaa|open|view|katselu|kuvi)`)

	// imageViewerRe matches image viewer phrasing such as "Avaa kuvien katselu".
	imageViewerRe = regexp.MustCompile(`(?i)kuvi|image|view|katselu`)
)

// Clean returns a deep copy of sel with non-prose elements removed:
// media, buttons, audio/video players and links that only open an image
// viewer. sel itself is not modified.
func Clean(sel *goquery.Selection) *goquery.Selection {
	clone := sel.Clone()

	// Links are judged before media removal so image-wrapping anchors are
	// still recognisable.
	clone.Find("a").Each(func(_ int, link *goquery.Selection) {
		if isNonProseLink(link) {
			link.Remove()
		}
	})
	clone.Find(mediaSelector).Remove()
	clone.Find(playerSelector).Remove()

	return clone
}

// isNonProseLink reports whether an anchor is an image viewer trigger
// rather than part of a sentence.
func isNonProseLink(link *goquery.Selection) bool {
	text := strings.TrimSpace(link.Text())
	if utf8.RuneCountInString(text) >= 10 && !linkVerbRe.MatchString(text) {
		return false
	}
	wrapsImage := link.Find("img").Length() > 0 && utf8.RuneCountInString(stripSpace(text)) < 20
	return wrapsImage || imageViewerRe.MatchString(text)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
