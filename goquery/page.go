// Package goquery locates article content in archive pages and strips
// non-prose markup from it, using github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/selkocards"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// Default selectors for the archive's Hugo theme.
const (
	DefaultContentSelector     = "article.prose"
	DefaultTranslationSelector = "aside a[hreflang]"
)

// Ensure Parser implements selkocards.PageParser at compile time.
var _ selkocards.PageParser = (*Parser)(nil)

// Parser builds selkocards.Page values from archive HTML.
type Parser struct {
	// ContentSelector locates the article root. The first match is used.
	ContentSelector string

	// TranslationSelector locates links to translated versions of the
	// page. Each match must carry an hreflang attribute.
	TranslationSelector string
}

// NewParser creates a Parser using the archive's selectors.
func NewParser() *Parser {
	return &Parser{
		ContentSelector:     DefaultContentSelector,
		TranslationSelector: DefaultTranslationSelector,
	}
}

// Parse parses html fetched from pageURL.
func (p *Parser) Parse(rawHTML string, pageURL string) (*selkocards.Page, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, selkocards.Errorf(selkocards.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, selkocards.Errorf(selkocards.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &selkocards.Page{
		URL:          pageURL,
		Lang:         selkocards.ParseLanguage(doc.Find("html").AttrOr("lang", "")),
		Title:        normalize(doc.Find("title").First().Text()),
		Translations: make(map[selkocards.Language]string),
	}

	doc.Find(p.TranslationSelector).Each(func(_ int, link *goquery.Selection) {
		lang := selkocards.ParseLanguage(link.AttrOr("hreflang", ""))
		href := strings.TrimSpace(link.AttrOr("href", ""))
		if lang == "" || href == "" {
			return
		}
		if _, ok := page.Translations[lang]; ok {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		page.Translations[lang] = base.ResolveReference(ref).String()
	})

	root := doc.Find(p.ContentSelector).First()
	if root.Length() == 0 {
		return page, nil
	}

	page.Heading = normalize(root.Find("h1").First().Text())
	page.Article = extractArticle(root, page.Lang)

	return page, nil
}

// extractArticle builds the content tree of an article root.
func extractArticle(root *goquery.Selection, lang selkocards.Language) *selkocards.Article {
	article := &selkocards.Article{Lang: lang}

	root.Children().Each(func(_ int, child *goquery.Selection) {
		article.Blocks = append(article.Blocks, classify(child))
	})

	root.Find("p").Each(func(_ int, p *goquery.Selection) {
		article.Paragraphs = append(article.Paragraphs, text(Clean(p)))
	})

	return article
}

// classify turns a direct child of the article root into a block.
func classify(sel *goquery.Selection) selkocards.Block {
	node := sel.Get(0)
	if node == nil || node.Type != html.ElementNode {
		return selkocards.Block{Kind: selkocards.BlockOther}
	}

	if level := headingLevel(node.DataAtom); level > 0 {
		return selkocards.Block{
			Kind:  selkocards.BlockHeading,
			Level: level,
			Text:  text(sel),
		}
	}
	if node.DataAtom == atom.P {
		return selkocards.Block{
			Kind: selkocards.BlockParagraph,
			Text: text(Clean(sel)),
		}
	}
	return selkocards.Block{Kind: selkocards.BlockOther}
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

// text returns the NFC-normalized text content of sel, untrimmed.
func text(sel *goquery.Selection) string {
	return norm.NFC.String(sel.Text())
}

func normalize(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
