package selkocards

import "strings"

// BlockKind classifies a direct child of the article root.
type BlockKind int

// Block kinds. Only headings and paragraphs carry prose.
const (
	BlockOther BlockKind = iota
	BlockHeading
	BlockParagraph
)

// Block is one block-level child of the article root.
type Block struct {
	Kind BlockKind

	// Level is the heading level (1-6) for headings, 0 otherwise.
	Level int

	// Text is the cleaned text content, not yet trimmed or filtered.
	Text string
}

// Article is the content tree of one language version of a story.
// It is built per export and never shared between exports.
type Article struct {
	Lang Language

	// Blocks are the direct children of the article root in document order.
	Blocks []Block

	// Paragraphs holds the cleaned text of every paragraph element under the
	// root, including nested ones, in document order.
	Paragraphs []string
}

// Text joins every paragraph of the article with blank lines.
func (a *Article) Text() string {
	if a == nil {
		return ""
	}
	return strings.Join(a.Paragraphs, "\n\n")
}

// Page is a parsed archive page.
type Page struct {
	URL  string
	Lang Language

	// Title is the document title; Heading is the article's h1.
	Title   string
	Heading string

	// Article is nil when the page has no article root.
	Article *Article

	// Translations maps language to the absolute URL of the translated page.
	Translations map[Language]string
}

// PageParser builds a Page from raw HTML.
type PageParser interface {
	// Parse parses html fetched from pageURL. A page without an article
	// root is not an error; Page.Article is nil instead.
	Parse(html string, pageURL string) (*Page, error)
}
