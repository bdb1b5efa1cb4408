package mock

import "github.com/fwojciec/selkocards"

var _ selkocards.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of selkocards.PageParser.
type PageParser struct {
	ParseFn func(html string, pageURL string) (*selkocards.Page, error)
}

func (p *PageParser) Parse(html string, pageURL string) (*selkocards.Page, error) {
	return p.ParseFn(html, pageURL)
}
