package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/selkocards"
)

// Ensure LoggingParser implements selkocards.PageParser.
var _ selkocards.PageParser = (*LoggingParser)(nil)

// LoggingParser wraps a PageParser with debug logging of what was located.
type LoggingParser struct {
	next   selkocards.PageParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next selkocards.PageParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the located content.
func (p *LoggingParser) Parse(html string, pageURL string) (page *selkocards.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", pageURL,
			"duration", time.Since(begin),
		}
		if page != nil {
			attrs = append(attrs,
				"lang", string(page.Lang),
				"article", page.Article != nil,
				"translations", len(page.Translations),
			)
			if page.Article != nil {
				attrs = append(attrs,
					"blocks", len(page.Article.Blocks),
					"paragraphs", len(page.Article.Paragraphs),
				)
			}
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		p.logger.Debug("parse page", attrs...)
	}(time.Now())
	return p.next.Parse(html, pageURL)
}
