package selkocards

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"
)

// BreakMarker replaces newlines inside a field.
const BreakMarker = "<br>"

// HashEntity replaces a "#" at the start of a field. Decks are exported
// with #html:true, so Anki shows it as "#".
const HashEntity = "&#35;"

// Card styling, kept in line with the archive's theme.
const (
	headerStyle   = "margin-bottom: 1em; padding-bottom: 0.5em; border-bottom: 2px solid #a8763e; font-size: 0.85em; color: #666;"
	questionStyle = "margin-bottom: 1em; padding: 0.75em; background-color: #fff5f5; border-left: 3px solid #ff6b6b; color: #c92a2a;"
	answerStyle   = "margin-bottom: 1em; padding: 0.75em; background-color: #f0f7ff; border-left: 3px solid #4c6ef5; color: #1864ab;"
	footerStyle   = "margin-top: 1.5em; padding-top: 1em; border-top: 1px solid #ccc; font-size: 0.75em; color: #666;"
	lineStyle     = "margin-bottom: 0.5em;"
	linksStyle    = "margin-top: 0.5em; padding-top: 0.5em; border-top: 1px solid #eee; font-size: 0.9em;"
	linkStyle     = "color: #a8763e;"
)

// TSVWriter renders decks in Anki's tab-separated import format:
// directive comments, a blank line, then one "front<TAB>back<TAB>tags"
// row per card.
type TSVWriter struct {
	Config Config
}

// NewTSVWriter returns a writer using cfg for tags and card styling.
func NewTSVWriter(cfg Config) *TSVWriter {
	return &TSVWriter{Config: cfg}
}

// Format renders deck as a single payload.
func (w *TSVWriter) Format(deck *Deck) string {
	var b strings.Builder
	_ = w.Write(&b, deck)
	return b.String()
}

// Write renders deck to out.
func (w *TSVWriter) Write(out io.Writer, deck *Deck) error {
	meta := deck.Metadata
	if meta == nil {
		meta = &Metadata{}
	}

	lines := []string{
		"#separator:tab",
		"#html:true",
		"#tags column:3",
	}
	if title := singleLine(meta.Title); title != "" {
		lines = append(lines, "# Source: "+title)
	}
	if u := singleLine(meta.LocalURL); u != "" {
		lines = append(lines, "# URL: "+u)
	}
	lines = append(lines, "")

	tags := w.Tags(deck)
	header := w.cardHeader(meta)
	for _, card := range deck.Cards {
		front := EscapeField(card.Front)
		back := EscapeField(card.Back)
		if w.Config.Decorate {
			back = header + w.cardBody(front, back) + w.cardFooter(meta, card.Context)
		}
		lines = append(lines, front+"\t"+back+"\t"+tags)
	}

	_, err := io.WriteString(out, strings.Join(lines, "\n"))
	return err
}

// Tags returns the space-joined tag string shared by every row of deck:
// topic, language pair, granularity and export date.
func (w *TSVWriter) Tags(deck *Deck) string {
	topic := w.Config.Topic
	if topic == "" {
		topic = DefaultTopic
	}
	tags := []string{topic, deck.Pair.Code(), string(deck.Granularity)}
	if deck.Metadata != nil && deck.Metadata.GeneratedDate != "" {
		tags = append(tags, deck.Metadata.GeneratedDate)
	}
	return strings.Join(tags, " ")
}

func (w *TSVWriter) cardHeader(meta *Metadata) string {
	var b strings.Builder
	b.WriteString(`<div style="` + headerStyle + `">`)
	b.WriteString("<strong>Radio</strong> | Viikon uutinen selkosuomeksi")
	if meta.FormattedDate != "" {
		b.WriteString(" | " + meta.FormattedDate)
	}
	b.WriteString("</div>")
	return b.String()
}

func (w *TSVWriter) cardBody(front, back string) string {
	return `<div style="` + questionStyle + `"><strong>Question:</strong><br>` + front + "</div>" +
		`<div style="` + answerStyle + `"><strong>Answer:</strong><br>` + back + "</div>"
}

func (w *TSVWriter) cardFooter(meta *Metadata, ctx CardContext) string {
	var b strings.Builder
	b.WriteString(`<div style="` + footerStyle + `">`)

	fmt.Fprintf(&b, `<div style="%s"><strong>Source:</strong> <a href="%s" style="%s">Andrew's Selkouutiset Archive</a></div>`,
		lineStyle, html.EscapeString(meta.URL), linkStyle)

	if meta.ArticleTitle != "" {
		fmt.Fprintf(&b, `<div style="%s"><strong>Article:</strong> %s</div>`, lineStyle, html.EscapeString(meta.ArticleTitle))
	}

	switch {
	case ctx.Section != "" && ctx.SectionNumber > 0:
		fmt.Fprintf(&b, `<div style="%s"><strong>Section:</strong> %s (#%d)</div>`, lineStyle, html.EscapeString(ctx.Section), ctx.SectionNumber)
	case ctx.Paragraph > 0:
		fmt.Fprintf(&b, `<div style="%s"><strong>Location:</strong> Paragraph %d`, lineStyle, ctx.Paragraph)
		if ctx.Sentence > 0 {
			fmt.Fprintf(&b, ", Sentence %d", ctx.Sentence)
		}
		b.WriteString("</div>")
	}

	b.WriteString(`<div style="` + linksStyle + `">`)
	if w.Config.IssueURL != "" {
		fmt.Fprintf(&b, `<a href="%s" style="%s">Report an issue</a> | `, html.EscapeString(w.Config.IssueURL), linkStyle)
	}
	b.WriteString("Generated: " + meta.GeneratedDate)
	b.WriteString("</div></div>")

	return b.String()
}

// EscapeField makes text safe for a single TSV field: tabs become spaces,
// newlines become BreakMarker and a leading "#" becomes an HTML entity so
// the row is not read as a comment.
func EscapeField(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", BreakMarker)
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		s = HashEntity + rest
	}
	return s
}

// singleLine collapses whitespace runs, line breaks included, to one space.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Row is one data row of an exported deck.
type Row struct {
	Front string
	Back  string
	Tags  string
}

// ParseTSV reads an exported deck and returns its data rows. Lines
// starting with "#" are directives only in the header, which ends at the
// first blank line or the first row. Blank lines are skipped. Returns
// EINVALID for rows without exactly three fields.
func ParseTSV(r io.Reader) ([]Row, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var rows []Row
	lineNo := 0
	header := true
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			header = false
			continue
		}
		if header && strings.HasPrefix(line, "#") {
			continue
		}
		header = false
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, Errorf(EINVALID, "line %d: expected 3 tab-separated fields, got %d", lineNo, len(fields))
		}
		rows = append(rows, Row{Front: fields[0], Back: fields[1], Tags: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Filename returns the export file name for a deck:
// anki_<title>_<level>_<date>.txt. Characters outside [A-Za-z0-9] are
// stripped from the title and the result is cut to 50 characters.
func Filename(title string, level Granularity, date string) string {
	var b strings.Builder
	for _, r := range title {
		if b.Len() == 50 {
			break
		}
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return "anki_" + b.String() + "_" + string(level) + "_" + date + ".txt"
}
