package selkocards

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTitle is used when a page has no document title.
const DefaultTitle = "Selkouutiset Article"

// urlDateRe matches the /YYYY/MM/DD/ path segment of archive URLs.
var urlDateRe = regexp.MustCompile(`/(\d{4})/(\d{2})/(\d{2})/`)

var finnishWeekdays = [...]string{
	time.Sunday:    "sunnuntai",
	time.Monday:    "maanantai",
	time.Tuesday:   "tiistai",
	time.Wednesday: "keskiviikko",
	time.Thursday:  "torstai",
	time.Friday:    "perjantai",
	time.Saturday:  "lauantai",
}

// Metadata describes the exported page. It is computed once per export and
// rendered into every card.
type Metadata struct {
	// URL is the canonical archive URL, or the page URL for undated pages.
	URL      string
	LocalURL string

	Title        string
	ArticleTitle string

	// Date is the ISO broadcast date taken from the URL, if any.
	Date          string
	FormattedDate string

	// GeneratedDate is the ISO date of the export.
	GeneratedDate string
}

// NewMetadata derives export metadata from a page. archiveURL is the base of
// canonical links; dated pages link to <archiveURL>/YYYY/MM/DD/.
func NewMetadata(page *Page, archiveURL string, now time.Time) *Metadata {
	m := &Metadata{
		URL:           page.URL,
		LocalURL:      page.URL,
		Title:         page.Title,
		ArticleTitle:  page.Heading,
		GeneratedDate: now.Format(time.DateOnly),
	}
	if m.Title == "" {
		m.Title = DefaultTitle
	}
	if m.ArticleTitle == "" {
		m.ArticleTitle = m.Title
	}

	match := urlDateRe.FindStringSubmatch(page.URL)
	if match == nil {
		return m
	}
	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])

	m.Date = match[1] + "-" + match[2] + "-" + match[3]
	m.FormattedDate = FormatFinnishDate(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
	if archiveURL != "" {
		m.URL = strings.TrimSuffix(archiveURL, "/") + "/" + match[1] + "/" + match[2] + "/" + match[3] + "/"
	}
	return m
}

// FormatFinnishDate formats t the way Yle does, e.g. "lauantai 17.1.2026".
func FormatFinnishDate(t time.Time) string {
	return fmt.Sprintf("%s %d.%d.%d", finnishWeekdays[t.Weekday()], t.Day(), int(t.Month()), t.Year())
}
