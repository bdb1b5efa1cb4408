package selkocards

// Card is a front/back pair, the unit of the export format.
// Both sides are always non-empty.
type Card struct {
	Front   string
	Back    string
	Context CardContext
}

// CardContext records where a card's text came from. Numbers are 1-based;
// zero means "not applicable".
type CardContext struct {
	Paragraph int
	Sentence  int

	Section       string
	SectionNumber int
}
