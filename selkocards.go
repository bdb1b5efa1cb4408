// Package selkocards turns bilingual news articles into Anki flashcard decks.
// It locates the article text of a page and of its translated counterpart,
// splits both into sentences, paragraphs or heading-delimited sections,
// pairs the units positionally and serializes the pairs in Anki's
// tab-separated import format.
//
// This package contains domain types, the segmentation and pairing logic
// and the collaborator interfaces, following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, lingua/).
package selkocards
