// Package docmodel defines the canonical in-memory representation of a
// generated document. Every exporter consumes this model and nothing else;
// the normalizer is the only producer.
package docmodel

import "strings"

// DocumentType selects the generation contract and the normalizer mapping.
type DocumentType string

const (
	TypeReport     DocumentType = "report"
	TypePowerPoint DocumentType = "powerpoint"
	TypeConference DocumentType = "conference"
	TypeThesis     DocumentType = "thesis"
)

// ParseDocumentType validates a document type string.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(s) {
	case TypeReport, TypePowerPoint, TypeConference, TypeThesis:
		return DocumentType(s), true
	}
	return "", false
}

// SlideKind tags a section when it represents a slide.
type SlideKind string

const (
	SlideTitle   SlideKind = "title"
	SlideContent SlideKind = "content"
	SlideImage   SlideKind = "image"
	SlideQuote   SlideKind = "quote"
)

// ParseSlideKind maps an AI-provided slide type to a known kind,
// defaulting to content for anything unrecognized.
func ParseSlideKind(s string) SlideKind {
	switch SlideKind(strings.ToLower(strings.TrimSpace(s))) {
	case SlideTitle:
		return SlideTitle
	case SlideImage:
		return SlideImage
	case SlideQuote:
		return SlideQuote
	}
	return SlideContent
}

// Section is a titled, recursively nestable content node. Slides and thesis
// chapters use the same shape; SpeakerNotes and Kind are only populated for
// slide decks.
type Section struct {
	Heading      string    `json:"heading"`
	Body         string    `json:"body"`
	Subsections  []Section `json:"subsections,omitempty"`
	SpeakerNotes string    `json:"speakerNotes,omitempty"`
	Kind         SlideKind `json:"slideKind,omitempty"`
}

// CanonicalDocument is the unified tree all exporters render from.
// After normalization Title is never empty; Body and References may be
// empty but are never nil.
type CanonicalDocument struct {
	Type       DocumentType `json:"type"`
	Title      string       `json:"title"`
	AuthorLine string       `json:"authorLine,omitempty"`
	Abstract   string       `json:"abstract,omitempty"`
	Keywords   []string     `json:"keywords,omitempty"`
	Body       []Section    `json:"body"`
	References []string     `json:"references"`
}

// SectionCount returns the total number of sections including subsections.
func (d *CanonicalDocument) SectionCount() int {
	n := 0
	stack := append([]Section(nil), d.Body...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		stack = append(stack, s.Subsections...)
	}
	return n
}
