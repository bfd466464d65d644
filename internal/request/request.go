// Package request turns user options into a generation prompt and the JSON
// contract the normalizer later checks the AI reply against.
package request

import (
	"fmt"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
)

// Tone adjusts the writing register the AI is asked for.
type Tone string

const (
	ToneAcademic     Tone = "academic"
	ToneProfessional Tone = "professional"
	ToneEssay        Tone = "essay"
	ToneCreative     Tone = "creative"
)

// CitationStyle is passed through to the AI verbatim. "auto" asks the model
// to pick an appropriate style; no local detection is attempted.
type CitationStyle string

const (
	CitationIEEE    CitationStyle = "ieee"
	CitationHarvard CitationStyle = "harvard"
	CitationAuto    CitationStyle = "auto"
)

// Author is an optional byline entry.
type Author struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation,omitempty"`
	Email       string `json:"email,omitempty"`
}

// GenerationRequest is the caller-supplied configuration for one document.
type GenerationRequest struct {
	DocumentType  docmodel.DocumentType `json:"documentType"`
	Topic         string                `json:"topic"`
	Tone          Tone                  `json:"tone,omitempty"`
	CitationStyle CitationStyle         `json:"citationStyle,omitempty"`
	LengthHint    string                `json:"lengthHint,omitempty"`
	IncludeImages bool                  `json:"includeImages,omitempty"`
	Authors       []Author              `json:"authors,omitempty"`
	ExtraContext  string                `json:"extraContext,omitempty"`
}

// Prompt is the fully assembled request for the text-generation service.
type Prompt struct {
	System    string
	User      string
	MaxTokens int
	WantJSON  bool
	Contract  Contract
}

// Contract describes the top-level JSON shape the AI was instructed to
// return for a document type.
type Contract struct {
	RootArray string   // "sections", "slides" or "chapters"
	Required  []string // required top-level fields
}

// InvalidRequestError reports caller-fixable input problems.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}
