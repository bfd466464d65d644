package request

import (
	"fmt"
	"strings"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
)

// Max output token budgets per document type. Theses are by far the longest
// documents the platform produces.
const (
	maxTokensReport     = 16384
	maxTokensPowerPoint = 16384
	maxTokensConference = 32768
	maxTokensThesis     = 65536
)

// Build assembles the prompt and response contract for a generation request.
// It is a pure transformation: no I/O, no mutation of req.
func Build(req GenerationRequest) (Prompt, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return Prompt{}, &InvalidRequestError{Field: "topic", Reason: "must not be empty"}
	}

	tone := req.Tone
	if tone == "" {
		tone = ToneAcademic
	}
	length := req.LengthHint
	if length == "" {
		length = "auto"
	}
	citation := req.CitationStyle
	if citation == "" {
		citation = CitationAuto
	}

	var p Prompt
	switch req.DocumentType {
	case docmodel.TypeReport:
		p = Prompt{
			System:    reportInstruction,
			User:      fmt.Sprintf("Generate a %s technical report on: %s. Writing tone: %s. Include all standard BET report sections with proper formatting.", length, req.Topic, tone),
			MaxTokens: maxTokensReport,
			Contract:  Contract{RootArray: "sections", Required: []string{"sections"}},
		}
	case docmodel.TypePowerPoint:
		user := fmt.Sprintf("Generate a %s presentation on: %s. Style: %s. Follow the 6x6 rule strictly.", length, req.Topic, tone)
		if req.IncludeImages {
			user += ` Include slides with type "image" where a visual would support the content.`
		}
		p = Prompt{
			System:    powerpointInstruction,
			User:      user,
			MaxTokens: maxTokensPowerPoint,
			Contract:  Contract{RootArray: "slides", Required: []string{"slides"}},
		}
	case docmodel.TypeConference:
		p = Prompt{
			System:    fmt.Sprintf(conferenceInstruction, citationText(citation)),
			User:      fmt.Sprintf("Generate a %s IEEE conference paper on: %s. Citation style: %s.", length, req.Topic, citationText(citation)),
			MaxTokens: maxTokensConference,
			Contract:  Contract{RootArray: "sections", Required: []string{"sections"}},
		}
	case docmodel.TypeThesis:
		p = Prompt{
			System:    fmt.Sprintf(thesisInstruction, citationText(citation)),
			User:      fmt.Sprintf("Generate a %s thesis/dissertation on: %s. Citation style: %s.", length, req.Topic, citationText(citation)),
			MaxTokens: maxTokensThesis,
			Contract:  Contract{RootArray: "chapters", Required: []string{"chapters"}},
		}
	default:
		return Prompt{}, &InvalidRequestError{Field: "documentType", Reason: fmt.Sprintf("unrecognized type %q", req.DocumentType)}
	}

	if len(req.Authors) > 0 {
		p.User += " Authors: " + formatAuthors(req.Authors) + "."
	}

	// Uploaded-file context is passed through in full. Truncation or
	// summarization would silently drop user-supplied material.
	if strings.TrimSpace(req.ExtraContext) != "" {
		var sb strings.Builder
		sb.WriteString(p.User)
		sb.WriteString("\n\n--- Additional Context ---\n")
		sb.WriteString(req.ExtraContext)
		sb.WriteString("\n--- End Additional Context ---")
		p.User = sb.String()
	}

	p.WantJSON = true
	return p, nil
}

// citationText renders the citation style for prompt text. "auto" asks the
// model to pick; there is no local detection algorithm.
func citationText(c CitationStyle) string {
	switch c {
	case CitationIEEE:
		return "IEEE"
	case CitationHarvard:
		return "Harvard"
	default:
		return "auto-detect an appropriate"
	}
}

func formatAuthors(authors []Author) string {
	parts := make([]string, 0, len(authors))
	for _, a := range authors {
		s := a.Name
		if a.Affiliation != "" {
			s += " (" + a.Affiliation + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
