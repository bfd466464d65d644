package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
)

// SlideDeck is the slide-deck descriptor consumed by the presentation
// renderer on the client. One slide per top-level section.
type SlideDeck struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// Slide is a single rendered slide. SpeakerNotes is a non-visible annotation
// and must never be merged into the visible bullet content.
type Slide struct {
	Kind         docmodel.SlideKind `json:"type"`
	Title        string             `json:"title"`
	Bullets      []string           `json:"bullets,omitempty"`
	SpeakerNotes string             `json:"speakerNotes,omitempty"`
	Image        *ImageRef          `json:"image,omitempty"`
}

// renderPptx serializes the slide-deck descriptor.
func renderPptx(doc *docmodel.CanonicalDocument, opts Options) (Artifact, error) {
	deck := BuildSlideDeck(doc, opts)
	payload, err := json.Marshal(deck)
	if err != nil {
		return Artifact{}, fmt.Errorf("marshal slide deck: %w", err)
	}
	return Artifact{
		Format:      FormatPptx,
		ContentType: "application/json",
		Payload:     payload,
	}, nil
}

// BuildSlideDeck maps every top-level section to one slide. Subsections are
// not traversed: a slide deck is flat by construction and the normalizer
// produces flat bodies for presentations.
func BuildSlideDeck(doc *docmodel.CanonicalDocument, opts Options) SlideDeck {
	deck := SlideDeck{
		Title:  doc.Title,
		Slides: make([]Slide, 0, len(doc.Body)),
	}

	imageIdx := 0
	for _, sec := range doc.Body {
		kind := sec.Kind
		if kind == "" {
			kind = docmodel.SlideContent
		}
		slide := Slide{
			Kind:         kind,
			Title:        sec.Heading,
			Bullets:      splitBullets(sec.Body),
			SpeakerNotes: sec.SpeakerNotes,
		}
		// Image slides consume the supplied decorations in order; running
		// out degrades to a slide with no image.
		if kind == docmodel.SlideImage && imageIdx < len(opts.Images) {
			img := opts.Images[imageIdx]
			slide.Image = &img
			imageIdx++
		}
		deck.Slides = append(deck.Slides, slide)
	}
	return deck
}

func splitBullets(body string) []string {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
