// Package export renders a CanonicalDocument into one of the supported
// target formats. Every renderer is a pure function of the document snapshot:
// missing optional fields degrade to omitted output, never to an error.
package export

import (
	"errors"
	"fmt"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
)

// Format identifies an export target.
type Format string

const (
	FormatPreviewHTML Format = "preview_html"
	FormatPrintHTML   Format = "print_html"
	FormatDocx        Format = "docx"
	FormatPptx        Format = "pptx"
)

// ParseFormat accepts both the canonical names and the short aliases used by
// the export endpoint.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "preview", "preview_html":
		return FormatPreviewHTML, true
	case "print", "print_html", "pdf":
		return FormatPrintHTML, true
	case "docx":
		return FormatDocx, true
	case "pptx":
		return FormatPptx, true
	}
	return "", false
}

// Artifact is the rendered output of one export call. It is created per call
// and never persisted by this package.
type Artifact struct {
	Format      Format
	ContentType string
	Payload     []byte
}

// ImageRef decorates image slides. Absent images degrade to "no image".
type ImageRef struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Options carries renderer extras that are not part of the document itself.
type Options struct {
	Images []ImageRef
}

// UnsupportedFormatError reports an export format no renderer implements.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %q", e.Format)
}

// Render dispatches to the format-specific renderer.
func Render(doc *docmodel.CanonicalDocument, format Format, opts Options) (Artifact, error) {
	if doc == nil || doc.Title == "" {
		return Artifact{}, errors.New("export: document title is required")
	}

	switch format {
	case FormatPreviewHTML:
		return renderPreview(doc)
	case FormatPrintHTML:
		return renderPrint(doc)
	case FormatDocx:
		return renderDocx(doc)
	case FormatPptx:
		return renderPptx(doc, opts)
	default:
		return Artifact{}, &UnsupportedFormatError{Format: string(format)}
	}
}

// maxRenderDepth bounds section nesting during rendering. AI output decides
// actual depth; anything deeper is truncated rather than recursed into.
const maxRenderDepth = 10

type flatSection struct {
	sec    docmodel.Section
	depth  int    // 0 for top-level sections
	number string // hierarchical numbering, e.g. "2.1.3"
}

// flatten walks the section tree iteratively in document order, assigning
// hierarchical numbers and dropping nodes beyond maxRenderDepth.
func flatten(body []docmodel.Section) []flatSection {
	type frame struct {
		sec    docmodel.Section
		depth  int
		number string
	}

	var out []flatSection
	var stack []frame
	for i := len(body) - 1; i >= 0; i-- {
		stack = append(stack, frame{sec: body[i], depth: 0, number: fmt.Sprintf("%d", i+1)})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out = append(out, flatSection{sec: f.sec, depth: f.depth, number: f.number})

		if f.depth+1 >= maxRenderDepth {
			continue
		}
		subs := f.sec.Subsections
		for i := len(subs) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				sec:    subs[i],
				depth:  f.depth + 1,
				number: fmt.Sprintf("%s.%d", f.number, i+1),
			})
		}
	}
	return out
}
