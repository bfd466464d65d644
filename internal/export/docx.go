package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
	"github.com/fumiama/go-docx"
)

// Word caps built-in heading styles at Heading9; we stop earlier since the
// default theme only defines useful styles up to Heading6.
const maxHeadingLevel = 6

// renderDocx builds a Word document from the canonical model.
//
// Layout follows the platform's document convention: centered title, author
// line, Abstract heading + paragraph, numbered sections with depth-scaled
// heading levels, references as a [n]-prefixed list in array order.
func renderDocx(doc *docmodel.CanonicalDocument) (Artifact, error) {
	w := buildDocx(doc)

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return Artifact{}, fmt.Errorf("write docx: %w", err)
	}

	return Artifact{
		Format:      FormatDocx,
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Payload:     buf.Bytes(),
	}, nil
}

// buildDocx assembles the document structure. Split from renderDocx so tests
// can walk the paragraph items without unzipping the serialized bytes.
func buildDocx(doc *docmodel.CanonicalDocument) *docx.Docx {
	w := docx.New().WithDefaultTheme()

	title := w.AddParagraph().Justification("center")
	title.Style("Title")
	title.AddText(doc.Title).Size("32").Bold()

	if doc.AuthorLine != "" {
		author := w.AddParagraph().Justification("center")
		author.AddText(doc.AuthorLine)
	}

	if doc.Abstract != "" {
		h := w.AddParagraph()
		h.Style("Heading1")
		h.AddText("Abstract").Bold()
		w.AddParagraph().AddText(doc.Abstract)
	}

	for _, fs := range flatten(doc.Body) {
		level := fs.depth + 1
		if level > maxHeadingLevel {
			level = maxHeadingLevel
		}
		if fs.sec.Heading != "" {
			h := w.AddParagraph()
			h.Style(fmt.Sprintf("Heading%d", level))
			h.AddText(fs.number + " " + fs.sec.Heading).Bold()
		}
		for _, para := range splitParagraphs(fs.sec.Body) {
			w.AddParagraph().AddText(para)
		}
	}

	if len(doc.References) > 0 {
		h := w.AddParagraph()
		h.Style("Heading1")
		h.AddText("References").Bold()
		for i, ref := range doc.References {
			w.AddParagraph().AddText(fmt.Sprintf("[%d] %s", i+1, ref))
		}
	}

	return w
}

// splitParagraphs splits body text on blank-line boundaries. Empty paragraphs
// after trimming are skipped, never emitted as blank paragraphs.
func splitParagraphs(body string) []string {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	var out []string
	for _, para := range strings.Split(body, "\n\n") {
		para = strings.TrimSpace(para)
		if para != "" {
			out = append(out, para)
		}
	}
	return out
}
