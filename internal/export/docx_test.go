package export

import (
	"strings"
	"testing"

	"github.com/fumiama/go-docx"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
)

// docxParagraphs collects the plain text of every paragraph in build order.
func docxParagraphs(w *docx.Docx) []string {
	var out []string
	for _, item := range w.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		var buf strings.Builder
		for _, child := range para.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if t, ok := rc.(*docx.Text); ok {
					buf.WriteString(t.Text)
				}
			}
		}
		out = append(out, buf.String())
	}
	return out
}

func TestBuildDocx_Layout(t *testing.T) {
	doc := &docmodel.CanonicalDocument{
		Type:       docmodel.TypeConference,
		Title:      "A 5G Study",
		AuthorLine: "A. Smith, B. Jones",
		Abstract:   "Short abstract.",
		Body: []docmodel.Section{
			{Heading: "Introduction", Body: "Intro text."},
		},
		References: []string{"First ref", "Second ref"},
	}

	paras := docxParagraphs(buildDocx(doc))
	want := []string{
		"A 5G Study",
		"A. Smith, B. Jones",
		"Abstract",
		"Short abstract.",
		"1 Introduction",
		"Intro text.",
		"References",
		"[1] First ref",
		"[2] Second ref",
	}
	if len(paras) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %q", len(want), len(paras), paras)
	}
	for i, w := range want {
		if paras[i] != w {
			t.Errorf("paragraph[%d]: expected %q, got %q", i, w, paras[i])
		}
	}
}

func TestBuildDocx_ParagraphSplitting(t *testing.T) {
	doc := &docmodel.CanonicalDocument{
		Type:  docmodel.TypeReport,
		Title: "Report",
		Body: []docmodel.Section{
			{Heading: "S", Body: "First paragraph.\n\nSecond paragraph."},
		},
	}

	paras := docxParagraphs(buildDocx(doc))
	want := []string{"Report", "1 S", "First paragraph.", "Second paragraph."}
	if len(paras) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %q", len(want), len(paras), paras)
	}
	for i, w := range want {
		if paras[i] != w {
			t.Errorf("paragraph[%d]: expected %q, got %q", i, w, paras[i])
		}
	}
}

func TestBuildDocx_SkipsBlankParagraphs(t *testing.T) {
	doc := &docmodel.CanonicalDocument{
		Type:  docmodel.TypeReport,
		Title: "Report",
		Body: []docmodel.Section{
			{Heading: "S", Body: "One.\n\n   \n\n\n\nTwo."},
		},
	}

	paras := docxParagraphs(buildDocx(doc))
	for _, p := range paras {
		if strings.TrimSpace(p) == "" {
			t.Fatalf("blank paragraph emitted: %q", paras)
		}
	}
	joined := strings.Join(paras, "|")
	if !strings.Contains(joined, "One.") || !strings.Contains(joined, "Two.") {
		t.Errorf("expected both text paragraphs, got %q", paras)
	}
}

func TestRenderDocx_ProducesZipPayload(t *testing.T) {
	art, err := Render(sampleReport(), FormatDocx, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.ContentType != "application/vnd.openxmlformats-officedocument.wordprocessingml.document" {
		t.Errorf("unexpected content type %q", art.ContentType)
	}
	// OOXML containers are zip archives.
	if len(art.Payload) < 4 || string(art.Payload[:2]) != "PK" {
		t.Error("expected zip magic at start of payload")
	}
}
