package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown = goldmark.New()
	// AI-supplied markup is treated as untrusted: rendered markdown is
	// sanitized to a UGC-safe fragment before it reaches the page.
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkup converts a markdown-ish body string into sanitized HTML.
func renderMarkup(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		// Markdown conversion is best-effort; fall back to escaped text.
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return sanitizer.Sanitize(buf.String())
}

// renderPreview produces embeddable markup mirroring the document structure.
func renderPreview(doc *docmodel.CanonicalDocument) (Artifact, error) {
	var sb strings.Builder
	sb.WriteString(`<article class="document-preview">` + "\n")
	writeDocumentBody(&sb, doc)
	sb.WriteString("</article>\n")

	return Artifact{
		Format:      FormatPreviewHTML,
		ContentType: "text/html; charset=utf-8",
		Payload:     []byte(sb.String()),
	}, nil
}

// renderPrint is structurally identical to the preview but wraps the markup
// in a standalone page with pagination-safe styling hints.
func renderPrint(doc *docmodel.CanonicalDocument) (Artifact, error) {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + html.EscapeString(doc.Title) + "</title>\n")
	sb.WriteString(`<style>
@page { margin: 2.5cm; }
body { font-family: "Times New Roman", serif; line-height: 1.5; }
h1, h2, h3, h4 { page-break-after: avoid; }
section { page-break-inside: avoid; }
.references { page-break-before: always; }
</style>
`)
	sb.WriteString("</head>\n<body>\n")
	writeDocumentBody(&sb, doc)
	sb.WriteString("</body>\n</html>\n")

	return Artifact{
		Format:      FormatPrintHTML,
		ContentType: "text/html; charset=utf-8",
		Payload:     []byte(sb.String()),
	}, nil
}

func writeDocumentBody(sb *strings.Builder, doc *docmodel.CanonicalDocument) {
	sb.WriteString("<h1>" + html.EscapeString(doc.Title) + "</h1>\n")

	if doc.AuthorLine != "" {
		sb.WriteString(`<p class="authors">` + html.EscapeString(doc.AuthorLine) + "</p>\n")
	}
	if doc.Abstract != "" {
		sb.WriteString("<h2>Abstract</h2>\n")
		sb.WriteString(`<p class="abstract">` + html.EscapeString(doc.Abstract) + "</p>\n")
	}
	if len(doc.Keywords) > 0 {
		escaped := make([]string, 0, len(doc.Keywords))
		for _, k := range doc.Keywords {
			escaped = append(escaped, html.EscapeString(k))
		}
		sb.WriteString(`<p class="keywords"><em>Keywords: ` + strings.Join(escaped, ", ") + "</em></p>\n")
	}

	for _, fs := range flatten(doc.Body) {
		level := fs.depth + 2 // h2 for top-level sections, capped at h6
		if level > 6 {
			level = 6
		}
		if fs.sec.Heading != "" {
			fmt.Fprintf(sb, "<h%d>%s %s</h%d>\n", level, fs.number, html.EscapeString(fs.sec.Heading), level)
		}
		if markup := renderMarkup(fs.sec.Body); markup != "" {
			sb.WriteString(markup)
			if !strings.HasSuffix(markup, "\n") {
				sb.WriteString("\n")
			}
		}
	}

	// Reference order is citation-significant; never resorted.
	if len(doc.References) > 0 {
		sb.WriteString(`<section class="references">` + "\n<h2>References</h2>\n<ol>\n")
		for _, ref := range doc.References {
			sb.WriteString("<li>" + html.EscapeString(ref) + "</li>\n")
		}
		sb.WriteString("</ol>\n</section>\n")
	}
}
