package normalize

import (
	"strings"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
)

// Per-type structural mappings. These are pure transforms: no field is
// invented beyond the documented fallbacks (missing title -> topic upstream,
// missing content -> empty string).

func mapReport(obj map[string]any, doc *docmodel.CanonicalDocument) {
	doc.Title = asString(obj["title"])
	doc.Abstract = asString(obj["abstract"])
	doc.Body = mapSectionTree(asObjectSlice(obj["sections"]))
	doc.References = asStringSlice(obj["references"])
}

func mapConference(obj map[string]any, doc *docmodel.CanonicalDocument) {
	doc.Title = asString(obj["title"])
	doc.Abstract = asString(obj["abstract"])
	doc.Keywords = asStringSlice(obj["keywords"])
	doc.AuthorLine = strings.Join(asStringSlice(obj["authors"]), ", ")
	doc.References = asStringSlice(obj["references"])

	for _, s := range asObjectSlice(obj["sections"]) {
		heading := asString(s["title"])
		// Papers carry section numbers ("I.", "II.") as a separate field.
		if num := asString(s["number"]); num != "" {
			heading = strings.TrimSpace(num + " " + heading)
		}
		doc.Body = append(doc.Body, docmodel.Section{
			Heading:     heading,
			Body:        firstString(s, "content", "body"),
			Subsections: mapSectionTree(asObjectSlice(s["subsections"])),
		})
	}
}

func mapThesis(obj map[string]any, doc *docmodel.CanonicalDocument) {
	doc.Title = asString(obj["title"])
	doc.Abstract = asString(obj["abstract"])
	doc.AuthorLine = asString(obj["author"])
	doc.References = asStringSlice(obj["references"])

	for _, ch := range asObjectSlice(obj["chapters"]) {
		chapter := docmodel.Section{
			Heading: asString(ch["title"]),
			Body:    firstString(ch, "content", "body"),
		}
		for _, s := range asObjectSlice(ch["sections"]) {
			chapter.Subsections = append(chapter.Subsections, docmodel.Section{
				Heading:     asString(s["title"]),
				Body:        firstString(s, "content", "body"),
				Subsections: mapSectionTree(asObjectSlice(s["subsections"])),
			})
		}
		doc.Body = append(doc.Body, chapter)
	}
}

func mapSlides(obj map[string]any, doc *docmodel.CanonicalDocument) {
	doc.Title = asString(obj["title"])
	for _, sl := range asObjectSlice(obj["slides"]) {
		doc.Body = append(doc.Body, docmodel.Section{
			Heading:      asString(sl["title"]),
			Body:         slideContent(sl["content"]),
			SpeakerNotes: asString(sl["speakerNotes"]),
			Kind:         docmodel.ParseSlideKind(asString(sl["type"])),
		})
	}
}

// slideContent accepts either a bullet array or a plain string; bullets are
// joined with newlines so every exporter sees one body string.
func slideContent(v any) string {
	if arr, ok := v.([]any); ok {
		lines := make([]string, 0, len(arr))
		for _, item := range arr {
			if s := asString(item); s != "" {
				lines = append(lines, s)
			}
		}
		return strings.Join(lines, "\n")
	}
	return asString(v)
}

// mapSectionTree maps the recursive {title, content, subsections} shape.
// Depth is whatever the parsed JSON actually contains; it is never re-derived.
func mapSectionTree(items []map[string]any) []docmodel.Section {
	if len(items) == 0 {
		return nil
	}
	out := make([]docmodel.Section, 0, len(items))
	for _, item := range items {
		out = append(out, docmodel.Section{
			Heading:     asString(item["title"]),
			Body:        firstString(item, "content", "body"),
			Subsections: mapSectionTree(asObjectSlice(item["subsections"])),
		})
	}
	return out
}
