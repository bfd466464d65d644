// Package normalize converts untrusted AI JSON text into a CanonicalDocument.
// It is the single quality gate: on success the returned document always has a
// non-empty title and well-formed (possibly empty) body and references, so
// exporters never re-check AI-shape assumptions.
package normalize

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
)

// MalformedResponseError reports AI output that could not be normalized.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed AI response: %s", e.Reason)
}

// Normalize parses raw AI output for the given document type. The topic is
// the fallback title when the model omits one.
func Normalize(raw string, docType docmodel.DocumentType, topic string) (*docmodel.CanonicalDocument, error) {
	obj, err := parseObject(raw)
	if err != nil {
		return nil, err
	}

	doc := &docmodel.CanonicalDocument{Type: docType}
	switch docType {
	case docmodel.TypeReport:
		mapReport(obj, doc)
	case docmodel.TypePowerPoint:
		mapSlides(obj, doc)
	case docmodel.TypeConference:
		mapConference(obj, doc)
	case docmodel.TypeThesis:
		mapThesis(obj, doc)
	default:
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("unknown document type %q", docType)}
	}

	if strings.TrimSpace(doc.Title) == "" {
		doc.Title = strings.TrimSpace(topic)
	}
	if strings.TrimSpace(doc.Title) == "" {
		return nil, &MalformedResponseError{Reason: "missing title and no topic fallback"}
	}
	if doc.Body == nil {
		doc.Body = []docmodel.Section{}
	}
	if doc.References == nil {
		doc.References = []string{}
	}
	return doc, nil
}

var fenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// parseObject attempts a strict JSON parse, then one bounded recovery pass:
// strip markdown code fences and any prose outside the outermost braces.
func parseObject(raw string) (map[string]any, error) {
	s := strings.TrimSpace(raw)
	if m := fenceRe.FindStringSubmatch(s); len(m) > 1 {
		s = m[1]
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err == nil {
		return obj, nil
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return nil, &MalformedResponseError{Reason: "unparseable"}
	}
	if err := json.Unmarshal([]byte(s[start:end+1]), &obj); err != nil {
		return nil, &MalformedResponseError{Reason: "unparseable"}
	}
	return obj, nil
}

// --- tolerant accessors ---
//
// The AI reply is display-only prose; non-string scalars are coerced via
// string conversion rather than rejected.

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; render integers without decimals.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

func asStringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, asString(item))
	}
	return out
}

func asObjectSlice(v any) []map[string]any {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// firstString returns the first present key's string value.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s := asString(v); s != "" {
				return s
			}
		}
	}
	return ""
}
