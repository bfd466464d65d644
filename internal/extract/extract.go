// Package extract converts uploaded files into plain text usable as
// generation context. Dispatch is by declared MIME type; image inputs are
// delegated to the vision OCR collaborator, never processed locally.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/genai"
)

// Kind distinguishes OCR results from regular document extraction in API
// responses.
const (
	KindDocument = "document"
	KindImage    = "image"
)

// UnsupportedTypeError reports a MIME type no extractor handles.
type UnsupportedTypeError struct {
	MimeType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %q", e.MimeType)
}

// ExtractionError wraps a parser failure for a supported type.
type ExtractionError struct {
	MimeType string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.MimeType, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Result is the outcome of extracting one file.
type Result struct {
	Text string
	Kind string
}

// Extractor dispatches file-to-text conversion. It holds no per-request
// state; one instance serves all requests.
type Extractor struct {
	ocr           genai.Transcriber
	log           *slog.Logger
	maxConcurrent int
}

func New(ocr genai.Transcriber, log *slog.Logger, maxConcurrent int) *Extractor {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &Extractor{ocr: ocr, log: log, maxConcurrent: maxConcurrent}
}

const mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Extract converts one file to plain text based on its declared MIME type.
// The input buffer is never modified.
func (e *Extractor) Extract(ctx context.Context, data []byte, mimeType string) (Result, error) {
	mt := normalizeMime(mimeType)

	if strings.HasPrefix(mt, "image/") {
		if e.ocr == nil {
			return Result{}, &ExtractionError{MimeType: mt, Err: fmt.Errorf("no OCR service configured")}
		}
		text, err := e.ocr.Transcribe(ctx, data, mt)
		if err != nil {
			return Result{}, &ExtractionError{MimeType: mt, Err: err}
		}
		return Result{Text: strings.TrimSpace(text), Kind: KindImage}, nil
	}

	var (
		text string
		err  error
	)
	switch {
	case mt == "application/pdf":
		text, err = extractPDF(data)
	case mt == mimeDocx:
		text, err = extractDocx(data)
	case mt == "text/html":
		text, err = extractHTML(data)
	case mt == "text/markdown":
		text, err = extractMarkdown(data)
	case mt == "text/csv":
		text, err = extractCSV(data)
	case strings.HasPrefix(mt, "text/"):
		text, err = extractPlainText(data)
	default:
		return Result{}, &UnsupportedTypeError{MimeType: mt}
	}
	if err != nil {
		return Result{}, &ExtractionError{MimeType: mt, Err: err}
	}
	return Result{Text: strings.TrimSpace(text), Kind: KindDocument}, nil
}

// normalizeMime strips parameters such as "; charset=utf-8".
func normalizeMime(mt string) string {
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = mt[:i]
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

// FileInput is one file in a batch upload.
type FileInput struct {
	Name     string
	MimeType string
	Data     []byte
}

// FileResult reports one file's extraction outcome. A failed file carries its
// error message and never affects the other results.
type FileResult struct {
	Name  string `json:"filename"`
	Text  string `json:"text,omitempty"`
	Kind  string `json:"type,omitempty"`
	Error string `json:"error,omitempty"`
}

// Batch extracts each file independently with bounded concurrency. Results
// come back in upload order.
func (e *Extractor) Batch(ctx context.Context, files []FileInput) []FileResult {
	results := make([]FileResult, len(files))
	sem := make(chan struct{}, e.maxConcurrent)
	var wg sync.WaitGroup

	for i, f := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, f FileInput) {
			defer wg.Done()
			defer func() { <-sem }()

			res, err := e.Extract(ctx, f.Data, f.MimeType)
			if err != nil {
				if e.log != nil {
					e.log.Warn("file extraction failed", "filename", f.Name, "mime", f.MimeType, "error", err)
				}
				results[i] = FileResult{Name: f.Name, Error: err.Error()}
				return
			}
			results[i] = FileResult{Name: f.Name, Text: res.Text, Kind: res.Kind}
		}(i, f)
	}
	wg.Wait()
	return results
}

// JoinText concatenates successful batch results in upload order, separated
// by blank lines, for use as generation context.
func JoinText(results []FileResult) string {
	var parts []string
	for _, r := range results {
		if r.Error == "" && r.Text != "" {
			parts = append(parts, r.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}
