// Package genai holds the clients for the external AI services: text
// generation (Gemini or OpenAI) and image transcription (Gemini vision).
// Both are consumed through narrow interfaces so handlers and tests can
// substitute fakes.
package genai

import (
	"context"
	"fmt"
)

// Prompt is one text-generation call.
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	WantJSON    bool    // bias the model toward a pure-JSON reply
	Temperature float64 // 0 means provider default
}

// TextGenerator produces text for a prompt. Implementations must honor
// ctx cancellation and apply their own request timeout.
type TextGenerator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// Transcriber extracts text from an image (OCR). Image inputs are never
// processed locally.
type Transcriber interface {
	Transcribe(ctx context.Context, image []byte, mimeType string) (string, error)
}

// GenerationError is an upstream AI/service failure. Retryable marks
// transient conditions (rate limit, 5xx); the core never retries, callers may.
type GenerationError struct {
	StatusCode int
	Message    string
	Retryable  bool
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
