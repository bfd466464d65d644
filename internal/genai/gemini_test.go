package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func geminiTextResponse(text string) string {
	return `{"candidates": [{"content": {"parts": [{"text": ` + mustJSON(text) + `}]}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGeminiGenerate_Success(t *testing.T) {
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "models/test-model:generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "k" {
			t.Errorf("expected api key in query")
		}
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(geminiTextResponse(`{"title": "ok"}`)))
	}))
	defer srv.Close()

	c := NewGeminiClient("k", "test-model").WithBaseURL(srv.URL)
	out, err := c.Generate(context.Background(), Prompt{
		System:    "be brief",
		User:      "write it",
		MaxTokens: 1000,
		WantJSON:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"title": "ok"}` {
		t.Errorf("unexpected output %q", out)
	}

	if gotReq["system_instruction"] == nil {
		t.Error("expected system_instruction in request")
	}
	cfg, _ := gotReq["generationConfig"].(map[string]any)
	if cfg == nil || cfg["responseMimeType"] != "application/json" {
		t.Errorf("expected JSON response mime type in config, got %v", cfg)
	}
	if cfg["maxOutputTokens"] != float64(1000) {
		t.Errorf("expected maxOutputTokens 1000, got %v", cfg["maxOutputTokens"])
	}
}

func TestGeminiGenerate_RateLimitIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewGeminiClient("k", "m").WithBaseURL(srv.URL)
	_, err := c.Generate(context.Background(), Prompt{User: "x"})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T (%v)", err, err)
	}
	if !genErr.Retryable {
		t.Error("429 should be marked retryable")
	}
	if genErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("unexpected status %d", genErr.StatusCode)
	}
}

func TestGeminiGenerate_ServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewGeminiClient("k", "m").WithBaseURL(srv.URL)
	_, err := c.Generate(context.Background(), Prompt{User: "x"})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T (%v)", err, err)
	}
	if !genErr.Retryable {
		t.Error("5xx should be marked retryable")
	}
}

func TestGeminiGenerate_BadRequestNotRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad prompt", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewGeminiClient("k", "m").WithBaseURL(srv.URL)
	_, err := c.Generate(context.Background(), Prompt{User: "x"})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T (%v)", err, err)
	}
	if genErr.Retryable {
		t.Error("4xx should not be marked retryable")
	}
}

func TestGeminiGenerate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("k", "m").WithBaseURL(srv.URL)
	_, err := c.Generate(context.Background(), Prompt{User: "x"})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T (%v)", err, err)
	}
}

func TestGeminiGenerate_RecordsLatency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiTextResponse("hi")))
	}))
	defer srv.Close()

	c := NewGeminiClient("k", "m").WithBaseURL(srv.URL)
	if _, err := c.Generate(context.Background(), Prompt{User: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap := c.Stats.Snapshot(); snap.Count != 1 {
		t.Errorf("expected 1 latency sample, got %d", snap.Count)
	}
}

func TestGeminiTranscribe_SendsInlineData(t *testing.T) {
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(geminiTextResponse("transcribed text")))
	}))
	defer srv.Close()

	c := NewGeminiClient("k", "m").WithBaseURL(srv.URL)
	out, err := c.Transcribe(context.Background(), []byte{0x89, 0x50}, "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "transcribed text" {
		t.Errorf("unexpected output %q", out)
	}

	contents, _ := gotReq["contents"].([]any)
	if len(contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(contents))
	}
	parts, _ := contents[0].(map[string]any)["parts"].([]any)
	if len(parts) != 2 {
		t.Fatalf("expected image part and instruction part, got %d", len(parts))
	}
	inline, _ := parts[0].(map[string]any)["inline_data"].(map[string]any)
	if inline == nil || inline["mime_type"] != "image/png" {
		t.Errorf("expected inline image data with mime type, got %v", parts[0])
	}
}
