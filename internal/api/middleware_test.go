package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
)

func TestRequestLogger_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := middleware.RequestID(RequestLogger(log)(inner))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var entry struct {
		RequestID  string `json:"request_id"`
		Method     string `json:"method"`
		Path       string `json:"path"`
		Status     int    `json:"status"`
		DurationMs *int64 `json:"duration_ms"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v (raw %q)", err, buf.String())
	}
	if entry.RequestID == "" {
		t.Error("expected a non-empty request id in the log line")
	}
	if entry.Method != http.MethodGet || entry.Path != "/health" {
		t.Errorf("unexpected method/path %q %q", entry.Method, entry.Path)
	}
	if entry.Status != http.StatusTeapot {
		t.Errorf("expected recorded status %d, got %d", http.StatusTeapot, entry.Status)
	}
	if entry.DurationMs == nil {
		t.Error("expected a duration_ms field")
	}
}

func TestRequestLogger_RecordsImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok")) // no explicit WriteHeader
	})
	h := RequestLogger(log)(inner)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var entry struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry.Status != http.StatusOK {
		t.Errorf("expected status 200, got %d", entry.Status)
	}
}
