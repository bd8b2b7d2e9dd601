package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggingMiddlewareEmitsRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := NewLoggingMiddleware(logger).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/banking/bank", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}

	if line["method"] != http.MethodPost {
		t.Fatalf("expected method %q, got %v", http.MethodPost, line["method"])
	}
	if line["path"] != "/api/v1/banking/bank" {
		t.Fatalf("expected path to be logged, got %v", line["path"])
	}
	if line["status"] != float64(http.StatusCreated) {
		t.Fatalf("expected status 201, got %v", line["status"])
	}
}

func TestLoggingMiddlewarePreservesResponse(t *testing.T) {
	handler := NewLoggingMiddleware(zerolog.Nop()).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("body"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status to pass through, got %d", rec.Code)
	}
	if rec.Body.String() != "body" {
		t.Fatalf("expected body to pass through, got %q", rec.Body.String())
	}
}
