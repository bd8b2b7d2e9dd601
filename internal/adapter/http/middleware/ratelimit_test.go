package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterThrottlesPerClient(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodGet, "/api/v1/banking/records", nil)
	first.RemoteAddr = "10.0.0.1:50000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}

	second := httptest.NewRequest(http.MethodGet, "/api/v1/banking/records", nil)
	second.RemoteAddr = "10.0.0.1:50000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec.Code)
	}

	// A different client has its own bucket.
	other := httptest.NewRequest(http.MethodGet, "/api/v1/banking/records", nil)
	other.Header.Set("X-Real-IP", "10.0.0.2")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected other client to pass, got %d", rec.Code)
	}
}

func TestCleanupLimitersDropsStaleClients(t *testing.T) {
	rl := NewRateLimiter(10, 10)
	rl.staleAge = time.Nanosecond

	rl.getLimiter("10.0.0.1")
	time.Sleep(time.Millisecond)
	rl.CleanupLimiters()

	rl.mu.RLock()
	defer rl.mu.RUnlock()
	if len(rl.clients) != 0 {
		t.Fatalf("expected stale limiters to be dropped, %d remain", len(rl.clients))
	}
}

func TestCleanupLimitersKeepsActiveClients(t *testing.T) {
	rl := NewRateLimiter(10, 10)

	rl.getLimiter("10.0.0.1")
	rl.CleanupLimiters()

	rl.mu.RLock()
	defer rl.mu.RUnlock()
	if len(rl.clients) != 1 {
		t.Fatalf("expected active limiter to survive cleanup, %d remain", len(rl.clients))
	}
}
