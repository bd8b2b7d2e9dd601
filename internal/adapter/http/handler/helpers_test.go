package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fueleu/banking/internal/adapter/http/dto"
	"github.com/fueleu/banking/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"compliance not found", domain.ErrComplianceNotFound, http.StatusNotFound},
		{"no surplus", domain.ErrNoSurplus, http.StatusUnprocessableEntity},
		{"amount exceeds surplus", domain.ErrAmountExceedsSurplus, http.StatusUnprocessableEntity},
		{"no deficit", domain.ErrNoDeficit, http.StatusUnprocessableEntity},
		{"no banked surplus", domain.ErrNoBankedSurplus, http.StatusUnprocessableEntity},
		{"insufficient banked surplus", domain.ErrInsufficientBankedSurplus, http.StatusUnprocessableEntity},
		{"amount exceeds deficit", domain.ErrAmountExceedsDeficit, http.StatusUnprocessableEntity},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"empty ship ID", domain.ErrEmptyShipID, http.StatusBadRequest},
		{"ship ID too long", domain.ErrShipIDTooLong, http.StatusBadRequest},
		{"invalid year", domain.ErrInvalidYear, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	writeJSON(rr, http.StatusCreated, payload)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if decoded["status"] != "ok" {
		t.Fatalf("expected payload to round-trip, got %+v", decoded)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, http.StatusBadRequest, "bad request", "detail")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if resp.Error != "bad request" {
		t.Fatalf("expected error message to propagate, got %+v", resp)
	}
}
