package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fueleu/banking/internal/adapter/http/dto"
	"github.com/fueleu/banking/internal/domain"
)

// EntryService defines the behavior needed by EntryHandler.
type EntryService interface {
	GetBankEntries(ctx context.Context, shipID string, year int) ([]*domain.BankEntry, error)
	GetBankRecords(ctx context.Context) ([]*domain.BankEntry, error)
	GetShipBankingHistory(ctx context.Context, shipID string) ([]*domain.BankEntry, error)
	AddBankEntry(ctx context.Context, entry *domain.BankEntry) (*domain.BankEntry, error)
}

// EntryHandler handles ledger entry HTTP requests.
type EntryHandler struct {
	entryUC EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryUC EntryService) *EntryHandler {
	return &EntryHandler{entryUC: entryUC}
}

// ListByShipYear lists the entries recorded for a ship in a given year.
func (h *EntryHandler) ListByShipYear(w http.ResponseWriter, r *http.Request) {
	shipID := chi.URLParam(r, "shipId")
	if shipID == "" {
		writeError(w, http.StatusBadRequest, "missing ship ID", "")
		return
	}

	year, err := parseYearParam(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	entries, err := h.entryUC.GetBankEntries(r.Context(), shipID, year)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list entries", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BankEntriesFromDomain(entries))
}

// ListAll lists every entry in the ledger.
func (h *EntryHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entryUC.GetBankRecords(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BankEntriesFromDomain(entries))
}

// History lists a ship's full banking history across all years.
func (h *EntryHandler) History(w http.ResponseWriter, r *http.Request) {
	shipID := chi.URLParam(r, "shipId")
	if shipID == "" {
		writeError(w, http.StatusBadRequest, "missing ship ID", "")
		return
	}

	entries, err := h.entryUC.GetShipBankingHistory(r.Context(), shipID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get history", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BankEntriesFromDomain(entries))
}

// Add appends a raw entry to the ledger.
func (h *EntryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBankEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.entryUC.AddBankEntry(r.Context(), req.ToDomain())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to add entry", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.BankEntryFromDomain(entry))
}
