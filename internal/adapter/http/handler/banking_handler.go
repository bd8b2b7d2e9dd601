package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fueleu/banking/internal/adapter/http/dto"
	"github.com/fueleu/banking/internal/usecase"
)

// BankingService defines the behavior needed by BankingHandler.
type BankingService interface {
	BankSurplus(ctx context.Context, input usecase.BankingOperationInput) (*usecase.BankingResult, error)
	ApplyBankedSurplus(ctx context.Context, input usecase.BankingOperationInput) (*usecase.BankingResult, error)
}

// StatusService defines the behavior needed for status reports.
type StatusService interface {
	GetBankingStatus(ctx context.Context, shipID string, year int) (*usecase.BankingStatusReport, error)
}

// BankingHandler handles banking operation HTTP requests.
type BankingHandler struct {
	bankingUC BankingService
	statusUC  StatusService
}

// NewBankingHandler creates a new BankingHandler.
func NewBankingHandler(bankingUC BankingService, statusUC StatusService) *BankingHandler {
	return &BankingHandler{
		bankingUC: bankingUC,
		statusUC:  statusUC,
	}
}

// Bank moves part of a ship-year's surplus into the ship's banked pool.
func (h *BankingHandler) Bank(w http.ResponseWriter, r *http.Request) {
	var req dto.BankingOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.bankingUC.BankSurplus(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to bank surplus", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.BankingResultFromUseCase(result))
}

// Apply uses previously banked surplus against a ship-year's deficit.
func (h *BankingHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.BankingOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.bankingUC.ApplyBankedSurplus(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to apply banked surplus", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.BankingResultFromUseCase(result))
}

// Status returns the banking status report for a ship-year.
func (h *BankingHandler) Status(w http.ResponseWriter, r *http.Request) {
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

	report, err := h.statusUC.GetBankingStatus(r.Context(), shipID, year)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get banking status", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BankingStatusFromUseCase(report))
}
