package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fueleu/banking/internal/adapter/http/dto"
	"github.com/fueleu/banking/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrComplianceNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoSurplus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAmountExceedsSurplus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNoDeficit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNoBankedSurplus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInsufficientBankedSurplus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAmountExceedsDeficit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyShipID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrShipIDTooLong):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidYear):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrZeroAmountEntry):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseYearParam parses a year path parameter.
func parseYearParam(raw string) (int, error) {
	return strconv.Atoi(raw)
}
