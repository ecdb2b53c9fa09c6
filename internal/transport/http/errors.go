// Package httpapi exposes the HTTP API consumed by the Display boundary.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solmarket/price-assistant/internal/app/catalog/domain"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

// classifyError translates domain sentinel errors into HTTP statuses.
// Validation failures are the caller's fault; everything else that escapes
// the façade is a storage failure. Not-found questions never reach here:
// they are successful responses carrying guidance text.
func classifyError(err error) (int, string) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable, "unavailable"
	}

	switch {
	case errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrProductNameTooLong),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrNegativePrice):
		return http.StatusBadRequest, "validation_error"
	}

	return http.StatusInternalServerError, "storage_error"
}
