package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hmekki/casting-api/internal/api/shared"
	"github.com/hmekki/casting-api/internal/domain"
	"github.com/hmekki/casting-api/internal/store"
)

// CRUDErrorStatus maps a failure from a create/update/delete operation
// to an HTTP status code. Validation and integrity failures are client
// errors; not-found surfaces as 404; everything else is a server error.
func CRUDErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case store.IsDuplicateError(err), errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// CRUDErrorMessage builds the user-facing message for a failed
// create/update/delete operation. Validation failures carry their
// detail verbatim; storage failures expose only the trailing fragment
// of the underlying driver message.
func CRUDErrorMessage(err error) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return "ERROR: " + validationErr.Message
	}
	if store.IsNotFoundError(err) {
		return "Not found"
	}
	return "ERROR: " + trailingFragment(err)
}

// RespondWithCRUDError logs the failure and writes the mapped error
// envelope. Every CRUD failure passes through here so nothing is
// surfaced unlogged.
func RespondWithCRUDError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, CRUDErrorStatus(err), CRUDErrorMessage(err), err)
}

// trailingFragment extracts the text after the last colon of the
// error message, with newlines stripped and whitespace trimmed. Driver
// messages put the human-readable detail there; everything before the
// last colon is wrapping context that must not leak to clients.
func trailingFragment(err error) string {
	msg := strings.ReplaceAll(err.Error(), "\n", "")
	if i := strings.LastIndex(msg, ":"); i >= 0 {
		msg = msg[i+1:]
	}
	return strings.TrimSpace(msg)
}
