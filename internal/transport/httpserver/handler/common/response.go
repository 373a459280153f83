package common

import (
	"encoding/json"
	"errors"
	"net/http"

	testcasedomain "testtrack/internal/domain/testcase"
	userdomain "testtrack/internal/domain/user"
	"testtrack/pkg/logger"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Message: message, Details: details}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func WriteError(w http.ResponseWriter, status int, message, details string) {
	writeError(w, status, message, details)
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(w, status, payload)
}

func DecodeJSON(r *http.Request, dst interface{}) error {
	return decodeJSON(r, dst)
}

func WriteInvalidJSON(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, "Bad Request", "invalid json body: "+err.Error())
}

// WriteDomainError maps a service error to its HTTP status. Client errors are
// logged as business errors with their details echoed back; anything else is
// an internal error and the response carries no details.
func WriteDomainError(w http.ResponseWriter, log logger.Logger, op string, err error, args ...any) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		log.InternalError(op, err, args...)
		writeError(w, status, message, "")
		return
	}
	log.BusinessError(op, err, args...)
	writeError(w, status, message, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, testcasedomain.ErrValidation), errors.Is(err, userdomain.ErrValidation):
		return http.StatusBadRequest, "Bad Request"
	case errors.Is(err, userdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, testcasedomain.ErrForbidden), errors.Is(err, userdomain.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, testcasedomain.ErrNotFound), errors.Is(err, userdomain.ErrUserNotFound):
		return http.StatusNotFound, "Not Found"
	case errors.Is(err, userdomain.ErrEmailTaken):
		return http.StatusConflict, "Conflict"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
