// Package httpx holds the JSON response helpers shared by every module handler.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/georgemunganga/inventory-backend/internal/platform/logging"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

// Error writes err with the status matching its kind. Internal errors are
// logged and replaced by a generic message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := StatusFor(kind)
	if kind == apperr.KindInternal {
		logging.FromContext(r.Context()).WithError(err).Error("internal error")
		JSON(w, status, ErrorResponse{Error: "internal server error"})
		return
	}
	resp := ErrorResponse{Error: err.Error()}
	var e *apperr.Error
	if errors.As(err, &e) {
		resp.Error = e.Message
		resp.Details = e.Fields
	}
	JSON(w, status, resp)
}

func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Decode reads a JSON request body into dst, reporting malformed input as a
// validation error.
func Decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.Validation(typeErr.Field, "invalid value")
		}
		return apperr.Invalid("invalid JSON body: " + err.Error())
	}
	return nil
}
