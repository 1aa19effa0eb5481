package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
	"github.com/avoronov/musicschool-server/internal/validate"
)

type detailResponse struct {
	Detail any `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// handleError maps domain errors onto HTTP responses. notFoundDetail is
// the message used when the requested id did not resolve.
func handleError(w http.ResponseWriter, log *logger.Logger, err error, notFoundDetail string) {
	var conflictErr *model.ConflictError
	var badRefErr *model.BadReferenceError
	var fieldErrs validate.Errors

	switch {
	case errors.Is(err, model.ErrNotFound):
		respondDetail(w, http.StatusNotFound, notFoundDetail)
	case errors.As(err, &conflictErr):
		respondDetail(w, http.StatusBadRequest, "Email already exists")
	case errors.As(err, &badRefErr):
		if badRefErr.Entity == "teacher" {
			respondDetail(w, http.StatusBadRequest, "Teacher not found")
		} else {
			respondDetail(w, http.StatusBadRequest, "Student not found")
		}
	case errors.As(err, &fieldErrs):
		respondDetail(w, http.StatusUnprocessableEntity, fieldErrs)
	default:
		log.Error("request failed", "error", err.Error())
		respondDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

// checkString runs check on a provided field; when required, a nil
// field is recorded as missing.
func checkString(errs validate.Errors, field string, value *string, required bool, check func(string)) {
	if value == nil {
		if required {
			errs.Add(field, "field required")
		}
		return
	}
	check(*value)
}

// decodeJSON reads the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return validate.Errors{"body": "must be a valid JSON object"}
	}
	return nil
}
