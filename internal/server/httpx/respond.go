package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/filekeeper/internal/common"
)

// writeJSON writes JSON response with status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError sends an error message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeServiceError maps service sentinels to a status and a stable message.
// Anything unrecognised is logged and reported as a plain 500.
func (r *Router) writeServiceError(w http.ResponseWriter, req *http.Request, entity string, err error) {
	switch {
	case errors.Is(err, common.ErrParentNotFound):
		writeError(w, http.StatusBadRequest, "parent folder does not exist")
	case errors.Is(err, common.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, entity+" already exists")
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, common.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid password")
	case errors.Is(err, common.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "failed to authenticate token")
	case errors.Is(err, common.ErrMissingToken):
		writeError(w, http.StatusForbidden, "no token provided")
	default:
		r.logger.Error(req.Context(), "request failed",
			"path", req.URL.Path,
			"request_id", requestIDFromContext(req.Context()),
			"error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
