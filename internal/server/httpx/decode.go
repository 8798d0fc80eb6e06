package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decode reads a JSON body into dst and validates its struct tags. On failure
// it writes a 400 and returns false; invalidMsg is used for validation errors.
func (r *Router) decode(w http.ResponseWriter, req *http.Request, dst any, invalidMsg string) bool {
	body := http.MaxBytesReader(w, req.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		r.logger.Debug(req.Context(), "request validation failed", "path", req.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, invalidMsg)
		return false
	}
	return true
}
