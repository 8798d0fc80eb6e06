package httpx

import (
	"net/http"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *Router) handleRegister(w http.ResponseWriter, req *http.Request) {
	var payload credentialsRequest
	if !r.decode(w, req, &payload, "username and password are required") {
		return
	}
	if _, err := r.users.Register(req.Context(), payload.Username, payload.Password); err != nil {
		r.writeServiceError(w, req, "user", err)
		return
	}
	r.logger.Info(req.Context(), "user registered", "username", payload.Username)
	writeMessage(w, http.StatusCreated, "user registered successfully")
}

func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) {
	var payload credentialsRequest
	if !r.decode(w, req, &payload, "username and password are required") {
		return
	}
	token, err := r.users.Login(req.Context(), payload.Username, payload.Password)
	if err != nil {
		r.writeServiceError(w, req, "user", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
