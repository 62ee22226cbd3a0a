package handlers

import (
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/models"
)

// Login handles POST /auth/login/ against the fixed demo credential pair.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	a.delay()
	var req models.LoginRequest
	decode(r, &req)

	pair, err := a.auth.Login(req.Username, req.Password)
	if err != nil {
		a.log.WithField("username", req.Username).Warn("login rejected")
		a.writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials."})
		return
	}
	a.writeJSON(w, http.StatusOK, pair)
}

// RefreshToken handles POST /auth/refresh/. Any non-empty refresh value
// yields a fresh access token; an empty one is rejected.
func (a *API) RefreshToken(w http.ResponseWriter, r *http.Request) {
	a.delay()
	var req models.RefreshRequest
	decode(r, &req)

	access, err := a.auth.Refresh(req.Refresh)
	if err != nil {
		a.writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Refresh token is invalid."})
		return
	}
	a.writeJSON(w, http.StatusOK, models.AccessToken{Access: access})
}
