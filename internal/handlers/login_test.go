package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/models"
)

func TestLoginEndpoint(t *testing.T) {
	e := newTestEnv(t)

	rec := e.do(t, http.MethodPost, "/api/auth/login/", map[string]string{
		"username": "demo",
		"password": "demo1234",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	pair := decodeAs[models.TokenPair](t, rec)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	e := newTestEnv(t)

	rec := e.do(t, http.MethodPost, "/api/auth/login/", map[string]string{
		"username": "demo",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeAs[map[string]string](t, rec)
	assert.Equal(t, "Invalid credentials.", body["detail"])
}

func TestRefreshEndpoint(t *testing.T) {
	e := newTestEnv(t)

	rec := e.do(t, http.MethodPost, "/api/auth/refresh/", map[string]string{
		"refresh": "anything-non-empty",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeAs[models.AccessToken](t, rec)
	assert.NotEmpty(t, body.Access)

	rec = e.do(t, http.MethodPost, "/api/auth/refresh/", map[string]string{"refresh": ""})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
