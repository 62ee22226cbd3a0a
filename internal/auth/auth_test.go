package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	svc, err := NewService("demo", "demo1234", "test-secret")
	require.NoError(t, err)
	return svc
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	pair, err := svc.Login("demo", "demo1234")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "demo", "nope"},
		{"wrong username", "admin", "demo1234"},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestRefresh(t *testing.T) {
	svc := newTestService(t)

	// Any non-empty refresh value yields a fresh access token.
	access, err := svc.Refresh("whatever-the-client-held-onto")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)

	_, err = svc.Refresh("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
