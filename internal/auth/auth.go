// Package auth implements the demo login contract: a single fixed
// credential pair and a JWT access/refresh token pair minted with a fixed
// secret. There is no user database and no authorization anywhere else in
// the API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetdesk/fleetdesk/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Service checks the demo credential pair and mints tokens.
type Service struct {
	username     string
	passwordHash []byte
	secret       []byte
	accessTTL    time.Duration
	refreshTTL   time.Duration
	now          func() time.Time
}

// NewService hashes the configured demo password once and returns a ready
// service.
func NewService(username, password, secret string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}
	return &Service{
		username:     username,
		passwordHash: hash,
		secret:       []byte(secret),
		accessTTL:    time.Hour,
		refreshTTL:   7 * 24 * time.Hour,
		now:          time.Now,
	}, nil
}

// Login verifies the demo credential pair and returns an access/refresh
// token pair. Any other pair yields ErrInvalidCredentials.
func (s *Service) Login(username, password string) (models.TokenPair, error) {
	if username != s.username {
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return models.TokenPair{}, ErrInvalidCredentials
	}

	access, err := s.mint("access", s.accessTTL)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, err := s.mint("refresh", s.refreshTTL)
	if err != nil {
		return models.TokenPair{}, err
	}
	return models.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh accepts any non-empty refresh value and returns a fresh access
// token. An empty value yields ErrInvalidToken. The demo contract does not
// verify the refresh token beyond presence.
func (s *Service) Refresh(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrInvalidToken
	}
	return s.mint("access", s.accessTTL)
}

func (s *Service) mint(tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":        s.username,
		"token_type": tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}
