// Package auth provides credential handling for the shop platform API.
// The platform authenticates either with HTTP basic auth (private app
// api key + password) or a static OAuth access token sent as a bearer
// credential; there is no refresh grant.
package auth

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrStaticTokenCannotRefresh is returned when a refresh is requested for
// a token the platform cannot rotate.
var ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")

// TokenManager supplies the access token attached to requests.
type TokenManager interface {
	// GetToken returns the current access token.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken forces a token refresh where the grant supports it.
	RefreshToken(ctx context.Context) error

	// SetToken replaces the current token.
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager serves a fixed access token. SetToken may replace it
// at runtime (e.g. after a re-install flow); refresh is unsupported.
type StaticTokenManager struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenManager creates a manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token, nil
}

// RefreshToken implements TokenManager.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

// SetToken implements TokenManager.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}
