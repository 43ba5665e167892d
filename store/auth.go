package store

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"admin-panel-client/models"
)

type authAPI interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error)
}

// TokenStore is the credential slot shared with the gateway.
type TokenStore interface {
	Token() string
	SetToken(token string)
	ClearToken()
}

// AuthStore owns the authenticated principal and the client-local session
// flags. The cart is only valid while IsAuthenticated holds.
type AuthStore struct {
	api    authAPI
	tokens TokenStore
	logger *zap.Logger

	mu              sync.RWMutex
	user            *models.User
	token           string
	isAuthenticated bool
	loginAttempted  bool
	loading         bool
	err             string
}

func NewAuthStore(api authAPI, tokens TokenStore, logger *zap.Logger) *AuthStore {
	return &AuthStore{
		api:    api,
		tokens: tokens,
		logger: logger,
	}
}

func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	resp, err := s.api.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.loginAttempted = true
	if err != nil {
		s.err = errMessage(err, "Login failed")
		s.isAuthenticated = false
		return err
	}
	s.user = &resp.User
	s.token = resp.Token
	s.isAuthenticated = true
	s.err = ""
	s.tokens.SetToken(resp.Token)
	return nil
}

func (s *AuthStore) Register(ctx context.Context, req models.RegisterRequest) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	resp, err := s.api.Register(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Registration failed")
		s.isAuthenticated = false
		return err
	}
	s.user = &resp.User
	s.token = resp.Token
	s.isAuthenticated = true
	s.err = ""
	s.tokens.SetToken(resp.Token)
	return nil
}

func (s *AuthStore) GetProfile(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	user, err := s.api.GetProfile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.loginAttempted = true
	if err != nil {
		s.isAuthenticated = false
		s.user = nil
		s.token = ""
		return err
	}
	s.user = user
	s.isAuthenticated = true
	return nil
}

// CheckAuthStatus restores a session from a stored token. A missing or
// already-expired token short-circuits without a network round-trip; an
// unusable token is discarded. Never returns an error: an unauthenticated
// outcome is a valid resolution.
func (s *AuthStore) CheckAuthStatus(ctx context.Context) {
	token := s.tokens.Token()
	if token == "" || tokenExpired(token) {
		s.tokens.ClearToken()
		s.mu.Lock()
		s.loading = false
		s.loginAttempted = true
		s.isAuthenticated = false
		s.user = nil
		s.token = ""
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	user, err := s.api.GetProfile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.loginAttempted = true
	if err != nil {
		s.tokens.ClearToken()
		s.isAuthenticated = false
		s.user = nil
		s.token = ""
		return
	}
	s.user = user
	s.token = token
	s.isAuthenticated = true
	s.err = ""
}

// Logout always clears the local session, even when the server call fails.
func (s *AuthStore) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn("logout request failed", zap.Error(err))
	}
	s.tokens.ClearToken()
	s.ClearAuth()
}

func (s *AuthStore) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	_, err := s.api.ChangePassword(ctx, currentPassword, newPassword)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Password change failed")
		return err
	}
	s.err = ""
	return nil
}

func (s *AuthStore) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.isAuthenticated = false
	s.err = ""
	s.loginAttempted = false
}

func (s *AuthStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// UpdateProfile merges edited profile fields into the session user.
func (s *AuthStore) UpdateProfile(name, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	user := *s.user
	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	s.user = &user
}

func (s *AuthStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

func (s *AuthStore) LoginAttempted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loginAttempted
}

func (s *AuthStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *AuthStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *AuthStore) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; the client has no signing key and the server re-validates every
// request anyway. Tokens without an exp claim are treated as unexpired.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
