package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LoginResult is handed to the browser after a successful login.
type LoginResult struct {
	Token     string          `json:"access_token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      domain.Identity `json:"user"`
}

type AuthService struct {
	api      ports.AuthAPI
	sessions ports.SessionStore
	tokens   ports.TokenService
	logger   ports.LoggerPort
	validate *validator.Validate
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(
	api ports.AuthAPI,
	sessions ports.SessionStore,
	tokens ports.TokenService,
	logger ports.LoggerPort,
	validate *validator.Validate,
	ttl time.Duration,
) *AuthService {
	return &AuthService{
		api:      api,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
		validate: validate,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login authenticates against the API and opens a storefront session.
func (s *AuthService) Login(ctx context.Context, creds *domain.Credentials) (*LoginResult, error) {
	if err := s.validate.Struct(creds); err != nil {
		return nil, validationError(err)
	}

	apiToken, user, err := s.api.Login(ctx, creds)
	if err != nil {
		s.logger.Warn("Login failed", map[string]interface{}{
			"error":    err.Error(),
			"username": creds.Username,
		})
		return nil, err
	}

	session := &domain.Session{
		ID:        uuid.New(),
		Token:     apiToken,
		User:      *user,
		CreatedAt: s.now().UTC(),
	}
	if err := s.sessions.Save(ctx, session, s.ttl); err != nil {
		s.logger.Error("Failed to save session", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, fmt.Errorf("save session: %w", err)
	}

	token, err := s.tokens.IssueToken(session, s.ttl)
	if err != nil {
		s.logger.Error("Failed to issue session token", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("User logged in", map[string]interface{}{
		"user_id":    user.ID,
		"role":       user.Role,
		"session_id": session.ID,
	})

	return &LoginResult{
		Token:     token,
		ExpiresAt: session.CreatedAt.Add(s.ttl),
		User:      user.Identity(),
	}, nil
}

// Register creates the account and logs straight in.
func (s *AuthService) Register(ctx context.Context, reg *domain.Registration) (*LoginResult, error) {
	if err := s.validate.Struct(reg); err != nil {
		return nil, validationError(err)
	}

	user, err := s.api.Register(ctx, reg)
	if err != nil {
		s.logger.Warn("Registration failed", map[string]interface{}{
			"error":    err.Error(),
			"username": reg.Username,
		})
		return nil, err
	}

	s.logger.Info("User registered", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return s.Login(ctx, &domain.Credentials{Username: reg.Username, Password: reg.Password})
}

func (s *AuthService) Logout(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return domain.ErrUnauthenticated
	}
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		s.logger.Error("Failed to delete session", map[string]interface{}{
			"error":      err.Error(),
			"session_id": session.ID,
		})
		return fmt.Errorf("delete session: %w", err)
	}

	s.logger.Info("User logged out", map[string]interface{}{
		"user_id":    session.User.ID,
		"session_id": session.ID,
	})
	return nil
}

// Resolve verifies a storefront token and returns its live session.
// Anything short of a valid, stored session is ErrUnauthenticated.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", domain.ErrUnauthenticated)
	}

	session, err := s.sessions.Get(ctx, payload.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrAuth) {
			s.logger.Error("Failed to read session", map[string]interface{}{
				"error":      err.Error(),
				"session_id": payload.ID,
			})
		}
		return nil, fmt.Errorf("load session: %w", domain.ErrUnauthenticated)
	}

	if session.User.ID != payload.UserID {
		s.logger.Warn("Session token does not match stored session", map[string]interface{}{
			"session_id": payload.ID,
		})
		return nil, domain.ErrUnauthenticated
	}
	return session, nil
}

// CurrentUser returns the identity behind session, or nil when anonymous.
func (s *AuthService) CurrentUser(session *domain.Session) *domain.Identity {
	if session == nil {
		return nil
	}
	identity := session.User.Identity()
	return &identity
}
