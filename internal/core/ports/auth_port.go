package ports

import (
	"context"
	"time"

	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/google/uuid"
)

type TokenService interface {
	IssueToken(session *domain.Session, ttl time.Duration) (string, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}

// SessionStore keeps sessions between login and logout.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
