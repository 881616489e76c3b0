package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

// SessionResolver turns a storefront token into the stored session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(authorizationHeaderKey)
	fields := strings.Fields(header)
	if len(fields) != 2 || strings.ToLower(fields[0]) != authorizationTypeBearer {
		return "", false
	}
	return fields[1], true
}

// AuthMiddleware rejects requests without a live session.
func AuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
				Error:    "Unauthorized",
				Redirect: loginPath,
			})
			return
		}

		session, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			handleError(c, err, "Unauthorized")
			return
		}

		c.Set(authorizationPayloadKey, session)
		c.Next()
	}
}

// OptionalAuth attaches a session when one resolves and otherwise lets the
// request through anonymously.
func OptionalAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if session, err := resolver.Resolve(c.Request.Context(), token); err == nil {
				c.Set(authorizationPayloadKey, session)
			}
		}
		c.Next()
	}
}

// RequireRoles must run after AuthMiddleware.
func RequireRoles(rejection *domain.AuthError, roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, exists := getAuthPayload(c, authorizationPayloadKey)
		if !exists {
			handleError(c, domain.ErrUnauthenticated, "Unauthorized")
			return
		}
		if !session.HasRole(roles...) {
			handleError(c, rejection, "Access denied")
			return
		}
		c.Next()
	}
}

func getAuthPayload(c *gin.Context, key string) (*domain.Session, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	session, ok := value.(*domain.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}

// optionalSession returns nil for anonymous requests.
func optionalSession(c *gin.Context) *domain.Session {
	session, _ := getAuthPayload(c, authorizationPayloadKey)
	return session
}
