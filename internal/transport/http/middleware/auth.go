package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ErlanBelekov/rideboard/internal/domain"
	"github.com/gin-gonic/gin"
)

// TokenKey is the gin context key holding the authorized bearer token.
const TokenKey = "token"

const bearerPrefix = "Bearer "

var (
	ErrMissingAuthHeader = errors.New("missing Authorization header")
	ErrMalformedAuth     = errors.New("expected: Bearer <token>")
	ErrEmptyToken        = errors.New("empty token")
)

// authorizer is the subset of AuthUsecase the middleware needs.
type authorizer interface {
	Authorize(ctx context.Context, token string) error
}

// ExtractBearer returns the token from an "Authorization: Bearer <token>"
// header value. The scheme is case-sensitive and followed by exactly one space.
func ExtractBearer(header string) (string, error) {
	if header == "" {
		return "", ErrMissingAuthHeader
	}
	raw, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return "", ErrMalformedAuth
	}
	token := strings.TrimSpace(raw)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// RequireSession lets a request through only if its bearer token has a live
// session, refreshing that session. The token is stored under TokenKey.
func RequireSession(gate authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ExtractBearer(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": bearerReason(err)})
			return
		}

		if err := gate.Authorize(c.Request.Context(), token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": sessionReason(err)})
			return
		}

		c.Set(TokenKey, token)
		c.Next()
	}
}

func bearerReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingAuthHeader):
		return "Missing Authorization header"
	case errors.Is(err, ErrEmptyToken):
		return "Empty token"
	default:
		return "Expected: Bearer <token>"
	}
}

func sessionReason(err error) string {
	if errors.Is(err, domain.ErrSessionExpired) {
		return "Session expired (idle > 10 min). Call POST /login/{token} again."
	}
	return "Not logged in. Call POST /login/{token}"
}
