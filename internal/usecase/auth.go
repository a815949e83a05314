package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ErlanBelekov/rideboard/internal/domain"
	"github.com/ErlanBelekov/rideboard/internal/metrics"
	"github.com/ErlanBelekov/rideboard/internal/repository"
	"github.com/ErlanBelekov/rideboard/internal/session"
)

// AuthUsecase decides who may use the protected routes.
//
// Login checks the credential store and starts a session. Authorize only
// consults the session table, so a token revoked at the store keeps working
// until its session goes idle.
type AuthUsecase struct {
	users    repository.UserRepository
	sessions *session.Table
	logger   *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, sessions *session.Table, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		sessions: sessions,
		logger:   logger.With("component", "auth_usecase"),
	}
}

func (u *AuthUsecase) Login(ctx context.Context, token string) error {
	exists, err := u.users.TokenExists(ctx, token)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("check token: %w", err)
	}
	if !exists {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return domain.ErrInvalidToken
	}

	u.sessions.Begin(token)
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	u.logger.DebugContext(ctx, "session started")
	return nil
}

func (u *AuthUsecase) Authorize(ctx context.Context, token string) error {
	err := u.sessions.TouchIfActive(token)
	switch {
	case err == nil:
		metrics.AuthorizationsTotal.WithLabelValues("ok").Inc()
		return nil
	case errors.Is(err, session.ErrExpired):
		metrics.AuthorizationsTotal.WithLabelValues("expired").Inc()
		u.logger.DebugContext(ctx, "session expired")
		return domain.ErrSessionExpired
	default:
		metrics.AuthorizationsTotal.WithLabelValues("not_logged_in").Inc()
		return domain.ErrNotLoggedIn
	}
}
