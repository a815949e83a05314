package repository

import (
	"context"

	"github.com/ErlanBelekov/rideboard/internal/domain"
)

// UserRepository is the credential store. Tokens are provisioned outside
// this service, so it is read-only here.
type UserRepository interface {
	TokenExists(ctx context.Context, token string) (bool, error)
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
