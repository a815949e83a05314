package domain

import (
	"errors"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidToken   = errors.New("invalid token")
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrSessionExpired = errors.New("session expired")
)

// User is a registered principal. Users and their tokens are provisioned
// out of band; the service only reads them.
type User struct {
	ID      int64
	Surname string
	Email   string
	Status  string
	Token   string
}
