package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/rideboard/internal/domain"
	"github.com/ErlanBelekov/rideboard/internal/metrics"
	"github.com/ErlanBelekov/rideboard/internal/repository"
)

type EntryUsecase struct {
	entries repository.EntryRepository
	users   repository.UserRepository
}

func NewEntryUsecase(entries repository.EntryRepository, users repository.UserRepository) *EntryUsecase {
	return &EntryUsecase{entries: entries, users: users}
}

func (u *EntryUsecase) List(ctx context.Context) ([]*domain.Entry, error) {
	entries, err := u.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (u *EntryUsecase) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	entry, err := u.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

func (u *EntryUsecase) GetContact(ctx context.Context, id int64) (*domain.EntryContact, error) {
	contact, err := u.entries.GetContact(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry contact: %w", err)
	}
	return contact, nil
}

// Create validates draft and stores it owned by the user holding token.
// Nothing is written unless every rule passes.
func (u *EntryUsecase) Create(ctx context.Context, token string, draft domain.EntryDraft) (*domain.Entry, error) {
	if err := domain.ValidateEntryDraft(draft); err != nil {
		metrics.EntriesRejectedTotal.WithLabelValues(rejectionRule(err)).Inc()
		return nil, err
	}

	owner, err := u.users.FindByToken(ctx, token)
	if err != nil {
		// the token was removed from the store after its session started
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}

	created, err := u.entries.Create(ctx, draft, &owner.ID)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	metrics.EntriesCreatedTotal.WithLabelValues(string(created.Type)).Inc()
	return created, nil
}

func rejectionRule(err error) string {
	switch {
	case errors.Is(err, domain.ErrAdvertisingContent):
		return "content_filter"
	case errors.Is(err, domain.ErrInvalidEntryType):
		return "invalid_type"
	case errors.Is(err, domain.ErrNoSeatsOffered):
		return "no_seats"
	case errors.Is(err, domain.ErrEmptyTitle):
		return "empty_title"
	case errors.Is(err, domain.ErrEmptyMessage):
		return "empty_message"
	default:
		return "other"
	}
}
