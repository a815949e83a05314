package repository

import (
	"context"

	"github.com/ErlanBelekov/rideboard/internal/domain"
)

type EntryRepository interface {
	List(ctx context.Context) ([]*domain.Entry, error)
	GetByID(ctx context.Context, id int64) (*domain.Entry, error)

	// GetContact joins the entry to its owner. Entries stored without an
	// owner report domain.ErrEntryNotFound, same as a missing entry.
	GetContact(ctx context.Context, id int64) (*domain.EntryContact, error)

	// Create stores an already validated draft. A nil ownerID stores the
	// entry without an owner.
	Create(ctx context.Context, draft domain.EntryDraft, ownerID *int64) (*domain.Entry, error)
}
