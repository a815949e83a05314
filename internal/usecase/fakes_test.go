package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/ErlanBelekov/rideboard/internal/domain"
)

// ---- fakes ----

type fakeUserRepo struct {
	tokenExists func(ctx context.Context, token string) (bool, error)
	findByToken func(ctx context.Context, token string) (*domain.User, error)
	list        func(ctx context.Context) ([]*domain.User, error)
}

func (r *fakeUserRepo) TokenExists(ctx context.Context, token string) (bool, error) {
	return r.tokenExists(ctx, token)
}

func (r *fakeUserRepo) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findByToken(ctx, token)
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return r.list(ctx)
}

type fakeEntryRepo struct {
	list       func(ctx context.Context) ([]*domain.Entry, error)
	getByID    func(ctx context.Context, id int64) (*domain.Entry, error)
	getContact func(ctx context.Context, id int64) (*domain.EntryContact, error)
	create     func(ctx context.Context, draft domain.EntryDraft, ownerID *int64) (*domain.Entry, error)
}

func (r *fakeEntryRepo) List(ctx context.Context) ([]*domain.Entry, error) {
	return r.list(ctx)
}

func (r *fakeEntryRepo) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	return r.getByID(ctx, id)
}

func (r *fakeEntryRepo) GetContact(ctx context.Context, id int64) (*domain.EntryContact, error) {
	return r.getContact(ctx, id)
}

func (r *fakeEntryRepo) Create(ctx context.Context, draft domain.EntryDraft, ownerID *int64) (*domain.Entry, error) {
	return r.create(ctx, draft, ownerID)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// ---- helpers ----

var testUser = &domain.User{ID: 7, Surname: "Muster", Email: "max@example.com", Status: "active", Token: "abc123"}

func knownTokens(tokens ...string) *fakeUserRepo {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return &fakeUserRepo{
		tokenExists: func(_ context.Context, token string) (bool, error) {
			return set[token], nil
		},
		findByToken: func(_ context.Context, token string) (*domain.User, error) {
			if !set[token] {
				return nil, domain.ErrUserNotFound
			}
			return testUser, nil
		},
	}
}
