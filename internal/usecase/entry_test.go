package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ErlanBelekov/rideboard/internal/domain"
	"github.com/ErlanBelekov/rideboard/internal/usecase"
)

var validDraft = domain.EntryDraft{
	Title:   "Mitfahrt Berlin",
	Message: "Suche Mitfahrer",
	Type:    domain.EntryTypeOffer,
	Seats:   3,
}

func TestCreate_Valid_StoresWithOwner(t *testing.T) {
	var gotOwner *int64
	entries := &fakeEntryRepo{
		create: func(_ context.Context, d domain.EntryDraft, ownerID *int64) (*domain.Entry, error) {
			gotOwner = ownerID
			return &domain.Entry{ID: 42, Title: d.Title, Message: d.Message, Type: d.Type, Seats: d.Seats}, nil
		},
	}
	uc := usecase.NewEntryUsecase(entries, knownTokens("abc123"))

	created, err := uc.Create(context.Background(), "abc123", validDraft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 42 {
		t.Errorf("ID = %d, want 42", created.ID)
	}
	if gotOwner == nil || *gotOwner != testUser.ID {
		t.Errorf("owner = %v, want %d", gotOwner, testUser.ID)
	}
}

func TestCreate_Rejected_NeverTouchesStore(t *testing.T) {
	users := &fakeUserRepo{
		findByToken: func(_ context.Context, _ string) (*domain.User, error) {
			t.Fatal("owner lookup must not run for a rejected draft")
			return nil, nil
		},
	}
	entries := &fakeEntryRepo{
		create: func(_ context.Context, _ domain.EntryDraft, _ *int64) (*domain.Entry, error) {
			t.Fatal("insert must not run for a rejected draft")
			return nil, nil
		},
	}
	uc := usecase.NewEntryUsecase(entries, users)

	d := validDraft
	d.Message = "Werbung für mein Auto"

	_, err := uc.Create(context.Background(), "abc123", d)
	if !errors.Is(err, domain.ErrAdvertisingContent) {
		t.Fatalf("want ErrAdvertisingContent, got %v", err)
	}
}

func TestCreate_OwnerGone_ReturnsErrInvalidToken(t *testing.T) {
	entries := &fakeEntryRepo{
		create: func(_ context.Context, _ domain.EntryDraft, _ *int64) (*domain.Entry, error) {
			t.Fatal("insert must not run without an owner")
			return nil, nil
		},
	}
	uc := usecase.NewEntryUsecase(entries, knownTokens())

	_, err := uc.Create(context.Background(), "abc123", validDraft)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestCreate_InsertError_Propagates(t *testing.T) {
	dbErr := errors.New("connection reset")
	entries := &fakeEntryRepo{
		create: func(_ context.Context, _ domain.EntryDraft, _ *int64) (*domain.Entry, error) {
			return nil, dbErr
		},
	}
	uc := usecase.NewEntryUsecase(entries, knownTokens("abc123"))

	if _, err := uc.Create(context.Background(), "abc123", validDraft); !errors.Is(err, dbErr) {
		t.Fatalf("want wrapped dbErr, got %v", err)
	}
}

func TestGetByID_NotFound_IsDetectable(t *testing.T) {
	entries := &fakeEntryRepo{
		getByID: func(_ context.Context, _ int64) (*domain.Entry, error) {
			return nil, domain.ErrEntryNotFound
		},
	}
	uc := usecase.NewEntryUsecase(entries, knownTokens())

	if _, err := uc.GetByID(context.Background(), 99); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("want ErrEntryNotFound, got %v", err)
	}
}

func TestGetContact_ReturnsOwnerEmail(t *testing.T) {
	entries := &fakeEntryRepo{
		getContact: func(_ context.Context, id int64) (*domain.EntryContact, error) {
			if id != 5 {
				return nil, domain.ErrEntryNotFound
			}
			return &domain.EntryContact{Email: testUser.Email}, nil
		},
	}
	uc := usecase.NewEntryUsecase(entries, knownTokens())

	c, err := uc.GetContact(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Email != testUser.Email {
		t.Errorf("email = %q, want %q", c.Email, testUser.Email)
	}
}

func TestList_StoreError_Propagates(t *testing.T) {
	dbErr := errors.New("db down")
	entries := &fakeEntryRepo{
		list: func(_ context.Context) ([]*domain.Entry, error) { return nil, dbErr },
	}
	uc := usecase.NewEntryUsecase(entries, knownTokens())

	if _, err := uc.List(context.Background()); !errors.Is(err, dbErr) {
		t.Fatalf("want wrapped dbErr, got %v", err)
	}
}

func TestUserList_PassesThrough(t *testing.T) {
	users := &fakeUserRepo{
		list: func(_ context.Context) ([]*domain.User, error) {
			return []*domain.User{testUser}, nil
		},
	}
	got, err := usecase.NewUserUsecase(users).List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Email != testUser.Email {
		t.Errorf("got %v, want [%v]", got, testUser)
	}
}
