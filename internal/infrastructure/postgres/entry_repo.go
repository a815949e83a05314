package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ErlanBelekov/rideboard/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EntryRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewEntryRepository(pool *pgxpool.Pool, timeout time.Duration) *EntryRepository {
	return &EntryRepository{pool: pool, timeout: timeout}
}

func (r *EntryRepository) List(ctx context.Context) ([]*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT id, title, message, type, seats FROM entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []*domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (r *EntryRepository) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT id, title, message, type, seats FROM entries WHERE id = $1`

	return scanEntry(r.pool.QueryRow(ctx, query, id))
}

func (r *EntryRepository) GetContact(ctx context.Context, id int64) (*domain.EntryContact, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT u.email
		FROM   entries e
		JOIN   users u ON u.id = e.user_id
		WHERE  e.id = $1`

	var c domain.EntryContact
	if err := r.pool.QueryRow(ctx, query, id).Scan(&c.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("get entry contact: %w", err)
	}
	return &c, nil
}

func (r *EntryRepository) Create(ctx context.Context, draft domain.EntryDraft, ownerID *int64) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO entries (title, message, type, seats, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, message, type, seats`

	row := r.pool.QueryRow(ctx, query,
		draft.Title,
		draft.Message,
		draft.Type,
		draft.Seats,
		ownerID,
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return created, nil
}

func scanEntry(row rowScanner) (*domain.Entry, error) {
	var e domain.Entry
	err := row.Scan(&e.ID, &e.Title, &e.Message, &e.Type, &e.Seats)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}
	return &e, nil
}
