// Package session holds the in-memory login state for authenticated tokens.
//
// Expiry is lazy: an idle session is only removed when its token is next
// checked. A Sweeper can be run alongside to bound memory, without changing
// what callers of TouchIfActive observe.
package session

import (
	"errors"
	"hash/fnv"
	"sync"
	"time"
)

// IdleLimit is how long a session may go unused before the token has to log in again.
const IdleLimit = 10 * time.Minute

const defaultShards = 16

var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired")
)

type shard struct {
	mu       sync.Mutex
	sessions map[string]time.Time // token -> last activity
}

// Table maps tokens to their last activity. It is split into shards by a
// hash of the token; each shard lock covers the whole check-and-update.
type Table struct {
	shards    []*shard
	idleLimit time.Duration
	now       func() time.Time
}

type Option func(*Table)

// WithShards sets the number of partitions. Values below 1 are ignored.
func WithShards(n int) Option {
	return func(t *Table) {
		if n >= 1 {
			t.shards = newShards(n)
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Table) {
		t.now = now
	}
}

func NewTable(opts ...Option) *Table {
	t := &Table{
		shards:    newShards(defaultShards),
		idleLimit: IdleLimit,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func newShards(n int) []*shard {
	shards := make([]*shard, n)
	for i := range shards {
		shards[i] = &shard{sessions: make(map[string]time.Time)}
	}
	return shards
}

func (t *Table) shardFor(token string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(token))
	return t.shards[h.Sum32()%uint32(len(t.shards))]
}

// Begin starts or restarts the session for token.
func (t *Table) Begin(token string) {
	s := t.shardFor(token)

	s.mu.Lock()
	s.sessions[token] = t.now()
	s.mu.Unlock()
}

// TouchIfActive refreshes the session for token. It returns ErrNotFound if
// there is none and ErrExpired, after removing it, if it has been idle for
// longer than the idle limit.
func (t *Table) TouchIfActive(token string) error {
	s := t.shardFor(token)

	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.sessions[token]
	if !ok {
		return ErrNotFound
	}

	now := t.now()
	if now.Sub(last) > t.idleLimit {
		delete(s.sessions, token)
		return ErrExpired
	}

	// last activity never moves backwards
	if now.After(last) {
		s.sessions[token] = now
	}
	return nil
}

// Sweep removes every session idle for longer than the idle limit and
// returns how many were removed.
func (t *Table) Sweep() int {
	removed := 0
	for _, s := range t.shards {
		s.mu.Lock()
		now := t.now()
		for token, last := range s.sessions {
			if now.Sub(last) > t.idleLimit {
				delete(s.sessions, token)
				removed++
			}
		}
		s.mu.Unlock()
	}
	return removed
}

// Len returns the number of sessions currently held, expired or not.
func (t *Table) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.Lock()
		n += len(s.sessions)
		s.mu.Unlock()
	}
	return n
}
