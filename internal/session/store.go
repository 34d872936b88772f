package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// AuthenticatedKey is the preference key holding the session flag.
const AuthenticatedKey = "authenticated"

// ErrPersistenceWrite is returned when the backend rejects or cannot complete a write.
var ErrPersistenceWrite = errors.New("session: persistence write failed")

// KeyValueStore is the preferences collaborator the store persists through.
type KeyValueStore interface {
	GetBoolean(ctx context.Context, key string, def bool) (bool, error)
	PutBoolean(ctx context.Context, key string, value bool) error
}

// Observer receives the mirror value after each successful write.
type Observer = func(authenticated bool)

type subscription struct {
	id int
	fn Observer
}

// Store wraps the persisted authentication flag.
type Store struct {
	kv  KeyValueStore
	log *slog.Logger

	mu        sync.Mutex
	mirror    bool
	observers []subscription
	nextID    int
}

// New builds a Store and seeds the mirror from the backend.
func New(ctx context.Context, kv KeyValueStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, log: logger.With("component", "session")}
	s.mirror = s.Read(ctx)
	return s
}

// Read returns the persisted flag. Absent values and read errors yield false.
func (s *Store) Read(ctx context.Context) bool {
	v, err := s.kv.GetBoolean(ctx, AuthenticatedKey, false)
	if err != nil {
		s.log.Warn("read session flag failed, treating as signed out", "err", err)
		return false
	}
	return v
}

// IsSignedIn reports the mirror value.
func (s *Store) IsSignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mirror
}

// SetAuthenticated persists value, then updates the mirror and notifies
// observers. On a failed write neither happens.
func (s *Store) SetAuthenticated(ctx context.Context, value bool) error {
	if err := s.kv.PutBoolean(ctx, AuthenticatedKey, value); err != nil {
		s.log.Error("persist session flag failed", "authenticated", value, "err", err)
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}

	s.mu.Lock()
	s.mirror = value
	observers := make([]Observer, 0, len(s.observers))
	for _, sub := range s.observers {
		observers = append(observers, sub.fn)
	}
	s.mu.Unlock()

	s.log.Info("session flag stored", "authenticated", value)
	for _, fn := range observers {
		fn(value)
	}
	return nil
}

// SignIn marks the session authenticated.
func (s *Store) SignIn(ctx context.Context) error {
	return s.SetAuthenticated(ctx, true)
}

// SignOut marks the session unauthenticated.
func (s *Store) SignOut(ctx context.Context) error {
	return s.SetAuthenticated(ctx, false)
}

// Subscribe registers fn for future notifications. The returned func removes
// it; calling it again is a no-op.
func (s *Store) Subscribe(fn Observer) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.observers {
				if sub.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					return
				}
			}
		})
	}
}
