package tab

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Store owns the single authoritative active tab value. It is created once at the app
// root and handed to consumers through Handle values.
type Store struct {
	mu          sync.RWMutex
	active      Tab
	revision    uint64
	closed      bool
	nextSubID   int
	subscribers map[int]func(Tab)
}

func NewStore() *Store {
	return &Store{
		active:      Home,
		subscribers: map[int]func(Tab){},
	}
}

func (s *Store) Active() Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.active
}

// Revision increases by one on every accepted SetActive call, including ones that set
// the value already in effect.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.revision
}

// SetActive replaces the active tab. Values outside the enumeration are rejected and
// the previous value stays in effect.
func (s *Store) SetActive(next Tab) error {
	if !next.Valid() {
		slog.Warn("Rejected tab change", slog.String("tab", next.String()))

		return errors.Join(ErrInvalidTab, fmt.Errorf("tab value %d", int(next)))
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return ErrNoStoreBound
	}
	s.active = next
	s.revision++
	subs := make([]func(Tab), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}

	return nil
}

// Subscribe registers fn to be called after every accepted SetActive. The returned
// func removes the subscription.
func (s *Store) Subscribe(fn func(Tab)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	subID := s.nextSubID
	s.nextSubID++
	s.subscribers[subID] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, subID)
	}
}

// Close tears the store down. Handles referencing it become unbound.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	clear(s.subscribers)
}

func (s *Store) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.closed
}

// Handle returns a capability to read and change the active tab.
func (s *Store) Handle() Handle {
	return Handle{store: s}
}

// Handle is the only way consumers reach a Store. The zero value is unbound and every
// access through it fails with ErrNoStoreBound.
type Handle struct {
	store *Store
}

func (h Handle) Bound() bool {
	return h.store != nil && !h.store.isClosed()
}

func (h Handle) Active() (Tab, error) {
	if !h.Bound() {
		return Home, ErrNoStoreBound
	}

	return h.store.Active(), nil
}

func (h Handle) Revision() (uint64, error) {
	if !h.Bound() {
		return 0, ErrNoStoreBound
	}

	return h.store.Revision(), nil
}

func (h Handle) SetActive(next Tab) error {
	if !h.Bound() {
		return ErrNoStoreBound
	}

	return h.store.SetActive(next)
}
