package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/filestate/backend/internal/filestore"
	"github.com/itchan-dev/filestate/shared/logger"
	"github.com/itchan-dev/filestate/shared/middleware/metrics"
)

// Listener is called with the new state after a dispatch changed it.
// Listeners must not dispatch from inside the callback.
type Listener func(filestore.State)

// Store serializes events into the file state and lets readers take snapshots.
type Store struct {
	dispatchMu sync.Mutex // serializes Dispatch, including listener calls

	mu        sync.RWMutex
	state     filestore.State
	listeners map[int]Listener
	nextId    int
}

// NewStore creates a store holding the empty initial state.
func NewStore() *Store {
	return &Store{
		state:     filestore.InitialState(),
		listeners: make(map[int]Listener),
	}
}

// Dispatch applies e and reports whether the state changed.
func (s *Store) Dispatch(ctx context.Context, e filestore.Event) bool {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.RLock()
	prev := s.state
	s.mu.RUnlock()

	log := logger.Component("file_store")
	next := filestore.Reduce(prev, e)
	changed := !prev.Same(next)
	metrics.ObserveDispatch(string(e.Type()), changed)
	if !changed {
		log.DebugContext(ctx, "event left file state unchanged",
			"event", e.Type())
		return false
	}

	s.mu.Lock()
	s.state = next
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	metrics.SetStateSize(len(next.Files), len(next.FileIdsByPostId))
	if _, ok := e.(filestore.LogoutSucceeded); ok {
		log.InfoContext(ctx, "file state reset on logout",
			"dropped_files", len(prev.Files))
	} else {
		log.DebugContext(ctx, "file state changed",
			"event", e.Type(),
			"files", len(next.Files),
			"posts", len(next.FileIdsByPostId))
	}

	for _, l := range listeners {
		l(next)
	}
	return true
}

// State returns the current snapshot. Snapshots are never mutated by the
// store, so they can be read without holding any lock.
func (s *Store) State() filestore.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers l for state changes and returns a function removing it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextId
	s.nextId++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}
