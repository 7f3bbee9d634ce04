package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/octobees/vacation-recommendations/web/internal/service"
)

type entry struct {
	controller *service.FormController
	lastSeen   time.Time
}

// Store keeps one FormController per visitor in memory. Entries idle for
// longer than the ttl are dropped by Sweep.
type Store struct {
	mu      sync.RWMutex
	data    map[string]*entry
	ttl     time.Duration
	factory func() *service.FormController
	now     func() time.Time
}

// NewStore builds a store that creates controllers with factory.
func NewStore(ttl time.Duration, factory func() *service.FormController) *Store {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Store{
		data:    make(map[string]*entry),
		ttl:     ttl,
		factory: factory,
		now:     time.Now,
	}
}

// Get returns the controller for id and refreshes its expiry.
// Missing or expired sessions report false.
func (s *Store) Get(id string) (*service.FormController, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.data, id)
		return nil, false
	}
	e.lastSeen = now
	return e.controller, true
}

// Create registers a fresh controller under a new random id.
func (s *Store) Create() (string, *service.FormController) {
	id := uuid.NewString()
	ctrl := s.factory()

	s.mu.Lock()
	s.data[id] = &entry{controller: ctrl, lastSeen: s.now()}
	s.mu.Unlock()

	return id, ctrl
}

// Delete drops the entry for id, if any.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.data, id)
	s.mu.Unlock()
}

// Len reports the number of live entries, expired ones included until swept.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Sweep removes entries idle for longer than the ttl and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.data {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}
