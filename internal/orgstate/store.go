// Package orgstate holds the process-wide current organization and persists it.
package orgstate

import (
	"sync"

	"orgsetup/internal/domain"
)

// Subscriber is notified with the new value after every Set.
type Subscriber func(domain.OrgInfo)

// Store is the shared current-organization state. The create flow only
// writes it; screens and the persistence layer subscribe to it.
type Store struct {
	mu     sync.Mutex
	info   domain.OrgInfo
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn Subscriber
}

// NewStore returns a store seeded with initial.
func NewStore(initial domain.OrgInfo) *Store {
	return &Store{info: initial}
}

// Current returns the current organization info.
func (s *Store) Current() domain.OrgInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// Set replaces the current info and notifies subscribers in registration order.
// Subscribers run synchronously on the caller's goroutine, outside the lock.
func (s *Store) Set(info domain.OrgInfo) {
	s.mu.Lock()
	s.info = info
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(info)
	}
}

// SetOrgInfo satisfies the create flow's state writer.
func (s *Store) SetOrgInfo(info domain.OrgInfo) {
	s.Set(info)
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Subscriber) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}
