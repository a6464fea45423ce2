package events

import (
	"fmt"
	"sync"
)

// EventStore is the interface for storing and retrieving events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(sessionID string) ([]Event, error)
}

// InMemoryEventStore is an in-memory implementation of the EventStore interface.
type InMemoryEventStore struct {
	events      map[string][]Event
	order       []string // session ids, oldest first
	maxSessions int
	mutex       sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store that keeps every session.
func NewInMemoryEventStore() *InMemoryEventStore {
	return NewBoundedEventStore(0)
}

// NewBoundedEventStore creates an in-memory event store holding at most
// maxSessions sessions. Starting a session beyond the limit drops the
// oldest one. A limit of zero or less keeps everything.
func NewBoundedEventStore(maxSessions int) *InMemoryEventStore {
	return &InMemoryEventStore{
		events:      make(map[string][]Event),
		maxSessions: maxSessions,
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	sessionID := GetSessionID(event)
	if sessionID == "" {
		return fmt.Errorf("event %s has no session id", event.Name())
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.events[sessionID]; !ok {
		if s.maxSessions > 0 && len(s.order) >= s.maxSessions {
			delete(s.events, s.order[0])
			s.order = s.order[1:]
		}
		s.order = append(s.order, sessionID)
	}

	s.events[sessionID] = append(s.events[sessionID], event)
	return nil
}

// LoadEvents retrieves all events for the given session, oldest first.
func (s *InMemoryEventStore) LoadEvents(sessionID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events := s.events[sessionID]
	result := make([]Event, len(events))
	copy(result, events)
	return result, nil
}

// Sessions returns the number of sessions that recorded at least one event
func (s *InMemoryEventStore) Sessions() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.events)
}
