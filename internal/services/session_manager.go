package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"folio.dev/internal/catalog"
)

// SessionManager hands out one Controller per visitor session
type SessionManager struct {
	mu       sync.RWMutex
	store    *catalog.Store
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*Controller
}

// NewSessionManager creates a SessionManager whose sessions expire after
// ttl without interaction
func NewSessionManager(store *catalog.Store, ttl time.Duration) *SessionManager {
	return &SessionManager{
		store:    store,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Controller),
	}
}

// WithClock replaces the clock used for new sessions and sweeps
func (m *SessionManager) WithClock(now func() time.Time) *SessionManager {
	m.now = now
	return m
}

// Get returns the controller for id, creating a new session when id is
// empty or unknown. The returned id is the one to hand back to the client.
func (m *SessionManager) Get(id string) (*Controller, string) {
	if c, ok := m.Lookup(id); ok {
		return c, id
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.sessions[id]; ok {
		return c, id
	}

	id = uuid.NewString()
	c := NewController(m.store, nil, m.now)
	m.sessions[id] = c
	return c, id
}

// Lookup returns the controller for an existing session without creating
// one
func (m *SessionManager) Lookup(id string) (*Controller, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.sessions[id]
	return c, ok
}

// Detached returns a controller that is not tracked as a session, for
// connections that own their state
func (m *SessionManager) Detached(target RenderTarget) *Controller {
	return NewController(m.store, target, m.now)
}

// Drop removes a session
func (m *SessionManager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than the ttl and returns how many
// were removed
func (m *SessionManager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, c := range m.sessions {
		if c.LastSeen().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		slog.Info("expired catalog sessions", "removed", removed, "remaining", len(m.sessions))
	}
	return removed
}
