package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Manager is a registry of live sessions keyed by ID. It is safe for
// concurrent use; the sessions it hands out are not.
type Manager struct {
	cfg      *config.Config
	sessions map[uuid.UUID]*Session
	mu       sync.RWMutex
}

// NewManager creates an empty registry whose sessions share cfg.
func NewManager(cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Manager{
		cfg:      cfg,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts a session at the initial position and registers it.
func (m *Manager) Create() *Session {
	s := New(m.cfg)
	m.add(s)
	return s
}

// CreateFromFEN starts a session from fen and registers it.
func (m *Manager) CreateFromFEN(fen string) (*Session, error) {
	s, err := NewFromFEN(m.cfg, fen)
	if err != nil {
		return nil, err
	}
	m.add(s)
	return s, nil
}

func (m *Manager) add(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s

	if m.cfg.Verbosity > 1 {
		fmt.Fprintf(m.cfg.LogFile, "session %s created\n", s.ID())
	}
}

// Get returns the session with the given ID.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Lookup parses a textual ID and returns its session.
func (m *Manager) Lookup(id string) (*Session, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", id, errors.ErrSessionNotFound)
	}
	s, ok := m.Get(parsed)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", parsed, errors.ErrSessionNotFound)
	}
	return s, nil
}

// Remove drops a session and reports whether it existed.
func (m *Manager) Remove(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Len returns the number of registered sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
