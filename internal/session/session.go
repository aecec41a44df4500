// Package session keeps sign-in state in a server-side table. The browser
// cookie only carries the opaque session id; everything else lives here.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"kaamconnect/internal/models"
)

// Session is the proof of one successful sign-in, scoped to one role and
// one record id.
type Session struct {
	ID       string
	UserID   int
	UserType models.Role
	Name     string
	Email    string
	IssuedAt time.Time
}

// Manager is the session table. Sessions expire a fixed TTL after issuance;
// there is no sliding renewal.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]Session
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Issue creates a session for an authenticated user and returns it.
func (m *Manager) Issue(userID int, userType models.Role, name, email string) Session {
	s := Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		UserType: userType,
		Name:     name,
		Email:    email,
		IssuedAt: time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get resolves a session id. Expired sessions are dropped and read as
// absent, so an expired cookie behaves exactly like no cookie.
func (m *Manager) Get(id string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}
	if time.Since(s.IssuedAt) > m.ttl {
		delete(m.sessions, id)
		return Session{}, false
	}
	return s, true
}

// Revoke removes a session unconditionally. Revoking an unknown id is a
// no-op.
func (m *Manager) Revoke(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
