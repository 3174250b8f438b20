package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/mwsasi/kandy-summer/internal/store"
)

// Session is the currently signed-in organizer, minus the credential hash.
type Session struct {
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// Manager holds the active session in memory and mirrors it into the store so
// it survives a restart. Sessions never expire; Close is the only way out.
type Manager struct {
	mu      sync.RWMutex
	db      store.Store
	current *Session
}

// NewManager builds a session manager backed by a collection store.
func NewManager(db store.Store) *Manager {
	return &Manager{db: db}
}

// Open records the given session as current and persists it.
func (m *Manager) Open(ctx context.Context, sess Session) error {
	if sess.LoggedInAt.IsZero() {
		sess.LoggedInAt = time.Now().UTC()
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := m.db.Save(ctx, store.SessionKey, payload); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = &sess
	m.mu.Unlock()
	return nil
}

// Restore loads a persisted session, if any, and makes it current. Called
// once at process start. An undecodable record reads as no session.
func (m *Manager) Restore(ctx context.Context) (Session, bool, error) {
	payload, ok, err := m.db.Load(ctx, store.SessionKey)
	if err != nil {
		return Session{}, false, err
	}
	if !ok {
		return Session{}, false, nil
	}
	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return Session{}, false, nil
	}

	m.mu.Lock()
	m.current = &sess
	m.mu.Unlock()
	return sess, true, nil
}

// Current reports the active session.
func (m *Manager) Current() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// Close drops the active session in memory and in the store.
func (m *Manager) Close(ctx context.Context) error {
	if err := m.db.Clear(ctx, store.SessionKey); err != nil {
		return err
	}
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return nil
}
