package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Manager owns the process-wide authentication state: a single-slot
// token register with atomic replace/clear semantics. The store is
// read exactly once, at construction; afterwards the manager's cached
// copy is authoritative for this process. The token value itself is
// never logged.
type Manager struct {
	store  Store
	logger zerolog.Logger

	mu      sync.Mutex
	token   string
	present bool

	nextSub     int
	subscribers map[int]func(loggedIn bool)
}

// NewManager creates a manager on top of the given store, deriving the
// initial state from a single read.
func NewManager(store Store, logger zerolog.Logger) (*Manager, error) {
	m := &Manager{
		store:       store,
		logger:      logger,
		subscribers: map[int]func(bool){},
	}

	token, err := store.Read()
	switch {
	case err == nil:
		m.token = token
		m.present = true
	case errors.Is(err, ErrNoToken):
		// cold start, unauthenticated
	default:
		return nil, fmt.Errorf("failed to read session store: %w", err)
	}

	logger.Debug().Bool("authenticated", m.present).Msg("Session initialized")
	return m, nil
}

// CurrentToken returns the live token, if any.
func (m *Manager) CurrentToken() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.present
}

// IsLoggedIn reports whether a token is present.
func (m *Manager) IsLoggedIn() bool {
	_, ok := m.CurrentToken()
	return ok
}

// SaveToken persists the token and transitions to authenticated.
func (m *Manager) SaveToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	m.token = token
	m.present = true
	m.logger.Debug().Msg("Session established")
	m.notifyLocked(true)
	return nil
}

// ClearToken removes the token and transitions to unauthenticated.
func (m *Manager) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	m.token = ""
	m.present = false
	m.logger.Debug().Msg("Session cleared")
	m.notifyLocked(false)
	return nil
}

// Subscribe registers a callback invoked on every authentication-state
// transition. The returned function cancels the subscription.
func (m *Manager) Subscribe(fn func(loggedIn bool)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

func (m *Manager) notifyLocked(loggedIn bool) {
	for _, fn := range m.subscribers {
		fn(loggedIn)
	}
}
