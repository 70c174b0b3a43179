// Package auth tracks the identity behind the API client's cookie
// session and exposes it to the mutation path.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Amii911/AlgoTrack/internal/api"
)

// Session is the identity surface the mutation path consults. It is
// re-checked on every write because session state can change between
// renders.
type Session interface {
	IsAuthenticated() bool
	CurrentUserID() (int64, bool)
}

// Ensure Manager implements Session at compile time.
var _ Session = (*Manager)(nil)

// Manager tracks the current cookie session. The api.Client owns the
// cookie jar; Manager only mirrors who the session belongs to.
type Manager struct {
	client *api.Client

	mu   sync.RWMutex
	user *api.User
}

// NewManager builds a Manager around the given API client.
func NewManager(client *api.Client) *Manager {
	return &Manager{client: client}
}

// Login authenticates with email/password credentials and records the
// resulting user.
func (m *Manager) Login(ctx context.Context, email, password string) (api.User, error) {
	user, err := m.client.Login(ctx, email, password)
	if err != nil {
		return api.User{}, fmt.Errorf("login: %w", err)
	}
	m.setUser(&user)
	return user, nil
}

// Register creates an account and records the session it establishes.
func (m *Manager) Register(ctx context.Context, email, password, name string) (api.User, error) {
	user, err := m.client.Register(ctx, email, password, name)
	if err != nil {
		return api.User{}, fmt.Errorf("register: %w", err)
	}
	m.setUser(&user)
	return user, nil
}

// Logout ends the remote session and clears the local identity. The
// local identity is cleared even when the remote call fails.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.client.Logout(ctx)
	m.setUser(nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Refresh asks the server who the session belongs to. An unauthorized
// answer clears the local identity without reporting an error.
func (m *Manager) Refresh(ctx context.Context) error {
	user, err := m.client.CheckAuth(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			m.setUser(nil)
			return nil
		}
		return fmt.Errorf("check session: %w", err)
	}
	m.setUser(&user)
	return nil
}

// IsAuthenticated reports whether a session user is recorded.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// CurrentUserID returns the session user's identifier when present.
func (m *Manager) CurrentUserID() (int64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return 0, false
	}
	return m.user.ID, true
}

// CurrentUser returns a copy of the session user when present.
func (m *Manager) CurrentUser() (api.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return api.User{}, false
	}
	return *m.user, true
}

func (m *Manager) setUser(user *api.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user == nil {
		m.user = nil
		return
	}
	copied := *user
	m.user = &copied
}
