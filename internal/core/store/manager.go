package store

import (
	"context"
	"log/slog"
	"sync"

	portsrepo "github.com/limpanome/crm_backend/internal/core/ports/repositories"
)

// Manager owns one store per authenticated operator. A store is built and
// initialized on the first request of a session and torn down on logout.
type Manager struct {
	repos  portsrepo.Provider
	logger *slog.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager creates an empty store manager.
func NewManager(repos portsrepo.Provider, logger *slog.Logger) *Manager {
	return &Manager{
		repos:  repos,
		logger: logger,
		stores: make(map[string]*Store),
	}
}

// ForUser returns the user's store, initializing it from persistence on
// first use. Initialization failures are not cached; the next request
// retries.
func (m *Manager) ForUser(ctx context.Context, userID string) (*Store, error) {
	m.mu.Lock()
	if s, ok := m.stores[userID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	s := New(userID, m.repos, m.logger)
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have initialized concurrently; keep the first.
	if existing, ok := m.stores[userID]; ok {
		return existing, nil
	}
	m.stores[userID] = s
	return s, nil
}

// Drop tears down the user's store, e.g. on logout. The next request
// reinitializes from persistence.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, userID)
}
