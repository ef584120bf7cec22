package state

import "sync"

// Mock is an in-memory Interface for tests. Saves apply immediately.
type Mock struct {
	mu       sync.Mutex
	navState *NavigationState
	saves    int
	closed   bool
	saveErr  error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveNavigation(state NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.navState = &state
	m.saves++
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.navState == nil {
		return nil, nil //nolint:nilnil // mirrors Manager on first run
	}
	s := *m.navState
	return &s, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *Mock) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveErr
}

// Test helpers

func (m *Mock) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *Mock) SetNavigation(state *NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.navState = state
}

func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
