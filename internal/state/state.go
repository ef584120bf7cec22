package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "tunedeck"
	dbFileName   = "state.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	debounce  time.Duration
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *NavigationState
	lastErr   error
}

// OpenDefault opens the database under $XDG_STATE_HOME/tunedeck.
func OpenDefault() (*Manager, error) {
	return Open(DefaultPath())
}

// DefaultPath returns the default database location.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, appName, dbFileName)
}

func Open(path string) (*Manager, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// :memory: databases are per connection.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, debounce: saveDebounce}, nil
}

// Close flushes any pending navigation save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	var flushErr error
	if pending != nil {
		flushErr = saveNavigation(m.db, *pending)
	}

	if err := m.db.Close(); err != nil {
		return err
	}
	return flushErr
}

func (m *Manager) GetNavigation() (*NavigationState, error) {
	return getNavigation(m.db)
}

// SaveNavigation schedules a write. Calls within the debounce window
// collapse into one write of the latest state.
func (m *Manager) SaveNavigation(state NavigationState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			err := saveNavigation(m.db, *pending)
			m.saveMu.Lock()
			m.lastErr = err
			m.saveMu.Unlock()
		}
	})
}

// LastError returns the error of the most recent background save, if any.
func (m *Manager) LastError() error {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	return m.lastErr
}
