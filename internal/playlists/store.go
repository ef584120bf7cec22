// Package playlists persists named playlists as a TOML file of song paths.
package playlists

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

var (
	ErrExists    = errors.New("playlist already exists")
	ErrNotFound  = errors.New("playlist not found")
	ErrEmptyName = errors.New("playlist name is empty")
)

// Playlist is a named, ordered list of song paths.
type Playlist struct {
	Name  string   `toml:"name"`
	Songs []string `toml:"songs"`
}

type document struct {
	Playlists []Playlist `toml:"playlists"`
}

// Store holds the playlists in memory. Mutations are written by Save.
type Store struct {
	path      string
	playlists []Playlist
}

// DefaultPath returns $XDG_DATA_HOME/tunedeck/data.toml.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "tunedeck", "data.toml")
}

// New returns an empty store bound to path.
func New(path string) *Store {
	return &Store{path: path}
}

// Open returns a store loaded from path.
func Open(path string) (*Store, error) {
	s := New(path)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory playlists with the file's content.
// A missing file yields an empty set.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.playlists = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read playlists: %w", err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	s.playlists = doc.Playlists
	return nil
}

// Save writes all playlists, replacing the file atomically.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := toml.Marshal(document{Playlists: s.playlists})
	if err != nil {
		return fmt.Errorf("marshal playlists: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".data-*.toml")
	if err != nil {
		return fmt.Errorf("write playlists: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write playlists: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write playlists: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write playlists: %w", err)
	}
	return nil
}

// Len returns the number of playlists.
func (s *Store) Len() int {
	return len(s.playlists)
}

// Names returns the playlist names in order.
func (s *Store) Names() []string {
	names := make([]string, len(s.playlists))
	for i, p := range s.playlists {
		names[i] = p.Name
	}
	return names
}

// Songs returns a copy of the song paths of playlist i.
func (s *Store) Songs(i int) ([]string, error) {
	if err := s.check(i); err != nil {
		return nil, err
	}
	return slices.Clone(s.playlists[i].Songs), nil
}

// Create appends an empty playlist. Names are trimmed and must be unique.
func (s *Store) Create(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1, ErrEmptyName
	}
	if slices.ContainsFunc(s.playlists, func(p Playlist) bool { return p.Name == name }) {
		return -1, fmt.Errorf("%w: %s", ErrExists, name)
	}
	s.playlists = append(s.playlists, Playlist{Name: name})
	return len(s.playlists) - 1, nil
}

// Delete removes playlist i and returns it.
func (s *Store) Delete(i int) (Playlist, error) {
	if err := s.check(i); err != nil {
		return Playlist{}, err
	}
	p := s.playlists[i]
	s.playlists = slices.Delete(s.playlists, i, i+1)
	return p, nil
}

// SetSongs replaces the songs of playlist i.
func (s *Store) SetSongs(i int, paths []string) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.playlists[i].Songs = slices.Clone(paths)
	return nil
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.playlists) {
		return fmt.Errorf("%w: index %d of %d", ErrNotFound, i, len(s.playlists))
	}
	return nil
}
