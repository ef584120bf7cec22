// internal/app/manager.go
package app

import (
	"errors"
	"slices"

	"github.com/llehouerou/tunedeck/internal/cond"
	"github.com/llehouerou/tunedeck/internal/errmsg"
	"github.com/llehouerou/tunedeck/internal/library"
	"github.com/llehouerou/tunedeck/internal/playlists"
	"github.com/llehouerou/tunedeck/internal/ui/selection"
)

// rebuildManagerSongs recreates the selection state from the playlist under
// the manager cursor. The song cursor keeps its row when it still exists.
func (m *Model) rebuildManagerSongs() {
	var selected []int
	if i, ok := m.ManagerPlaylists.Selected(); ok && m.Store != nil {
		if paths, err := m.Store.Songs(i); err == nil {
			for _, p := range paths {
				if j, ok := m.songByPath[p]; ok {
					selected = append(selected, j)
				}
			}
		}
	}

	index, ok := m.ManagerSongs.Index()
	if !ok {
		index = cond.If(len(m.Songs) > 0, 0, -1)
	}
	m.ManagerSongs = selection.New(len(m.Songs),
		selection.WithIndex(index),
		selection.WithSelected(selected...),
	)
}

// syncManagerPlaylist writes the selection set back into the playlist under
// the manager cursor.
func (m *Model) syncManagerPlaylist() {
	i, ok := m.ManagerPlaylists.Selected()
	if !ok || m.Store == nil {
		return
	}
	existing, err := m.Store.Songs(i)
	if err != nil {
		return
	}
	paths := mergeSelection(existing, m.Songs, m.ManagerSongs.Selecteds())
	if slices.Equal(paths, existing) {
		return
	}
	if err := m.Store.SetSongs(i, paths); err != nil {
		m.report(LevelError, errmsg.Format(errmsg.OpPlaylistUpdate, err))
	}
}

// mergeSelection returns the playlist after applying the selection set.
// Entries outside the library are kept in place, library songs that are
// no longer selected are dropped, and newly selected songs are appended
// in library order.
func mergeSelection(existing []string, songs []library.Song, selected []int) []string {
	want := make(map[string]bool, len(selected))
	for _, i := range selected {
		want[songs[i].Path] = true
	}
	inLibrary := make(map[string]bool, len(songs))
	for _, s := range songs {
		inLibrary[s.Path] = true
	}

	result := make([]string, 0, len(existing)+len(selected))
	kept := make(map[string]bool, len(existing))
	for _, p := range existing {
		if !inLibrary[p] || want[p] {
			result = append(result, p)
			kept[p] = true
		}
	}
	for _, i := range selected {
		if p := songs[i].Path; !kept[p] {
			result = append(result, p)
			kept[p] = true
		}
	}
	return result
}

func (m *Model) managerNext() {
	switch m.ManagerFocus {
	case FocusSongs:
		m.ManagerSongs.Next()
	default:
		m.syncManagerPlaylist()
		m.ManagerPlaylists.Next(m.playlistCount())
		m.rebuildManagerSongs()
		m.savePlaylists()
	}
}

func (m *Model) managerPrevious() {
	switch m.ManagerFocus {
	case FocusSongs:
		m.ManagerSongs.Previous()
	default:
		m.syncManagerPlaylist()
		m.ManagerPlaylists.Previous(m.playlistCount())
		m.rebuildManagerSongs()
		m.savePlaylists()
	}
}

// toggleSong flips membership of the song under the cursor in the current playlist.
func (m *Model) toggleSong() {
	if _, ok := m.ManagerPlaylists.Selected(); !ok {
		m.report(LevelWarn, "Create a playlist first.")
		return
	}
	toggle, ok := m.ManagerSongs.ToggleSelect()
	if !ok {
		return
	}
	m.syncManagerPlaylist()
	m.Logger.Debug().
		Str("song", m.Songs[toggle.Index].Path).
		Bool("selected", toggle.Selected).
		Msg("toggled song")
}

// createPlaylist adds a playlist named after the input and clears the input.
func (m *Model) createPlaylist() {
	name := m.Input.Value()
	if m.Store == nil {
		return
	}

	m.syncManagerPlaylist()
	prev := m.playerPlaylistName()
	i, err := m.Store.Create(name)
	switch {
	case errors.Is(err, playlists.ErrExists):
		m.report(LevelWarn, existsMessage(name))
		return
	case errors.Is(err, playlists.ErrEmptyName):
		m.report(LevelWarn, "The playlist name is empty.")
		return
	case err != nil:
		m.report(LevelError, errmsg.FormatWith(errmsg.OpPlaylistCreate, name, err))
		return
	}

	m.Input.Reset()
	if _, ok := m.ManagerPlaylists.Selected(); !ok {
		m.ManagerPlaylists.Select(i)
		m.rebuildManagerSongs()
	}
	m.report(LevelInfo, createdMessage(m.Store.Names()[i]))
	m.savePlaylists()
	m.refreshPlayer(prev)
}

// deletePlaylist removes the playlist under the manager cursor. The cursor
// stays on the same row, or moves to the new last row.
func (m *Model) deletePlaylist() {
	i, ok := m.ManagerPlaylists.Selected()
	if !ok || m.Store == nil {
		return
	}
	prev := m.playerPlaylistName()
	p, err := m.Store.Delete(i)
	if err != nil {
		m.report(LevelError, errmsg.Format(errmsg.OpPlaylistDelete, err))
		return
	}

	n := m.Store.Len()
	switch {
	case n == 0:
		m.ManagerPlaylists.Select(-1)
	case i >= n:
		m.ManagerPlaylists.Select(n - 1)
	}
	m.rebuildManagerSongs()
	m.report(LevelWarn, removedMessage(p.Name, len(p.Songs)))
	m.savePlaylists()
	m.refreshPlayer(prev)
}

// savePlaylists writes the store to disk, reporting failures.
func (m *Model) savePlaylists() {
	if m.Store == nil {
		return
	}
	if err := m.Store.Save(); err != nil {
		m.report(LevelError, errmsg.Format(errmsg.OpPlaylistSave, err))
	}
}
