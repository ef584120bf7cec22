// internal/app/persistence.go
package app

import (
	"slices"

	"github.com/llehouerou/tunedeck/internal/errmsg"
	"github.com/llehouerou/tunedeck/internal/state"
)

// SaveNavigationState persists the cursors. Writes are debounced by the manager.
func (m *Model) SaveNavigationState() {
	if m.StateMgr == nil {
		return
	}
	nav := state.NavigationState{Tab: m.Tab.String(), PlayerSong: -1}
	if m.Store != nil {
		names := m.Store.Names()
		if i, ok := m.PlayerPlaylists.Selected(); ok && i < len(names) {
			nav.PlayerPlaylist = names[i]
		}
		if i, ok := m.ManagerPlaylists.Selected(); ok && i < len(names) {
			nav.ManagerPlaylist = names[i]
		}
	}
	if i, ok := m.PlayerSongs.Selected(); ok {
		nav.PlayerSong = i
	}
	m.StateMgr.SaveNavigation(nav)
}

// restoreNavigation places the cursors where they were on the last run.
// Without saved state, both playlist cursors start on the first playlist.
func (m *Model) restoreNavigation() {
	var names []string
	if m.Store != nil {
		names = m.Store.Names()
	}
	first := -1
	if len(names) > 0 {
		first = 0
	}
	m.PlayerPlaylists.Select(first)
	m.ManagerPlaylists.Select(first)
	m.resetPlayerSongs()

	if m.StateMgr == nil {
		return
	}
	nav, err := m.StateMgr.GetNavigation()
	if err != nil {
		m.report(LevelWarn, errmsg.Format(errmsg.OpStateLoad, err))
		return
	}
	if nav == nil {
		return
	}

	m.Tab = parseTab(nav.Tab)
	if i := slices.Index(names, nav.PlayerPlaylist); i >= 0 {
		m.PlayerPlaylists.Select(i)
		m.resetPlayerSongs()
	}
	if nav.PlayerSong >= 0 {
		m.PlayerSongs.Select(nav.PlayerSong)
		m.PlayerSongs.Clamp(len(m.playerPlaylistSongs()))
	}
	if i := slices.Index(names, nav.ManagerPlaylist); i >= 0 {
		m.ManagerPlaylists.Select(i)
	}
}

// reportStateError surfaces the last failed background navigation save.
func (m *Model) reportStateError() {
	if m.StateMgr == nil {
		return
	}
	if err := m.StateMgr.LastError(); err != nil {
		m.report(LevelError, errmsg.Format(errmsg.OpStateSave, err))
	}
}
