// internal/app/player.go
package app

import (
	"slices"

	"github.com/llehouerou/tunedeck/internal/cond"
	"github.com/llehouerou/tunedeck/internal/library"
)

// playerPlaylistSongs returns the songs of the playlist under the player cursor.
func (m *Model) playerPlaylistSongs() []library.Song {
	i, ok := m.PlayerPlaylists.Selected()
	if !ok || m.Store == nil {
		return nil
	}
	paths, err := m.Store.Songs(i)
	if err != nil {
		return nil
	}
	songs := make([]library.Song, len(paths))
	for j, p := range paths {
		songs[j], _ = m.song(p)
	}
	return songs
}

// resetPlayerSongs puts the song cursor on the first song of the current
// playlist, or clears it when the playlist is empty.
func (m *Model) resetPlayerSongs() {
	n := len(m.playerPlaylistSongs())
	m.PlayerSongs.Select(cond.If(n > 0, 0, -1))
}

func (m *Model) playerNext() {
	switch m.PlayerFocus {
	case FocusSongs:
		m.PlayerSongs.Next(len(m.playerPlaylistSongs()))
	default:
		m.PlayerPlaylists.Next(m.playlistCount())
		m.resetPlayerSongs()
	}
}

func (m *Model) playerPrevious() {
	switch m.PlayerFocus {
	case FocusSongs:
		m.PlayerSongs.Previous(len(m.playerPlaylistSongs()))
	default:
		m.PlayerPlaylists.Previous(m.playlistCount())
		m.resetPlayerSongs()
	}
}

// playerSelect moves from the playlists pane to its songs, or picks the song
// under the cursor.
func (m *Model) playerSelect() {
	if m.PlayerFocus == FocusPlaylists {
		if _, ok := m.PlayerPlaylists.Selected(); ok {
			m.PlayerFocus = FocusSongs
		}
		return
	}

	songs := m.playerPlaylistSongs()
	i, ok := m.PlayerSongs.Selected()
	if !ok || i >= len(songs) {
		return
	}
	m.Picked = songs[i].Path
	m.report(LevelInfo, pickedMessage(songs[i].Title))
}

// playerPlaylistName returns the name of the playlist under the player cursor.
func (m *Model) playerPlaylistName() string {
	i, ok := m.PlayerPlaylists.Selected()
	if !ok || i >= m.playlistCount() {
		return ""
	}
	return m.Store.Names()[i]
}

// refreshPlayer repairs the player cursors after playlists changed elsewhere.
// The player stays on prev when it still exists; when it ends up on another
// playlist, the song cursor starts over.
func (m *Model) refreshPlayer(prev string) {
	var names []string
	if m.Store != nil {
		names = m.Store.Names()
	}
	if i := slices.Index(names, prev); prev != "" && i >= 0 {
		m.PlayerPlaylists.Select(i)
	} else {
		m.PlayerPlaylists.Clamp(len(names))
		if _, ok := m.PlayerPlaylists.Selected(); !ok && len(names) > 0 {
			m.PlayerPlaylists.Select(0)
		}
	}
	if m.playerPlaylistName() != prev {
		m.resetPlayerSongs()
		return
	}

	n := len(m.playerPlaylistSongs())
	m.PlayerSongs.Clamp(n)
	if _, ok := m.PlayerSongs.Selected(); !ok && n > 0 {
		m.PlayerSongs.Select(0)
	}
}

func (m *Model) playlistCount() int {
	if m.Store == nil {
		return 0
	}
	return m.Store.Len()
}
