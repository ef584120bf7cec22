package state

import (
	"database/sql"
	"errors"
)

// NavigationState is where the cursors were when the app last ran.
// Playlists are remembered by name so reordering the store does not
// move the cursor to another playlist. PlayerSong is -1 when unset.
type NavigationState struct {
	Tab             string // "player" or "manager"
	PlayerPlaylist  string
	PlayerSong      int
	ManagerPlaylist string
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT tab, player_playlist, player_song, manager_playlist
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var playerPlaylist, managerPlaylist sql.NullString
	var playerSong sql.NullInt64

	err := row.Scan(&state.Tab, &playerPlaylist, &playerSong, &managerPlaylist)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.PlayerPlaylist = playerPlaylist.String
	state.ManagerPlaylist = managerPlaylist.String
	state.PlayerSong = -1
	if playerSong.Valid {
		state.PlayerSong = int(playerSong.Int64)
	}

	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, tab, player_playlist, player_song, manager_playlist)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tab = excluded.tab,
			player_playlist = excluded.player_playlist,
			player_song = excluded.player_song,
			manager_playlist = excluded.manager_playlist
	`, state.Tab, nullString(state.PlayerPlaylist), nullIndex(state.PlayerSong), nullString(state.ManagerPlaylist))

	return err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullIndex(i int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(i), Valid: i >= 0}
}
