// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"

	// Tab switching
	ActionViewPlayer  Action = "view_player"
	ActionViewManager Action = "view_manager"
	ActionViewLog     Action = "view_log"

	// Navigation actions
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"

	// Generic contextual actions
	ActionSelect       Action = "select"        // enter - pick playlist/song, toggle in song picker
	ActionToggleSelect Action = "toggle_select" // space - toggle song membership
	ActionDelete       Action = "delete"        // d - delete playlist
	ActionNewPlaylist  Action = "new_playlist"  // n - focus the name input
	ActionCancel       Action = "cancel"        // esc - leave the name input
)
