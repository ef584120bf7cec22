// Package errmsg provides consistent error formatting for status-line messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Library
	OpLibraryScan Op = "scan music directory"

	// Playlists
	OpPlaylistLoad   Op = "load playlists"
	OpPlaylistSave   Op = "save playlists"
	OpPlaylistCreate Op = "create playlist"
	OpPlaylistDelete Op = "delete playlist"
	OpPlaylistUpdate Op = "update playlist songs"

	// Navigation state
	OpStateLoad Op = "restore navigation"
	OpStateSave Op = "save navigation"

	// Startup
	OpConfigLoad Op = "load config"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the subject of the operation.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
