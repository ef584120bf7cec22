// internal/app/messages.go
package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/tunedeck/internal/library"
)

// LibraryLoadedMsg carries the result of scanning the music directory.
type LibraryLoadedMsg struct {
	Dir   string
	Songs []library.Song
	Err   error
}

// Level is the severity of a status message.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Message is an entry of the status line and the log tab.
type Message struct {
	Level Level
	Text  string
	Time  time.Time
}

const maxMessages = 500

// report records a message produced by an operation and writes it to the log.
func (m *Model) report(level Level, text string) {
	if text == "" {
		return
	}

	following := m.followingLog()

	m.Messages = append(m.Messages, Message{Level: level, Text: text, Time: time.Now()})
	if over := len(m.Messages) - maxMessages; over > 0 {
		m.Messages = m.Messages[over:]
	}

	if following {
		m.LogView.Select(len(m.Messages) - 1)
	} else {
		m.LogView.Clamp(len(m.Messages))
	}

	m.Logger.WithLevel(level.zerolog()).Str("tab", m.Tab.String()).Msg(text)
}

// followingLog reports whether the log cursor is on the newest entry (or absent).
func (m *Model) followingLog() bool {
	i, ok := m.LogView.Selected()
	return !ok || i == len(m.Messages)-1
}

// LastMessage returns the most recent message.
func (m Model) LastMessage() (Message, bool) {
	if len(m.Messages) == 0 {
		return Message{}, false
	}
	return m.Messages[len(m.Messages)-1], true
}

func loadedMessage(n int, dir string) string {
	if n == 1 {
		return fmt.Sprintf("Loaded 1 song from %s.", dir)
	}
	return fmt.Sprintf("Loaded %d songs from %s.", n, dir)
}

func createdMessage(name string) string {
	return fmt.Sprintf("The playlist '%s' was created.", name)
}

func existsMessage(name string) string {
	return fmt.Sprintf("The playlist '%s' already exists!", name)
}

func removedMessage(name string, songs int) string {
	return fmt.Sprintf("The playlist '%s', with %d songs, was removed.", name, songs)
}

func pickedMessage(title string) string {
	return fmt.Sprintf("Picked '%s'.", title)
}
