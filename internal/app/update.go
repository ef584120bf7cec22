// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tunedeck/internal/app/handler"
	"github.com/llehouerou/tunedeck/internal/keymap"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case LibraryLoadedMsg:
		m.handleLibraryLoaded(msg)
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.SaveNavigationState()
		return m, cmd
	}

	if m.inputFocused() {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) inputFocused() bool {
	return m.Tab == TabManager && m.ManagerFocus == FocusInput
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.inputFocused() {
		return m.handleInputKey(msg)
	}

	action := m.Keys.Resolve(msg.String())
	_, cmd := handler.Chain(action,
		m.handleGlobalAction,
		m.handleTabAction,
	)
	return cmd
}

// handleInputKey routes keys while the playlist name input has focus. Only
// enter, esc, tab and ctrl+c escape the input; everything else is typed.
func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyEnter:
		m.createPlaylist()
		return nil
	case tea.KeyEsc, tea.KeyTab:
		m.ManagerFocus = FocusPlaylists
		m.Input.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return cmd
}

func (m *Model) handleGlobalAction(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionQuit:
		return handler.Handled(m.quit())
	case keymap.ActionViewPlayer:
		m.switchTab(TabPlayer)
	case keymap.ActionViewManager:
		m.switchTab(TabManager)
	case keymap.ActionViewLog:
		m.switchTab(TabLog)
	case keymap.ActionSwitchFocus:
		m.switchFocus()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handleTabAction(action keymap.Action) handler.Result {
	switch m.Tab {
	case TabPlayer:
		return m.handlePlayerAction(action)
	case TabManager:
		return m.handleManagerAction(action)
	case TabLog:
		return m.handleLogAction(action)
	}
	return handler.NotHandled
}

func (m *Model) handlePlayerAction(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionMoveDown:
		m.playerNext()
	case keymap.ActionMoveUp:
		m.playerPrevious()
	case keymap.ActionSelect:
		m.playerSelect()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handleManagerAction(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionMoveDown:
		m.managerNext()
	case keymap.ActionMoveUp:
		m.managerPrevious()
	case keymap.ActionNewPlaylist:
		m.ManagerFocus = FocusInput
		return handler.Handled(m.Input.Focus())
	case keymap.ActionSelect, keymap.ActionToggleSelect:
		if m.ManagerFocus != FocusSongs {
			if action == keymap.ActionToggleSelect {
				return handler.NotHandled
			}
			m.ManagerFocus = FocusSongs
			return handler.HandledNoCmd
		}
		m.toggleSong()
	case keymap.ActionDelete:
		if m.ManagerFocus != FocusPlaylists {
			return handler.NotHandled
		}
		m.deletePlaylist()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handleLogAction(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionMoveDown:
		m.LogView.Next(len(m.Messages))
	case keymap.ActionMoveUp:
		m.LogView.Previous(len(m.Messages))
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// switchTab leaves the current tab. Leaving the manager commits its edits
// so the player shows them.
func (m *Model) switchTab(tab Tab) {
	if m.Tab == tab {
		return
	}
	if m.Tab == TabManager {
		m.syncManagerPlaylist()
		m.savePlaylists()
		m.refreshPlayer(m.playerPlaylistName())
	}
	m.Tab = tab
}

func (m *Model) switchFocus() {
	switch m.Tab {
	case TabPlayer:
		m.PlayerFocus = cycleFocus(m.PlayerFocus)
	case TabManager:
		m.ManagerFocus = cycleFocus(m.ManagerFocus)
	case TabLog:
	}
}

func cycleFocus(f Focus) Focus {
	if f == FocusPlaylists {
		return FocusSongs
	}
	return FocusPlaylists
}

func (m *Model) quit() tea.Cmd {
	m.syncManagerPlaylist()
	m.savePlaylists()
	m.reportStateError()
	return tea.Quit
}
