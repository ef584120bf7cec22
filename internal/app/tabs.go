// internal/app/tabs.go
package app

// Tab identifies the screen shown below the header.
type Tab int

const (
	TabPlayer Tab = iota
	TabManager
	TabLog
)

func (t Tab) String() string {
	switch t {
	case TabManager:
		return "manager"
	case TabLog:
		return "log"
	default:
		return "player"
	}
}

// Title is the label shown in the header bar.
func (t Tab) Title() string {
	switch t {
	case TabManager:
		return "Manager"
	case TabLog:
		return "Log"
	default:
		return "Player"
	}
}

func parseTab(s string) Tab {
	switch s {
	case "manager":
		return TabManager
	case "log":
		return TabLog
	default:
		return TabPlayer
	}
}

var allTabs = []Tab{TabPlayer, TabManager, TabLog}

// Focus identifies the pane receiving keys within a tab.
type Focus int

const (
	FocusPlaylists Focus = iota
	FocusSongs
	FocusInput
)
