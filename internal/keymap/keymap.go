package keymap

// Binding ties keys to an action, with help text.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "player", "manager", "input"
}

// All contains every key binding of the application.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchFocus, []string{"tab", "shift+tab"}, "Switch pane", "global"},
	{ActionViewPlayer, []string{"f1"}, "Player", "global"},
	{ActionViewManager, []string{"f2"}, "Manager", "global"},
	{ActionViewLog, []string{"f3"}, "Log", "global"},
	{ActionMoveUp, []string{"k", "up"}, "Up", "global"},
	{ActionMoveDown, []string{"j", "down"}, "Down", "global"},

	// Player tab
	{ActionSelect, []string{"enter"}, "Pick", "player"},

	// Manager tab
	{ActionNewPlaylist, []string{"n"}, "New playlist", "manager"},
	{ActionDelete, []string{"d", "delete"}, "Delete playlist", "manager"},
	{ActionToggleSelect, []string{" "}, "Toggle song", "manager"},

	// Name input
	{ActionCancel, []string{"esc"}, "Cancel", "input"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
