// internal/app/app.go
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/tunedeck/internal/config"
	"github.com/llehouerou/tunedeck/internal/errmsg"
	"github.com/llehouerou/tunedeck/internal/keymap"
	"github.com/llehouerou/tunedeck/internal/library"
	"github.com/llehouerou/tunedeck/internal/playlists"
	"github.com/llehouerou/tunedeck/internal/state"
	"github.com/llehouerou/tunedeck/internal/ui/controller"
	"github.com/llehouerou/tunedeck/internal/ui/selection"
)

// Model is the root application model containing all state.
type Model struct {
	Tab          Tab
	PlayerFocus  Focus
	ManagerFocus Focus

	Store      *playlists.Store
	Songs      []library.Song
	songByPath map[string]int // path -> index in Songs
	MusicDir   string
	Loading    bool

	// Player tab: pick a playlist, then a song.
	PlayerPlaylists controller.List
	PlayerSongs     controller.Table
	Picked          string // path of the picked song

	// Manager tab: edit which library songs belong to a playlist.
	ManagerPlaylists controller.List
	ManagerSongs     selection.State
	Input            textinput.Model

	// Log tab
	Messages []Message
	LogView  controller.List

	UI       config.UIConfig
	Keys     *keymap.Resolver
	StateMgr state.Interface
	Logger   zerolog.Logger
	Width    int
	Height   int
}

// Options carries the collaborators of a Model.
type Options struct {
	Config   *config.Config
	Store    *playlists.Store
	StateMgr state.Interface
	Logger   zerolog.Logger
}

// New creates the application model and restores the saved navigation.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	input := textinput.New()
	input.Placeholder = "new playlist name"
	input.Prompt = ""
	input.CharLimit = 64

	m := Model{
		Store:            opts.Store,
		MusicDir:         cfg.Music(),
		Loading:          true,
		PlayerPlaylists:  controller.NewList(),
		PlayerSongs:      controller.NewTable(),
		ManagerPlaylists: controller.NewList(),
		ManagerSongs:     selection.New(0),
		Input:            input,
		LogView:          controller.NewList(),
		UI:               cfg.GetUIConfig(),
		Keys:             keymap.Default(),
		StateMgr:         opts.StateMgr,
		Logger:           opts.Logger,
		songByPath:       map[string]int{},
	}

	m.restoreNavigation()
	return m
}

// Init implements tea.Model. It starts reading the music directory.
func (m Model) Init() tea.Cmd {
	return loadLibraryCmd(m.MusicDir)
}

func loadLibraryCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		songs, err := library.Scan(dir)
		return LibraryLoadedMsg{Dir: dir, Songs: songs, Err: err}
	}
}

func (m *Model) handleLibraryLoaded(msg LibraryLoadedMsg) {
	m.Loading = false
	if msg.Err != nil {
		m.report(LevelError, errmsg.FormatWith(errmsg.OpLibraryScan, msg.Dir, msg.Err))
		return
	}

	m.Songs = msg.Songs
	m.songByPath = make(map[string]int, len(msg.Songs))
	for i, s := range msg.Songs {
		m.songByPath[s.Path] = i
	}
	m.rebuildManagerSongs()
	m.report(LevelInfo, loadedMessage(len(msg.Songs), msg.Dir))
}

// song returns the library entry for path, or a stand-in named after the file.
func (m *Model) song(path string) (library.Song, bool) {
	if i, ok := m.songByPath[path]; ok {
		return m.Songs[i], true
	}
	return library.Song{Path: path, Title: library.Song{Path: path}.FileName(), Size: -1}, false
}
