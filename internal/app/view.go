// internal/app/view.go
package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/tunedeck/internal/keymap"
	"github.com/llehouerou/tunedeck/internal/library"
	"github.com/llehouerou/tunedeck/internal/ui/buffer"
	"github.com/llehouerou/tunedeck/internal/ui/layout"
	"github.com/llehouerou/tunedeck/internal/ui/render"
	"github.com/llehouerou/tunedeck/internal/ui/selectlist"
	"github.com/llehouerou/tunedeck/internal/ui/styles"
)

const appTitle = "tunedeck"

// View renders the application UI. Every frame is drawn from scratch.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	buf := buffer.New(m.Width, m.Height)
	m.renderHeader(buf)

	content := layout.ContentArea(m.Width, m.Height)
	switch m.Tab {
	case TabPlayer:
		m.renderPlayer(buf, content)
	case TabManager:
		m.renderManager(buf, content)
	case TabLog:
		m.renderLog(buf, content)
	}

	m.renderStatus(buf)
	return buf.String()
}

func (m Model) renderHeader(buf *buffer.Buffer) {
	t := styles.T()
	x := buf.SetLine(0, 0, styles.Gradient(appTitle, true, t.Primary, t.Secondary), m.Width)

	var tabs buffer.Line
	for i, tab := range allTabs {
		if i > 0 {
			tabs = append(tabs, buffer.Span{Content: "  "})
		}
		style := t.S().Tab
		if tab == m.Tab {
			style = t.S().ActiveTab
		}
		tabs = append(tabs, buffer.Span{Content: fmt.Sprintf("F%d %s", i+1, tab.Title()), Style: style})
	}
	start := max(m.Width-tabs.Width(), x+1)
	buf.SetLine(start, 0, tabs, m.Width-start)
}

func (m Model) renderStatus(buf *buffer.Buffer) {
	y := m.Height - 1
	if y < layout.HeaderHeight {
		return
	}
	s := styles.T().S()

	hint := keymap.Hint(keymap.ByContext(m.hintContext()))
	hintWidth := runewidth.StringWidth(hint)
	msgWidth := m.Width
	if hintWidth+2 < m.Width/2 {
		msgWidth = m.Width - hintWidth - 2
		buf.SetString(m.Width-hintWidth, y, hint, s.Muted)
	}

	switch last, ok := m.LastMessage(); {
	case m.Loading:
		buf.SetStringN(0, y, render.Truncate("Scanning "+m.MusicDir+"...", msgWidth), msgWidth, s.Muted)
	case ok:
		buf.SetStringN(0, y, render.Truncate(last.Text, msgWidth), msgWidth, levelStyle(last.Level))
	}
}

func (m Model) hintContext() string {
	switch {
	case m.inputFocused():
		return "input"
	case m.Tab == TabManager:
		return "manager"
	case m.Tab == TabPlayer:
		return "player"
	default:
		return "global"
	}
}

func levelStyle(l Level) lipgloss.Style {
	s := styles.T().S()
	switch l {
	case LevelWarn:
		return s.Warning
	case LevelError:
		return s.Error
	default:
		return s.Success
	}
}

func panel(title string, focused bool) selectlist.Block {
	b := selectlist.NewBlock(title)
	b.BorderStyle = styles.PanelBorder(focused)
	b.TitleStyle = styles.PanelTitle(focused)
	return b
}

func (m Model) baseList(rows []selectlist.Row) selectlist.SelectList {
	s := styles.T().S()
	return selectlist.New(rows).
		Style(s.Base).
		HighlightStyle(s.Highlight).
		HighlightSymbol(m.UI.HighlightSymbol).
		SelectedStyle(s.Selected).
		ColumnSpacing(m.UI.Spacing())
}

func (m Model) playlistRows() []selectlist.Row {
	var names []string
	if m.Store != nil {
		names = m.Store.Names()
	}
	rows := make([]selectlist.Row, len(names))
	for i, name := range names {
		rows[i] = selectlist.RowOf(name)
	}
	return rows
}

func (m Model) songColumns() []layout.Constraint {
	cs := make([]layout.Constraint, len(m.UI.SongColumns))
	for i, p := range m.UI.SongColumns {
		cs[i] = layout.Percentage(p)
	}
	return cs
}

func songRow(song library.Song, known bool, detail string) selectlist.Row {
	row := selectlist.RowOf(song.Title, song.Artist, detail)
	if !known {
		row = row.Style(styles.T().S().Muted)
	}
	return row
}

func (m Model) renderPlayer(buf *buffer.Buffer, area buffer.Rect) {
	side, main := layout.SplitPanes(area, layout.IsNarrowMode(m.Width))

	m.baseList(m.playlistRows()).
		Block(panel("Playlists", m.PlayerFocus == FocusPlaylists)).
		HighlightSymbol(m.UI.PlaylistSymbol).
		Render(buf, side, m.PlayerPlaylists.State())

	title := "Songs"
	if i, ok := m.PlayerPlaylists.Selected(); ok && m.Store != nil {
		title = m.Store.Names()[i]
	}

	songs := m.playerPlaylistSongs()
	rows := make([]selectlist.Row, len(songs))
	for i, song := range songs {
		_, known := m.songByPath[song.Path]
		rows[i] = songRow(song, known, song.SizeLabel())
		if song.Path == m.Picked {
			rows[i] = rows[i].Style(styles.T().S().Selected)
		}
	}

	m.baseList(rows).
		Block(panel(title, m.PlayerFocus == FocusSongs)).
		Header(selectlist.RowOf("Title", "Artist", "Size").Style(styles.T().S().Header)).
		Widths(m.songColumns()...).
		Render(buf, main, m.PlayerSongs.State())
}

func (m Model) renderManager(buf *buffer.Buffer, area buffer.Rect) {
	side, main := layout.SplitPanes(area, layout.IsNarrowMode(m.Width))
	input, rest := layout.SplitInput(side)

	m.renderInput(buf, input)

	m.baseList(m.playlistRows()).
		Block(panel("Playlists", m.ManagerFocus == FocusPlaylists)).
		HighlightSymbol(m.UI.PlaylistSymbol).
		Render(buf, rest, m.ManagerPlaylists.State())

	title := "Songs"
	if i, ok := m.ManagerPlaylists.Selected(); ok && m.Store != nil {
		title = fmt.Sprintf("Songs (%d in %s)", m.ManagerSongs.Count(), m.Store.Names()[i])
	}

	rows := make([]selectlist.Row, len(m.Songs))
	for i, song := range m.Songs {
		rows[i] = songRow(song, true, song.ModifiedLabel())
	}

	m.baseList(rows).
		Block(panel(title, m.ManagerFocus == FocusSongs)).
		Header(selectlist.RowOf("Title", "Artist", "Modified").Style(styles.T().S().Header)).
		Widths(m.songColumns()...).
		Render(buf, main, m.ManagerSongs)
}

// renderInput draws the playlist name field. The bubbles model owns the
// editing; only its value and cursor position are drawn here.
func (m Model) renderInput(buf *buffer.Buffer, area buffer.Rect) {
	focused := m.inputFocused()
	b := panel("New playlist", focused)
	b.Render(buf, area)
	inner := b.Inner(area).Intersect(buf.Area())
	if inner.Empty() {
		return
	}

	s := styles.T().S()
	value := m.Input.Value()
	if value == "" && !focused {
		buf.SetStringN(inner.X, inner.Y, m.Input.Placeholder, inner.Width, s.Muted)
		return
	}
	buf.SetStringN(inner.X, inner.Y, value, inner.Width, s.Base)

	if focused {
		runes := []rune(value)
		pos := min(m.Input.Position(), len(runes))
		x := inner.X + runewidth.StringWidth(string(runes[:pos]))
		cursor := buffer.NewRect(x, inner.Y, 1, 1).Intersect(inner)
		buf.SetStyle(cursor, lipgloss.NewStyle().Reverse(true))
	}
}

func (m Model) renderLog(buf *buffer.Buffer, area buffer.Rect) {
	rows := make([]selectlist.Row, len(m.Messages))
	for i, msg := range m.Messages {
		rows[i] = selectlist.RowOf(msg.Time.Format("15:04:05"), msg.Level.String(), msg.Text).
			Style(levelStyle(msg.Level))
	}

	m.baseList(rows).
		Block(panel("Log", true)).
		Widths(layout.Length(8), layout.Length(5), layout.Percentage(100)).
		Render(buf, area, m.LogView.State())
}
