package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plsync/plsync/internal/models"
	"github.com/plsync/plsync/internal/shared"
)

// Model is the playlist picker state.
type Model struct {
	list      list.Model
	playlists []models.Playlist
	selected  map[string]bool
	confirmed bool
	aborted   bool
	width     int
	height    int
	help      help.Model
	keys      keyMap
}

// NewModel creates a playlist picker over the given playlists.
func NewModel(playlists []models.Playlist) *Model {
	items := make([]list.Item, len(playlists))
	for i, pl := range playlists {
		items[i] = playlistItem{playlist: pl}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select playlists to migrate"
	l.SetShowHelp(false)

	return &Model{
		list:      l,
		playlists: playlists,
		selected:  make(map[string]bool),
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the picker state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case " ":
			m.toggleCurrent()
			return m, nil
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the picker with a selection count and help line.
func (m *Model) View() string {
	count := styles.help.Render(fmt.Sprintf("%d selected", len(m.SelectedIDs())))
	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return fmt.Sprintf("%s\n%s\n%s", m.list.View(), count, helpView)
}

// toggleCurrent flips the checkbox on the highlighted playlist.
func (m *Model) toggleCurrent() {
	index := m.list.Index()
	item, ok := m.list.SelectedItem().(playlistItem)
	if !ok {
		return
	}

	item.checked = !item.checked
	m.selected[item.playlist.ID] = item.checked
	m.list.SetItem(index, item)
}

// Aborted reports whether the user quit without confirming.
func (m *Model) Aborted() bool { return m.aborted }

// Confirmed reports whether the user confirmed the selection.
func (m *Model) Confirmed() bool { return m.confirmed }

// SelectedIDs returns the chosen playlist IDs in their original order.
func (m *Model) SelectedIDs() []string {
	var ids []string
	for _, pl := range m.playlists {
		if m.selected[pl.ID] {
			ids = append(ids, pl.ID)
		}
	}
	return ids
}

// SelectPlaylists runs the picker and returns the chosen playlist IDs.
func SelectPlaylists(playlists []models.Playlist) ([]string, error) {
	model := NewModel(playlists)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run playlist picker: %w", err)
	}

	picker, ok := final.(*Model)
	if !ok || picker.Aborted() || !picker.Confirmed() {
		return nil, fmt.Errorf("%w: selection aborted", shared.ErrMissingArgument)
	}

	return picker.SelectedIDs(), nil
}
