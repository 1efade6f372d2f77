package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plsync/plsync/internal/models"
)

func testPlaylists() []models.Playlist {
	return []models.Playlist{
		{ID: "p1", Name: "First", TrackCount: 3},
		{ID: "p2", Name: "Second", TrackCount: 5, Description: "road trip"},
		{ID: "p3", Name: "Third", TrackCount: 1},
	}
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	if s == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelToggleAndConfirm(t *testing.T) {
	m := NewModel(testPlaylists())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	// Select the first and third playlists.
	m.Update(keyMsg(" "))
	m.Update(keyMsg("down"))
	m.Update(keyMsg("down"))
	m.Update(keyMsg(" "))
	_, cmd := m.Update(keyMsg("enter"))

	if !m.Confirmed() {
		t.Error("expected confirmed state")
	}
	if cmd == nil {
		t.Error("expected quit command on confirm")
	}

	ids := m.SelectedIDs()
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p3" {
		t.Errorf("expected [p1 p3] in playlist order, got %v", ids)
	}
}

func TestModelToggleTwiceDeselects(t *testing.T) {
	m := NewModel(testPlaylists())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(keyMsg(" "))
	m.Update(keyMsg(" "))

	if ids := m.SelectedIDs(); len(ids) != 0 {
		t.Errorf("expected no selection after double toggle, got %v", ids)
	}
}

func TestModelAbort(t *testing.T) {
	m := NewModel(testPlaylists())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(keyMsg(" "))
	_, cmd := m.Update(keyMsg("q"))

	if !m.Aborted() {
		t.Error("expected aborted state")
	}
	if cmd == nil {
		t.Error("expected quit command on abort")
	}
}

func TestPlaylistItemRendering(t *testing.T) {
	item := playlistItem{playlist: models.Playlist{Name: "Mix", TrackCount: 4, Description: "desc"}}

	if !strings.HasPrefix(item.Title(), "[ ]") {
		t.Errorf("expected unchecked box, got %q", item.Title())
	}

	item.checked = true
	if !strings.HasPrefix(item.Title(), "[x]") {
		t.Errorf("expected checked box, got %q", item.Title())
	}

	if !strings.Contains(item.Description(), "4 tracks") || !strings.Contains(item.Description(), "desc") {
		t.Errorf("unexpected description %q", item.Description())
	}
}
