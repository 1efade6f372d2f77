package ui

import (
	"fmt"

	"github.com/plsync/plsync/internal/models"
)

// playlistItem wraps [models.Playlist] to implement list.Item with a
// selection checkbox.
type playlistItem struct {
	playlist models.Playlist
	checked  bool
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }

func (i playlistItem) Title() string {
	box := "[ ]"
	if i.checked {
		box = "[x]"
	}
	return fmt.Sprintf("%s %s", box, i.playlist.Name)
}

func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d tracks", i.playlist.TrackCount)
	if i.playlist.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Description)
	}
	return desc
}
