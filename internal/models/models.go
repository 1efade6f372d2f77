package models

import (
	"time"
)

// Model defines the base interface for all persistent models in the migration tool.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Track represents a music track from any catalog.
//
// The ID is provider-scoped and opaque; tracks are immutable once fetched.
type Track struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album,omitempty"`
	Duration int    `json:"duration"` // Duration in seconds
}

// Playlist represents a music playlist from any catalog.
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TrackCount  int    `json:"track_count"`
	Public      bool   `json:"public"`
}

// PlaylistExport represents a playlist with its full track listing.
//
// Track order matters: migration preserves it end to end.
type PlaylistExport struct {
	Playlist Playlist
	Tracks   []Track
}

// MatchCandidate pairs a destination track with its computed similarity
// score against a given source track. Candidates exist only during
// selection and are never persisted.
type MatchCandidate struct {
	Track Track
	Score float64 // Similarity in [0,1]
}

// MigrationResult summarizes the outcome of migrating a single playlist.
//
// UnmatchedTracks keeps source order so users can reconcile manually.
type MigrationResult struct {
	SourcePlaylistID string  `json:"source_playlist_id"`
	DestPlaylistID   string  `json:"dest_playlist_id"`
	PlaylistName     string  `json:"playlist_name"`
	TracksTotal      int     `json:"tracks_total"`
	Matched          int     `json:"matched"`
	Unmatched        int     `json:"unmatched"`
	UnmatchedTracks  []Track `json:"unmatched_tracks,omitempty"`
}
