package models

import (
	"fmt"
	"time"
)

// MigrationRecord is a persisted [MigrationResult], one row per migrated
// playlist, used by the migration history feature.
type MigrationRecord struct {
	id               string
	sourcePlaylistID string
	destPlaylistID   string
	playlistName     string
	tracksTotal      int
	matched          int
	unmatched        int
	unmatchedTracks  []Track
	startedAt        time.Time
	completedAt      time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewMigrationRecord creates a record from a completed playlist migration.
func NewMigrationRecord(result *MigrationResult, startedAt, completedAt time.Time) *MigrationRecord {
	now := time.Now()
	return &MigrationRecord{
		sourcePlaylistID: result.SourcePlaylistID,
		destPlaylistID:   result.DestPlaylistID,
		playlistName:     result.PlaylistName,
		tracksTotal:      result.TracksTotal,
		matched:          result.Matched,
		unmatched:        result.Unmatched,
		unmatchedTracks:  result.UnmatchedTracks,
		startedAt:        startedAt,
		completedAt:      completedAt,
		createdAt:        now,
		updatedAt:        now,
	}
}

func (r *MigrationRecord) ID() string           { return r.id }
func (r *MigrationRecord) CreatedAt() time.Time { return r.createdAt }
func (r *MigrationRecord) UpdatedAt() time.Time { return r.updatedAt }

func (r *MigrationRecord) SourcePlaylistID() string { return r.sourcePlaylistID }
func (r *MigrationRecord) DestPlaylistID() string   { return r.destPlaylistID }
func (r *MigrationRecord) PlaylistName() string     { return r.playlistName }
func (r *MigrationRecord) TracksTotal() int         { return r.tracksTotal }
func (r *MigrationRecord) Matched() int             { return r.matched }
func (r *MigrationRecord) Unmatched() int           { return r.unmatched }
func (r *MigrationRecord) UnmatchedTracks() []Track { return r.unmatchedTracks }
func (r *MigrationRecord) StartedAt() time.Time     { return r.startedAt }
func (r *MigrationRecord) CompletedAt() time.Time   { return r.completedAt }

func (r *MigrationRecord) SetID(id string)          { r.id = id }
func (r *MigrationRecord) SetCreatedAt(t time.Time) { r.createdAt = t }
func (r *MigrationRecord) SetUpdatedAt(t time.Time) { r.updatedAt = t }

func (r *MigrationRecord) SetUnmatchedTracks(tracks []Track) { r.unmatchedTracks = tracks }

// Validate checks required fields and counter consistency.
func (r *MigrationRecord) Validate() error {
	if r.sourcePlaylistID == "" {
		return fmt.Errorf("source playlist ID is required")
	}
	if r.playlistName == "" {
		return fmt.Errorf("playlist name is required")
	}
	if r.matched < 0 || r.unmatched < 0 {
		return fmt.Errorf("track counters must be non-negative")
	}
	if r.matched+r.unmatched != r.tracksTotal {
		return fmt.Errorf("matched (%d) + unmatched (%d) must equal total (%d)", r.matched, r.unmatched, r.tracksTotal)
	}
	return nil
}
