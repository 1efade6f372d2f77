package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/plsync/plsync/internal/models"
	"github.com/plsync/plsync/internal/shared"
)

// MigrationRepository persists [models.MigrationRecord] rows.
type MigrationRepository struct {
	db *sql.DB
}

// NewMigrationRepository creates a new [MigrationRepository] with the given database connection
func NewMigrationRepository(db *sql.DB) *MigrationRepository {
	return &MigrationRepository{db: db}
}

// Create inserts a new migration record with a generated ID.
func (r *MigrationRepository) Create(record *models.MigrationRecord) error {
	id := shared.GenerateID()
	record.SetID(id)

	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	unmatched, err := json.Marshal(record.UnmatchedTracks())
	if err != nil {
		return fmt.Errorf("failed to marshal unmatched tracks: %w", err)
	}

	query := `
		INSERT INTO migration_results (
			id, source_playlist_id, dest_playlist_id, playlist_name,
			tracks_total, matched, unmatched, unmatched_tracks,
			started_at, completed_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id, record.SourcePlaylistID(), record.DestPlaylistID(), record.PlaylistName(),
		record.TracksTotal(), record.Matched(), record.Unmatched(), string(unmatched),
		record.StartedAt(), record.CompletedAt(), record.CreatedAt(), record.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert migration record: %w", err)
	}

	return nil
}

// Get retrieves a migration record by ID.
func (r *MigrationRepository) Get(id string) (*models.MigrationRecord, error) {
	query := `
		SELECT id, source_playlist_id, dest_playlist_id, playlist_name,
			tracks_total, matched, unmatched, unmatched_tracks,
			started_at, completed_at, created_at, updated_at
		FROM migration_results
		WHERE id = ?
	`

	record, err := scanRecord(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("migration record not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query migration record: %w", err)
	}

	return record, nil
}

// List retrieves all migration records, most recent first.
func (r *MigrationRepository) List() ([]*models.MigrationRecord, error) {
	query := `
		SELECT id, source_playlist_id, dest_playlist_id, playlist_name,
			tracks_total, matched, unmatched, unmatched_tracks,
			started_at, completed_at, created_at, updated_at
		FROM migration_results
		ORDER BY created_at DESC, id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query migration records: %w", err)
	}
	defer rows.Close()

	var records []*models.MigrationRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan migration record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate migration records: %w", err)
	}

	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*models.MigrationRecord, error) {
	var (
		id               string
		sourcePlaylistID string
		destPlaylistID   string
		playlistName     string
		tracksTotal      int
		matched          int
		unmatchedCount   int
		unmatchedJSON    string
		startedAt        time.Time
		completedAt      time.Time
		createdAt        time.Time
		updatedAt        time.Time
	)

	err := row.Scan(
		&id, &sourcePlaylistID, &destPlaylistID, &playlistName,
		&tracksTotal, &matched, &unmatchedCount, &unmatchedJSON,
		&startedAt, &completedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	var unmatchedTracks []models.Track
	if unmatchedJSON != "" {
		if err := json.Unmarshal([]byte(unmatchedJSON), &unmatchedTracks); err != nil {
			return nil, fmt.Errorf("failed to unmarshal unmatched tracks: %w", err)
		}
	}

	result := &models.MigrationResult{
		SourcePlaylistID: sourcePlaylistID,
		DestPlaylistID:   destPlaylistID,
		PlaylistName:     playlistName,
		TracksTotal:      tracksTotal,
		Matched:          matched,
		Unmatched:        unmatchedCount,
	}

	record := models.NewMigrationRecord(result, startedAt, completedAt)
	record.SetID(id)
	record.SetCreatedAt(createdAt)
	record.SetUpdatedAt(updatedAt)
	record.SetUnmatchedTracks(unmatchedTracks)

	return record, nil
}
