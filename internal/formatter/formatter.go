// package formatter renders migration results as summaries and report
// files (JSON, CSV).
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/plsync/plsync/internal/models"
	"github.com/plsync/plsync/internal/shared"
)

// MatchPercentage returns the share of matched tracks as a percentage.
// An empty playlist counts as fully matched.
func MatchPercentage(result *models.MigrationResult) float64 {
	if result.TracksTotal == 0 {
		return 100.0
	}
	return float64(result.Matched) / float64(result.TracksTotal) * 100.0
}

// maxUnmatchedListed caps how many unmatched tracks the summary lists
// per playlist; the full list always lands in the CSV report.
const maxUnmatchedListed = 10

// Summarize renders a human-readable summary block for a migration run.
func Summarize(results []*models.MigrationResult) string {
	var buf bytes.Buffer

	buf.WriteString("Migration Summary\n")
	buf.WriteString("=================\n")

	totalTracks := 0
	totalMatched := 0
	for _, result := range results {
		totalTracks += result.TracksTotal
		totalMatched += result.Matched

		buf.WriteString(fmt.Sprintf("%s: %d/%d tracks matched (%.1f%%)\n",
			result.PlaylistName, result.Matched, result.TracksTotal, MatchPercentage(result)))

		for i, track := range result.UnmatchedTracks {
			if i == maxUnmatchedListed {
				buf.WriteString(fmt.Sprintf("  … and %d more\n", len(result.UnmatchedTracks)-i))
				break
			}
			if track.Duration > 0 {
				buf.WriteString(fmt.Sprintf("  ✗ %s - %s (%s)\n",
					track.Artist, track.Title, shared.FormatDuration(track.Duration)))
			} else {
				buf.WriteString(fmt.Sprintf("  ✗ %s - %s\n", track.Artist, track.Title))
			}
		}
	}

	pct := 100.0
	if totalTracks > 0 {
		pct = float64(totalMatched) / float64(totalTracks) * 100.0
	}
	buf.WriteString(fmt.Sprintf("\n%d playlists, %d/%d tracks matched (%.1f%%)\n",
		len(results), totalMatched, totalTracks, pct))

	return buf.String()
}

// ReportToJSON renders a migration report as indented JSON.
func ReportToJSON(results []*models.MigrationResult) ([]byte, error) {
	type playlistReport struct {
		SourcePlaylistID string         `json:"source_playlist_id"`
		DestPlaylistID   string         `json:"dest_playlist_id"`
		PlaylistName     string         `json:"playlist_name"`
		TracksTotal      int            `json:"tracks_total"`
		Matched          int            `json:"matched"`
		Unmatched        int            `json:"unmatched"`
		MatchPercentage  float64        `json:"match_percentage"`
		UnmatchedTracks  []models.Track `json:"unmatched_tracks,omitempty"`
	}

	report := struct {
		GeneratedAt time.Time        `json:"generated_at"`
		Playlists   []playlistReport `json:"playlists"`
	}{
		GeneratedAt: time.Now(),
		Playlists:   make([]playlistReport, len(results)),
	}

	for i, result := range results {
		report.Playlists[i] = playlistReport{
			SourcePlaylistID: result.SourcePlaylistID,
			DestPlaylistID:   result.DestPlaylistID,
			PlaylistName:     result.PlaylistName,
			TracksTotal:      result.TracksTotal,
			Matched:          result.Matched,
			Unmatched:        result.Unmatched,
			MatchPercentage:  MatchPercentage(result),
			UnmatchedTracks:  result.UnmatchedTracks,
		}
	}

	return shared.MarshalJSON(report, true)
}

// UnmatchedToCSV renders the unmatched tracks of a run as CSV with
// columns: Playlist, ID, Title, Artist, Album, Duration.
func UnmatchedToCSV(results []*models.MigrationResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Playlist", "ID", "Title", "Artist", "Album", "Duration"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, result := range results {
		for _, track := range result.UnmatchedTracks {
			record := []string{
				result.PlaylistName,
				track.ID,
				track.Title,
				track.Artist,
				track.Album,
				strconv.Itoa(track.Duration),
			}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteReportFiles writes a JSON report and an unmatched-tracks CSV
// into dir and returns the created file paths.
func WriteReportFiles(dir string, results []*models.MigrationResult) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")

	jsonData, err := ReportToJSON(results)
	if err != nil {
		return nil, err
	}
	jsonPath := filepath.Join(dir, fmt.Sprintf("migration_%s.json", stamp))
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write JSON report: %w", err)
	}
	paths := []string{jsonPath}

	csvData, err := UnmatchedToCSV(results)
	if err != nil {
		return nil, err
	}
	csvPath := filepath.Join(dir, fmt.Sprintf("unmatched_%s.csv", stamp))
	if err := os.WriteFile(csvPath, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV report: %w", err)
	}
	paths = append(paths, csvPath)

	return paths, nil
}
