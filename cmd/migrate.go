package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/plsync/plsync/internal/formatter"
	"github.com/plsync/plsync/internal/models"
	"github.com/plsync/plsync/internal/repositories"
	"github.com/plsync/plsync/internal/shared"
	"github.com/plsync/plsync/internal/tasks"
	"github.com/plsync/plsync/internal/ui"
)

// authenticateServices authenticates both services from configured credentials.
func (r *Runner) authenticateServices(ctx context.Context) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify credentials not configured", shared.ErrServiceUnavailable)
	}

	token := r.config.Credentials.Spotify.AccessToken
	if token == "" {
		return fmt.Errorf("%w: no Spotify access token (run 'plsync auth url')", shared.ErrNotAuthenticated)
	}
	if err := r.spotify.Authenticate(ctx, map[string]string{"access_token": token}); err != nil {
		return err
	}

	if authFile := r.config.Credentials.YouTube.AuthFile; authFile != "" {
		if err := r.youtube.Authenticate(ctx, map[string]string{"auth_file": authFile}); err != nil {
			return err
		}
	}

	return nil
}

// MigrateRun migrates the selected playlists to YouTube Music.
func (r *Runner) MigrateRun(ctx context.Context, cmd *cli.Command) error {
	if err := r.authenticateServices(ctx); err != nil {
		return err
	}

	ids := cmd.StringSlice("playlists")
	if len(ids) == 0 {
		playlists, err := r.spotify.GetPlaylists(ctx)
		if err != nil {
			return fmt.Errorf("failed to list playlists: %w", err)
		}
		if len(playlists) == 0 {
			return fmt.Errorf("%w: the source library has no playlists", shared.ErrMissingArgument)
		}

		if cmd.Bool("all") {
			for _, pl := range playlists {
				ids = append(ids, pl.ID)
			}
		} else {
			if ids, err = ui.SelectPlaylists(playlists); err != nil {
				return err
			}
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: no playlists selected", shared.ErrMissingArgument)
	}

	opts := tasks.MigrateOpts{
		MinScore:     r.config.Matcher.MinScore,
		SearchLimit:  r.config.Matcher.SearchLimit,
		RetryBackoff: time.Duration(r.config.Limits.RetryBackoffMS) * time.Millisecond,
		RateLimit:    rate.Limit(r.config.Limits.RequestsPerSecond),
	}
	if v := cmd.Float("min-score"); v > 0 {
		opts.MinScore = v
	}
	if v := cmd.Int("search-limit"); v > 0 {
		opts.SearchLimit = v
	}

	r.logger.Info("starting migration",
		"playlists", len(ids), "min_score", opts.MinScore, "search_limit", opts.SearchLimit)

	migrator := tasks.NewMigrator(r.spotify, r.youtube, opts)
	startedAt := time.Now()

	var results []*models.MigrationResult
	var globalErr string

	for event := range migrator.Migrate(ctx, ids) {
		r.renderEvent(event)

		switch event.Kind {
		case tasks.PlaylistComplete:
			if result, ok := event.Data.(*models.MigrationResult); ok {
				results = append(results, result)
			}
		case tasks.MigrationError:
			if event.Scope == tasks.ScopeGlobal {
				globalErr = event.Message
			}
		}
	}

	if len(results) > 0 && !cmd.Bool("no-history") {
		if err := r.persistResults(results, startedAt); err != nil {
			r.logger.Warn("failed to persist migration history", "error", err)
		}
	}

	if dir := cmd.String("report-dir"); dir != "" && len(results) > 0 {
		paths, err := formatter.WriteReportFiles(dir, results)
		if err != nil {
			r.logger.Warn("failed to write reports", "error", err)
		} else {
			for _, path := range paths {
				r.writePlain("Report written: %s\n", path)
			}
		}
	}

	r.writePlain("\n%s", formatter.Summarize(results))

	if globalErr != "" {
		return fmt.Errorf("migration aborted: %s", globalErr)
	}
	return nil
}

// renderEvent prints a single migration event.
func (r *Runner) renderEvent(event tasks.Event) {
	switch event.Kind {
	case tasks.MigrationStart:
		r.writePlain("Migrating %d playlist(s)\n", event.Count)
	case tasks.PlaylistStart:
		r.writePlain("\n📥 %s\n", event.PlaylistName)
	case tasks.TracksLoaded:
		r.writePlain("   %d tracks loaded\n", event.Count)
	case tasks.PlaylistCreated:
		r.writePlain("📝 Created destination playlist (ID: %s)\n", event.DestPlaylistID)
	case tasks.TrackProgress:
		switch event.Status {
		case tasks.StatusSearching:
			r.writePlain("🔍 [%d/%d] %s - %s\n", event.TrackIndex+1, event.TrackTotal, event.TrackArtist, event.TrackTitle)
		case tasks.StatusMatched:
			r.writePlain("   ✓ matched (score %.2f)\n", event.Score)
		case tasks.StatusUnmatched:
			r.writePlain("   ✗ no match\n")
		}
	case tasks.PlaylistComplete:
		if result, ok := event.Data.(*models.MigrationResult); ok {
			r.writePlain("✅ %s: %d/%d tracks matched\n", result.PlaylistName, result.Matched, result.TracksTotal)
		}
	case tasks.MigrationComplete:
		r.writePlain("\nMigration complete.\n")
	case tasks.MigrationError:
		if event.Scope == tasks.ScopeGlobal {
			r.writePlain("❌ migration aborted: %s\n", event.Message)
		} else {
			r.writePlain("❌ skipping playlist %s: %s\n", event.PlaylistID, event.Message)
		}
	}
}

// persistResults stores one history record per migrated playlist.
func (r *Runner) persistResults(results []*models.MigrationResult, startedAt time.Time) error {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
	if err := shared.RunMigrations(db); err != nil {
		return err
	}

	repo := repositories.NewMigrationRepository(db)
	completedAt := time.Now()

	for _, result := range results {
		record := models.NewMigrationRecord(result, startedAt, completedAt)
		if err := repo.Create(record); err != nil {
			return err
		}
	}

	return nil
}

// MigrateHistory shows past migration runs.
func (r *Runner) MigrateHistory(ctx context.Context, cmd *cli.Command) error {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	records, err := repositories.NewMigrationRepository(db).List()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		type historyEntry struct {
			ID           string    `json:"id"`
			PlaylistName string    `json:"playlist_name"`
			TracksTotal  int       `json:"tracks_total"`
			Matched      int       `json:"matched"`
			Unmatched    int       `json:"unmatched"`
			CompletedAt  time.Time `json:"completed_at"`
		}
		entries := make([]historyEntry, len(records))
		for i, record := range records {
			entries[i] = historyEntry{
				ID:           record.ID(),
				PlaylistName: record.PlaylistName(),
				TracksTotal:  record.TracksTotal(),
				Matched:      record.Matched(),
				Unmatched:    record.Unmatched(),
				CompletedAt:  record.CompletedAt(),
			}
		}
		return r.writeJSON(entries, true)
	}

	if len(records) == 0 {
		r.writePlain("No migrations recorded yet.\n")
		return nil
	}

	r.writePlainHeader("Migration History")
	for _, record := range records {
		r.writePlain("%s  %s: %d/%d matched (%s)\n",
			record.CompletedAt().Format("2006-01-02 15:04"),
			record.PlaylistName(),
			record.Matched(),
			record.TracksTotal(),
			record.ID()[:8],
		)
	}

	return nil
}
