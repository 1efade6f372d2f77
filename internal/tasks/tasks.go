package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/plsync/plsync/internal/match"
	"github.com/plsync/plsync/internal/models"
	"github.com/plsync/plsync/internal/services"
	"github.com/plsync/plsync/internal/shared"
)

// MigrateOpts tunes a migration run.
type MigrateOpts struct {
	// MinScore is the minimum match score required to accept a
	// destination candidate. Defaults to [match.DefaultMinScore].
	MinScore float64

	// SearchLimit caps how many destination search results are scored
	// per track. Defaults to [match.DefaultSearchLimit].
	SearchLimit int

	// RetryBackoff is the fixed wait before retrying a transient
	// destination failure. Each operation is retried at most once.
	RetryBackoff time.Duration

	// RateLimit bounds destination API calls per second.
	RateLimit rate.Limit
}

const (
	defaultRetryBackoff = 500 * time.Millisecond
	defaultRateLimit    = rate.Limit(5)
)

// Migrator orchestrates playlist migrations from a source service to
// a destination service.
type Migrator struct {
	source  services.SourceService
	dest    services.DestinationService
	opts    MigrateOpts
	limiter *rate.Limiter
}

// NewMigrator creates a Migrator, filling in defaults for any unset options.
func NewMigrator(source services.SourceService, dest services.DestinationService, opts MigrateOpts) *Migrator {
	if opts.MinScore <= 0 {
		opts.MinScore = match.DefaultMinScore
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = match.DefaultSearchLimit
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = defaultRetryBackoff
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = defaultRateLimit
	}

	return &Migrator{
		source:  source,
		dest:    dest,
		opts:    opts,
		limiter: rate.NewLimiter(opts.RateLimit, 1),
	}
}

// Migrate migrates the given source playlists to the destination
// service and returns an ordered event channel.
//
// Every send blocks until the consumer receives it, so no event is
// ever dropped, and the channel is closed after the terminal
// MigrationComplete or global MigrationError event. Playlist-scoped
// failures emit an error event and the run continues with the next
// playlist; authentication failures and cancellation abort the run.
func (m *Migrator) Migrate(ctx context.Context, playlistIDs []string) <-chan Event {
	events := make(chan Event)
	go func() {
		defer close(events)
		m.run(ctx, playlistIDs, events)
	}()
	return events
}

func (m *Migrator) run(ctx context.Context, playlistIDs []string, events chan<- Event) {
	playlists, err := m.source.GetPlaylists(ctx)
	if err != nil {
		events <- errorEvent(ScopeGlobal, 0, "", fmt.Errorf("failed to list source playlists: %w", err))
		return
	}

	byID := make(map[string]models.Playlist, len(playlists))
	for _, p := range playlists {
		byID[p.ID] = p
	}

	events <- migrationStartEvent(len(playlistIDs))

	var results []*models.MigrationResult
	for i, id := range playlistIDs {
		playlist, ok := byID[id]
		if !ok {
			events <- errorEvent(ScopePlaylist, i, id, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id))
			continue
		}

		result, err := m.migratePlaylist(ctx, i, playlist, events)
		if err != nil {
			if isGlobalErr(err) {
				events <- errorEvent(ScopeGlobal, i, id, err)
				return
			}
			events <- errorEvent(ScopePlaylist, i, id, err)
			continue
		}
		results = append(results, result)
	}

	events <- migrationCompleteEvent(results)
}

// migratePlaylist migrates a single playlist. A returned error means
// the playlist produced no result; the caller decides its scope.
func (m *Migrator) migratePlaylist(ctx context.Context, index int, playlist models.Playlist, events chan<- Event) (*models.MigrationResult, error) {
	events <- playlistStartEvent(index, playlist)

	export, err := m.source.ExportPlaylist(ctx, playlist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to export playlist %s: %w", playlist.ID, err)
	}

	events <- tracksLoadedEvent(index, playlist, len(export.Tracks))

	var destID string
	err = m.withRetry(ctx, func() error {
		var err error
		destID, err = m.dest.CreatePlaylist(ctx, playlist.Name, playlist.Description, false)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create destination playlist for %s: %w", playlist.ID, err)
	}

	events <- playlistCreatedEvent(index, playlist, destID)

	total := len(export.Tracks)
	matched := 0
	var unmatchedTracks []models.Track

	for ti, track := range export.Tracks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		events <- trackSearchingEvent(index, playlist, ti, total, track)

		candidate, ok, err := m.matchTrack(ctx, track)
		if err != nil {
			if isGlobalErr(err) {
				return nil, err
			}
			// Search failed after retry; count the track unmatched and
			// move on.
			events <- trackUnmatchedEvent(index, playlist, ti, total, track)
			unmatchedTracks = append(unmatchedTracks, track)
			continue
		}
		if !ok {
			events <- trackUnmatchedEvent(index, playlist, ti, total, track)
			unmatchedTracks = append(unmatchedTracks, track)
			continue
		}

		err = m.withRetry(ctx, func() error {
			return m.dest.AddTracks(ctx, destID, []string{candidate.Track.ID})
		})
		if err != nil {
			if isGlobalErr(err) {
				return nil, err
			}
			events <- trackUnmatchedEvent(index, playlist, ti, total, track)
			unmatchedTracks = append(unmatchedTracks, track)
			continue
		}

		matched++
		events <- trackMatchedEvent(index, playlist, ti, total, track, candidate)
	}

	result := &models.MigrationResult{
		SourcePlaylistID: playlist.ID,
		DestPlaylistID:   destID,
		PlaylistName:     playlist.Name,
		TracksTotal:      total,
		Matched:          matched,
		Unmatched:        len(unmatchedTracks),
		UnmatchedTracks:  unmatchedTracks,
	}

	events <- playlistCompleteEvent(index, result)
	return result, nil
}

// matchTrack searches the destination catalog and selects the best
// candidate for a source track.
func (m *Migrator) matchTrack(ctx context.Context, track models.Track) (models.MatchCandidate, bool, error) {
	var candidates []models.Track
	err := m.withRetry(ctx, func() error {
		var err error
		candidates, err = m.dest.SearchTracks(ctx, track.Title, track.Artist, m.opts.SearchLimit)
		return err
	})
	if err != nil {
		return models.MatchCandidate{}, false, err
	}

	candidate, ok := match.SelectBest(track, candidates, m.opts.MinScore)
	return candidate, ok, nil
}

// withRetry runs op under the destination rate limiter, retrying once
// after a fixed backoff when the failure is transient.
func (m *Migrator) withRetry(ctx context.Context, op func() error) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return err
	}

	err := op()
	if err == nil || !errors.Is(err, shared.ErrTransient) {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.opts.RetryBackoff):
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return err
	}
	return op()
}

// isGlobalErr reports whether err should abort the whole run rather
// than just the current playlist.
func isGlobalErr(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, shared.ErrAuthFailed) ||
		errors.Is(err, shared.ErrNotAuthenticated) ||
		errors.Is(err, shared.ErrTokenExpired)
}
