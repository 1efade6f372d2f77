package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plsync/plsync/internal/models"
	"github.com/plsync/plsync/internal/shared"
)

// SourceService is a streaming service playlists are migrated from.
type SourceService interface {
	// Authenticate performs OAuth or API key authentication with the service.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// GetPlaylists retrieves all playlists for the authenticated user.
	GetPlaylists(ctx context.Context) ([]models.Playlist, error)

	// ExportPlaylist exports a playlist with all its tracks, in playlist order.
	ExportPlaylist(ctx context.Context, playlistID string) (*models.PlaylistExport, error)

	// Name returns the display name of the service (e.g., "Spotify").
	Name() string
}

// DestinationService is a streaming service playlists are migrated to.
type DestinationService interface {
	// Authenticate performs OAuth or API key authentication with the service.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// SearchTracks searches the service catalog for a track, returning
	// up to limit candidates in the service's ranking order.
	SearchTracks(ctx context.Context, title, artist string, limit int) ([]models.Track, error)

	// CreatePlaylist creates an empty playlist and returns its ID.
	CreatePlaylist(ctx context.Context, name, description string, public bool) (string, error)

	// AddTracks appends tracks to a playlist in the given order.
	AddTracks(ctx context.Context, playlistID string, trackIDs []string) error

	// Name returns the display name of the service (e.g., "YouTube Music").
	Name() string
}

// classifyStatus maps a non-2xx HTTP status to a sentinel error so
// callers can distinguish auth failures from retryable ones.
func classifyStatus(service string, status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s returned status %d", shared.ErrAuthFailed, service, status)
	case status == http.StatusTooManyRequests || status >= 500:
		return fmt.Errorf("%w: %s returned status %d", shared.ErrTransient, service, status)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s returned status %d", shared.ErrPlaylistNotFound, service, status)
	default:
		return fmt.Errorf("%w: %s returned status %d", shared.ErrAPIRequest, service, status)
	}
}
