// YouTube Music [DestinationService] implementation
//
// Communicates with a local proxy server that wraps the ytmusicapi
// Python library for YouTube Music operations.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/plsync/plsync/internal/models"
	"github.com/plsync/plsync/internal/shared"
)

const defaultYTBaseURL string = "http://localhost:8081"

// YouTubeArtist represents an artist in YouTube Music responses.
type YouTubeArtist struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type youtubeAlbum struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// YouTubeTrack represents a track/video in YouTube Music responses.
type YouTubeTrack struct {
	VideoID     string          `json:"videoId"`
	Title       string          `json:"title"`
	Artists     []YouTubeArtist `json:"artists"`
	Album       *youtubeAlbum   `json:"album"`
	Duration    string          `json:"duration"`
	DurationSec int             `json:"duration_seconds"` // Duration in seconds
}

// YouTubeService implements [DestinationService] for YouTube Music via proxy.
type YouTubeService struct {
	baseURL    string
	authFile   string
	httpClient *http.Client
}

// NewYouTubeService creates a new YouTube Music service instance.
func NewYouTubeService(baseURL string) *YouTubeService {
	if baseURL == "" {
		baseURL = defaultYTBaseURL
	}

	return &YouTubeService{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// Name returns the service name.
func (y *YouTubeService) Name() string {
	return "YouTube Music"
}

// Authenticate stores the authentication file path for subsequent requests.
//
// Expects credentials["auth_file"] to contain the path to browser.json or oauth.json.
func (y *YouTubeService) Authenticate(ctx context.Context, credentials map[string]string) error {
	authFile, ok := credentials["auth_file"]
	if !ok || authFile == "" {
		return fmt.Errorf("%w: auth_file", shared.ErrMissingCredentials)
	}

	y.authFile = authFile
	return nil
}

func (y *YouTubeService) doRequest(ctx context.Context, method, endpoint string, body, result any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, y.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if y.authFile != "" {
		req.Header.Set("X-Auth-File", y.authFile)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := y.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", shared.ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("%w: %s", classifyStatus("youtube music", resp.StatusCode), errResp.Detail)
		}
		return classifyStatus("youtube music", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Health checks whether the proxy is reachable and authenticated.
//
// Calls GET /api/health on the proxy.
func (y *YouTubeService) Health(ctx context.Context) error {
	return y.doRequest(ctx, http.MethodGet, "/api/health", nil, nil)
}

// SearchTracks searches the YouTube Music catalog for a track,
// returning up to limit candidates in search ranking order.
//
// Calls GET /api/search?q={title} {artist}&filter=songs on the proxy.
func (y *YouTubeService) SearchTracks(ctx context.Context, title, artist string, limit int) ([]models.Track, error) {
	query := fmt.Sprintf("%s %s", title, artist)
	endpoint := fmt.Sprintf("/api/search?q=%s&filter=songs&limit=%d", url.QueryEscape(query), limit)

	var results []YouTubeTrack
	if err := y.doRequest(ctx, http.MethodGet, endpoint, nil, &results); err != nil {
		return nil, err
	}

	if len(results) > limit {
		results = results[:limit]
	}

	tracks := make([]models.Track, len(results))
	for i, ytt := range results {
		track := models.Track{
			ID:       ytt.VideoID,
			Title:    ytt.Title,
			Duration: ytt.DurationSec,
		}
		if len(ytt.Artists) > 0 {
			track.Artist = ytt.Artists[0].Name
		}
		if ytt.Album != nil {
			track.Album = ytt.Album.Name
		}
		tracks[i] = track
	}

	return tracks, nil
}

// CreatePlaylist creates an empty playlist and returns its ID.
//
// Calls POST /api/playlists on the proxy.
func (y *YouTubeService) CreatePlaylist(ctx context.Context, name, description string, public bool) (string, error) {
	createReq := struct {
		Title         string `json:"title"`
		Description   string `json:"description"`
		PrivacyStatus string `json:"privacy_status"`
	}{
		Title:         name,
		Description:   description,
		PrivacyStatus: "PRIVATE",
	}
	if public {
		createReq.PrivacyStatus = "PUBLIC"
	}

	var createResp struct {
		PlaylistID string `json:"playlist_id"`
	}
	if err := y.doRequest(ctx, http.MethodPost, "/api/playlists", createReq, &createResp); err != nil {
		return "", err
	}

	if createResp.PlaylistID == "" {
		return "", fmt.Errorf("%w: create playlist returned no ID", shared.ErrAPIRequest)
	}

	return createResp.PlaylistID, nil
}

// AddTracks appends tracks to a playlist in the given order.
//
// Calls POST /api/playlists/{id}/items on the proxy.
func (y *YouTubeService) AddTracks(ctx context.Context, playlistID string, trackIDs []string) error {
	if len(trackIDs) == 0 {
		return nil
	}

	addReq := struct {
		VideoIDs []string `json:"video_ids"`
	}{
		VideoIDs: trackIDs,
	}

	endpoint := fmt.Sprintf("/api/playlists/%s/items", playlistID)
	return y.doRequest(ctx, http.MethodPost, endpoint, addReq, nil)
}
