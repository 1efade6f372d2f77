package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plsync/plsync/internal/shared"
)

func TestYouTubeService(t *testing.T) {
	t.Run("NewYouTubeService", func(t *testing.T) {
		t.Run("creates service with default URL", func(t *testing.T) {
			if svc := NewYouTubeService(""); svc == nil {
				t.Fatal("expected service to be created")
			} else if svc.baseURL != defaultYTBaseURL {
				t.Errorf("expected baseURL to be %s, got %s", defaultYTBaseURL, svc.baseURL)
			}
		})

		t.Run("creates service with custom URL", func(t *testing.T) {
			customURL := "http://localhost:9000"
			if svc := NewYouTubeService(customURL); svc.baseURL != customURL {
				t.Errorf("expected baseURL to be %s, got %s", customURL, svc.baseURL)
			}
		})
	})

	t.Run("Name", func(t *testing.T) {
		if svc := NewYouTubeService(""); svc.Name() != "YouTube Music" {
			t.Errorf("expected name to be 'YouTube Music', got %s", svc.Name())
		}
	})

	t.Run("Authenticate", func(t *testing.T) {
		svc := NewYouTubeService("")
		ctx := context.Background()

		t.Run("authenticates with auth_file", func(t *testing.T) {
			credentials := map[string]string{"auth_file": "/path/to/browser.json"}
			if err := svc.Authenticate(ctx, credentials); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if svc.authFile != credentials["auth_file"] {
				t.Errorf("expected authFile to be %s, got %s", credentials["auth_file"], svc.authFile)
			}
		})

		t.Run("fails without auth_file", func(t *testing.T) {
			err := svc.Authenticate(ctx, map[string]string{})
			if !errors.Is(err, shared.ErrMissingCredentials) {
				t.Fatalf("expected ErrMissingCredentials, got %v", err)
			}
		})
	})

	t.Run("SearchTracks", func(t *testing.T) {
		mockResults := []map[string]any{
			{
				"videoId":          "vid1",
				"title":            "Shape of You",
				"artists":          []map[string]any{{"name": "Ed Sheeran", "id": "a1"}},
				"album":            map[string]any{"name": "Divide", "id": "al1"},
				"duration_seconds": 233,
			},
			{
				"videoId":          "vid2",
				"title":            "Shape of You (Remix)",
				"artists":          []map[string]any{{"name": "Ed Sheeran", "id": "a1"}},
				"duration_seconds": 250,
			},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/search" {
				t.Errorf("expected path /api/search, got %s", r.URL.Path)
			}
			if r.URL.Query().Get("filter") != "songs" {
				t.Errorf("expected filter=songs, got %s", r.URL.Query().Get("filter"))
			}
			if r.URL.Query().Get("q") != "Shape of You Ed Sheeran" {
				t.Errorf("unexpected query %q", r.URL.Query().Get("q"))
			}
			if r.Header.Get("X-Auth-File") != "/path/to/auth.json" {
				t.Errorf("expected X-Auth-File header")
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(mockResults)
		}))
		defer server.Close()

		svc := NewYouTubeService(server.URL)
		svc.authFile = "/path/to/auth.json"

		tracks, err := svc.SearchTracks(context.Background(), "Shape of You", "Ed Sheeran", 15)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(tracks) != 2 {
			t.Fatalf("expected 2 tracks, got %d", len(tracks))
		}
		if tracks[0].ID != "vid1" {
			t.Errorf("expected first track vid1, got %s", tracks[0].ID)
		}
		if tracks[0].Artist != "Ed Sheeran" {
			t.Errorf("expected artist Ed Sheeran, got %s", tracks[0].Artist)
		}
		if tracks[0].Album != "Divide" {
			t.Errorf("expected album Divide, got %s", tracks[0].Album)
		}
		if tracks[1].Album != "" {
			t.Errorf("expected empty album for second track, got %s", tracks[1].Album)
		}
	})

	t.Run("SearchTracks truncates to limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			results := []map[string]any{
				{"videoId": "vid1", "title": "A"},
				{"videoId": "vid2", "title": "B"},
				{"videoId": "vid3", "title": "C"},
			}
			json.NewEncoder(w).Encode(results)
		}))
		defer server.Close()

		svc := NewYouTubeService(server.URL)
		tracks, err := svc.SearchTracks(context.Background(), "A", "B", 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tracks) != 2 {
			t.Errorf("expected 2 tracks, got %d", len(tracks))
		}
	})

	t.Run("SearchTracks empty results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]map[string]any{})
		}))
		defer server.Close()

		svc := NewYouTubeService(server.URL)
		tracks, err := svc.SearchTracks(context.Background(), "Unknown", "Nobody", 15)
		if err != nil {
			t.Fatalf("expected no error for empty results, got %v", err)
		}
		if len(tracks) != 0 {
			t.Errorf("expected no tracks, got %d", len(tracks))
		}
	})

	t.Run("CreatePlaylist", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/playlists" {
				t.Errorf("expected path /api/playlists, got %s", r.URL.Path)
			}
			if r.Method != http.MethodPost {
				t.Errorf("expected POST method, got %s", r.Method)
			}

			var req struct {
				Title         string `json:"title"`
				Description   string `json:"description"`
				PrivacyStatus string `json:"privacy_status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			if req.Title != "Road Trip (2019)" {
				t.Errorf("expected verbatim title, got %q", req.Title)
			}
			if req.PrivacyStatus != "PRIVATE" {
				t.Errorf("expected PRIVATE status, got %s", req.PrivacyStatus)
			}

			json.NewEncoder(w).Encode(map[string]string{"playlist_id": "PLnew"})
		}))
		defer server.Close()

		svc := NewYouTubeService(server.URL)
		id, err := svc.CreatePlaylist(context.Background(), "Road Trip (2019)", "summer songs", false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id != "PLnew" {
			t.Errorf("expected playlist ID PLnew, got %s", id)
		}
	})

	t.Run("CreatePlaylist missing ID in response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer server.Close()

		svc := NewYouTubeService(server.URL)
		if _, err := svc.CreatePlaylist(context.Background(), "Test", "", false); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("AddTracks", func(t *testing.T) {
		var got []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/playlists/PL123/items" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			var req struct {
				VideoIDs []string `json:"video_ids"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			got = req.VideoIDs
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		svc := NewYouTubeService(server.URL)
		if err := svc.AddTracks(context.Background(), "PL123", []string{"v1", "v2"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 2 || got[0] != "v1" || got[1] != "v2" {
			t.Errorf("expected ordered video IDs [v1 v2], got %v", got)
		}
	})

	t.Run("AddTracks with no IDs skips the request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("expected no request for empty track list")
		}))
		defer server.Close()

		svc := NewYouTubeService(server.URL)
		if err := svc.AddTracks(context.Background(), "PL123", nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("error classification", func(t *testing.T) {
		tests := []struct {
			name   string
			status int
			want   error
		}{
			{"unauthorized maps to auth failure", http.StatusUnauthorized, shared.ErrAuthFailed},
			{"forbidden maps to auth failure", http.StatusForbidden, shared.ErrAuthFailed},
			{"rate limit maps to transient", http.StatusTooManyRequests, shared.ErrTransient},
			{"server error maps to transient", http.StatusInternalServerError, shared.ErrTransient},
			{"not found maps to playlist not found", http.StatusNotFound, shared.ErrPlaylistNotFound},
			{"bad request maps to api error", http.StatusBadRequest, shared.ErrAPIRequest},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
				}))
				defer server.Close()

				svc := NewYouTubeService(server.URL)
				_, err := svc.SearchTracks(context.Background(), "a", "b", 5)
				if !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
			})
		}
	})

	t.Run("network failure maps to transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		svc := NewYouTubeService(server.URL)
		_, err := svc.SearchTracks(context.Background(), "a", "b", 5)
		if !errors.Is(err, shared.ErrTransient) {
			t.Errorf("expected ErrTransient, got %v", err)
		}
	})

	t.Run("Health", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/health" {
				t.Errorf("expected path /api/health, got %s", r.URL.Path)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		svc := NewYouTubeService(server.URL)
		if err := svc.Health(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}
