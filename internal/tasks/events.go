package tasks

import (
	"time"

	"github.com/plsync/plsync/internal/models"
)

// Kind identifies the type of a migration event.
type Kind int

const (
	MigrationStart Kind = iota
	PlaylistStart
	TracksLoaded
	PlaylistCreated
	TrackProgress
	PlaylistComplete
	MigrationComplete
	MigrationError
)

func (k Kind) String() string {
	switch k {
	case MigrationStart:
		return "start"
	case PlaylistStart:
		return "playlist_start"
	case TracksLoaded:
		return "tracks_loaded"
	case PlaylistCreated:
		return "playlist_created"
	case TrackProgress:
		return "track_progress"
	case PlaylistComplete:
		return "playlist_complete"
	case MigrationComplete:
		return "complete"
	case MigrationError:
		return "error"
	default:
		return ""
	}
}

// Status is the terminal or in-flight state of a single track.
type Status int

const (
	StatusSearching Status = iota
	StatusMatched
	StatusUnmatched
)

func (s Status) String() string {
	switch s {
	case StatusSearching:
		return "searching"
	case StatusMatched:
		return "matched"
	case StatusUnmatched:
		return "unmatched"
	default:
		return ""
	}
}

// Scope distinguishes errors that abort the whole run from errors
// that only fail a single playlist.
type Scope int

const (
	ScopeGlobal Scope = iota
	ScopePlaylist
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopePlaylist:
		return "playlist"
	default:
		return ""
	}
}

// Event is a single progress event during a migration run.
//
// Events are emitted on an ordered channel. Which fields are set
// depends on Kind: playlist fields are set for every playlist-scoped
// event, track fields only for TrackProgress, and Data carries the
// [models.MigrationResult] for PlaylistComplete.
type Event struct {
	Kind Kind
	Time time.Time

	// Playlist context
	PlaylistIndex  int
	PlaylistID     string
	PlaylistName   string
	DestPlaylistID string
	Count          int // playlists for MigrationStart, tracks for TracksLoaded

	// Track context
	TrackIndex  int
	TrackTotal  int
	TrackTitle  string
	TrackArtist string
	Status      Status
	Score       float64

	// Error context
	Scope   Scope
	Message string

	Data any
}

func migrationStartEvent(playlistCount int) Event {
	return Event{
		Kind:  MigrationStart,
		Time:  time.Now(),
		Count: playlistCount,
	}
}

func playlistStartEvent(index int, playlist models.Playlist) Event {
	return Event{
		Kind:          PlaylistStart,
		Time:          time.Now(),
		PlaylistIndex: index,
		PlaylistID:    playlist.ID,
		PlaylistName:  playlist.Name,
	}
}

func tracksLoadedEvent(index int, playlist models.Playlist, count int) Event {
	return Event{
		Kind:          TracksLoaded,
		Time:          time.Now(),
		PlaylistIndex: index,
		PlaylistID:    playlist.ID,
		PlaylistName:  playlist.Name,
		Count:         count,
	}
}

func playlistCreatedEvent(index int, playlist models.Playlist, destID string) Event {
	return Event{
		Kind:           PlaylistCreated,
		Time:           time.Now(),
		PlaylistIndex:  index,
		PlaylistID:     playlist.ID,
		PlaylistName:   playlist.Name,
		DestPlaylistID: destID,
	}
}

func trackSearchingEvent(index int, playlist models.Playlist, trackIndex, total int, track models.Track) Event {
	return Event{
		Kind:          TrackProgress,
		Time:          time.Now(),
		PlaylistIndex: index,
		PlaylistID:    playlist.ID,
		PlaylistName:  playlist.Name,
		TrackIndex:    trackIndex,
		TrackTotal:    total,
		TrackTitle:    track.Title,
		TrackArtist:   track.Artist,
		Status:        StatusSearching,
	}
}

func trackMatchedEvent(index int, playlist models.Playlist, trackIndex, total int, track models.Track, candidate models.MatchCandidate) Event {
	return Event{
		Kind:          TrackProgress,
		Time:          time.Now(),
		PlaylistIndex: index,
		PlaylistID:    playlist.ID,
		PlaylistName:  playlist.Name,
		TrackIndex:    trackIndex,
		TrackTotal:    total,
		TrackTitle:    track.Title,
		TrackArtist:   track.Artist,
		Status:        StatusMatched,
		Score:         candidate.Score,
		Data:          candidate,
	}
}

func trackUnmatchedEvent(index int, playlist models.Playlist, trackIndex, total int, track models.Track) Event {
	return Event{
		Kind:          TrackProgress,
		Time:          time.Now(),
		PlaylistIndex: index,
		PlaylistID:    playlist.ID,
		PlaylistName:  playlist.Name,
		TrackIndex:    trackIndex,
		TrackTotal:    total,
		TrackTitle:    track.Title,
		TrackArtist:   track.Artist,
		Status:        StatusUnmatched,
	}
}

func playlistCompleteEvent(index int, result *models.MigrationResult) Event {
	return Event{
		Kind:           PlaylistComplete,
		Time:           time.Now(),
		PlaylistIndex:  index,
		PlaylistID:     result.SourcePlaylistID,
		PlaylistName:   result.PlaylistName,
		DestPlaylistID: result.DestPlaylistID,
		Data:           result,
	}
}

func migrationCompleteEvent(results []*models.MigrationResult) Event {
	return Event{
		Kind:  MigrationComplete,
		Time:  time.Now(),
		Count: len(results),
		Data:  results,
	}
}

func errorEvent(scope Scope, index int, playlistID string, err error) Event {
	return Event{
		Kind:          MigrationError,
		Time:          time.Now(),
		PlaylistIndex: index,
		PlaylistID:    playlistID,
		Scope:         scope,
		Message:       err.Error(),
	}
}
