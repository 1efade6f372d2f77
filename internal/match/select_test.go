package match

import (
	"testing"

	"github.com/plsync/plsync/internal/models"
)

func TestSelectBest(t *testing.T) {
	source := models.Track{Title: "Shape of You", Artist: "Ed Sheeran"}

	t.Run("empty candidates never match", func(t *testing.T) {
		if _, ok := SelectBest(source, nil, 0.0); ok {
			t.Error("expected no match for empty candidates")
		}
	})

	t.Run("picks the highest scoring candidate", func(t *testing.T) {
		candidates := []models.Track{
			{ID: "1", Title: "Shape of Me", Artist: "Ed Sheeran"},
			{ID: "2", Title: "Shape of You", Artist: "Ed Sheeran"},
			{ID: "3", Title: "Bohemian Rhapsody", Artist: "Queen"},
		}

		best, ok := SelectBest(source, candidates, DefaultMinScore)
		if !ok {
			t.Fatal("expected a match")
		}
		if best.Track.ID != "2" {
			t.Errorf("expected candidate 2, got %s", best.Track.ID)
		}
		if best.Score != 1.0 {
			t.Errorf("expected score 1.0, got %v", best.Score)
		}
	})

	t.Run("noise suffix does not lose to a different track", func(t *testing.T) {
		candidates := []models.Track{
			{ID: "1", Title: "Shape of Me", Artist: "Ed Sheeran"},
			{ID: "2", Title: "Shape of You (Remastered)", Artist: "Ed Sheeran"},
		}

		best, ok := SelectBest(source, candidates, DefaultMinScore)
		if !ok {
			t.Fatal("expected a match")
		}
		if best.Track.ID != "2" {
			t.Errorf("expected the remastered candidate, got %s", best.Track.ID)
		}
	})

	t.Run("ties keep the earlier candidate", func(t *testing.T) {
		candidates := []models.Track{
			{ID: "1", Title: "Shape of You", Artist: "Ed Sheeran"},
			{ID: "2", Title: "Shape of You", Artist: "Ed Sheeran"},
		}

		best, ok := SelectBest(source, candidates, DefaultMinScore)
		if !ok {
			t.Fatal("expected a match")
		}
		if best.Track.ID != "1" {
			t.Errorf("expected the earlier candidate on a tie, got %s", best.Track.ID)
		}
	})

	t.Run("rejects candidates below the threshold", func(t *testing.T) {
		candidates := []models.Track{
			{ID: "1", Title: "Bohemian Rhapsody", Artist: "Queen"},
		}

		if _, ok := SelectBest(source, candidates, DefaultMinScore); ok {
			t.Error("expected no match below the threshold")
		}
	})

	t.Run("threshold of zero accepts anything scoreable", func(t *testing.T) {
		candidates := []models.Track{
			{ID: "1", Title: "Bohemian Rhapsody", Artist: "Queen"},
		}

		if _, ok := SelectBest(source, candidates, 0.0); !ok {
			t.Error("expected a match with a zero threshold")
		}
	})
}
