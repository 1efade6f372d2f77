package match

import (
	"testing"

	"github.com/plsync/plsync/internal/models"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "shape of you", "shape of you", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "shape of you", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := similarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	t.Run("symmetric", func(t *testing.T) {
		if similarity("abc", "abd") != similarity("abd", "abc") {
			t.Error("expected symmetric similarity")
		}
	})

	t.Run("closer strings score higher", func(t *testing.T) {
		near := similarity("shape of you", "shape of me")
		far := similarity("shape of you", "blinding lights")
		if near <= far {
			t.Errorf("expected near %v > far %v", near, far)
		}
	})
}

func TestScore(t *testing.T) {
	source := models.Track{Title: "Shape of You", Artist: "Ed Sheeran"}

	t.Run("exact match scores 1.0", func(t *testing.T) {
		got := Score(source, models.Track{Title: "Shape of You", Artist: "Ed Sheeran"})
		if got != 1.0 {
			t.Errorf("expected 1.0, got %v", got)
		}
	})

	t.Run("noise-only differences score 1.0", func(t *testing.T) {
		got := Score(source, models.Track{Title: "Shape of You (Remastered 2021)", Artist: "Ed Sheeran"})
		if got != 1.0 {
			t.Errorf("expected 1.0, got %v", got)
		}
	})

	t.Run("empty source title scores 0", func(t *testing.T) {
		got := Score(models.Track{Title: "", Artist: "Ed Sheeran"}, source)
		if got != 0.0 {
			t.Errorf("expected 0.0, got %v", got)
		}
	})

	t.Run("empty candidate artist scores 0", func(t *testing.T) {
		got := Score(source, models.Track{Title: "Shape of You", Artist: ""})
		if got != 0.0 {
			t.Errorf("expected 0.0, got %v", got)
		}
	})

	t.Run("unrelated track scores below threshold", func(t *testing.T) {
		got := Score(source, models.Track{Title: "Bohemian Rhapsody", Artist: "Queen"})
		if got >= DefaultMinScore {
			t.Errorf("expected score below %v, got %v", DefaultMinScore, got)
		}
	})

	t.Run("bonus applies when both axes are strong", func(t *testing.T) {
		// Same artist, one character changed in the title. Title and
		// artist similarity both clear the bonus thresholds.
		got := Score(source, models.Track{Title: "Shape of Yoo", Artist: "Ed Sheeran"})
		titleSim := similarity("shape of you", "shape of yoo")
		want := titleWeight*titleSim + artistWeight*1.0 + bonusScore
		if want > 1.0 {
			want = 1.0
		}
		if got != want {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("score never exceeds 1.0", func(t *testing.T) {
		got := Score(source, models.Track{Title: "shape of you", Artist: "ed sheeran"})
		if got > 1.0 {
			t.Errorf("expected score capped at 1.0, got %v", got)
		}
	})
}
