package match

import (
	"github.com/xrash/smetrics"

	"github.com/plsync/plsync/internal/models"
)

const (
	titleWeight  = 0.6
	artistWeight = 0.4

	// bonus rewards candidates that are strong on both axes at once.
	bonusScore           = 0.1
	bonusTitleThreshold  = 0.8
	bonusArtistThreshold = 0.7
)

// similarity computes a normalized edit-distance ratio between two
// strings in [0, 1], where 1 means identical. Substitutions cost
// double so the ratio behaves like a subsequence match.
func similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	distance := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return 1.0 - float64(distance)/float64(len(a)+len(b))
}

// Score rates how well candidate matches source on a [0, 1] scale.
//
// Title similarity is weighted at 0.6 and artist similarity at 0.4,
// with a 0.1 bonus when both are individually strong. A track whose
// normalized title or artist is empty on either side scores 0.
func Score(source, candidate models.Track) float64 {
	sourceTitle := Normalize(source.Title)
	sourceArtist := Normalize(source.Artist)
	candTitle := Normalize(candidate.Title)
	candArtist := Normalize(candidate.Artist)

	if sourceTitle == "" || sourceArtist == "" || candTitle == "" || candArtist == "" {
		return 0.0
	}

	titleSim := similarity(sourceTitle, candTitle)
	artistSim := similarity(sourceArtist, candArtist)

	score := titleWeight*titleSim + artistWeight*artistSim
	if titleSim > bonusTitleThreshold && artistSim > bonusArtistThreshold {
		score += bonusScore
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
