package match

import "github.com/plsync/plsync/internal/models"

const (
	// DefaultMinScore is the minimum score a candidate needs to be
	// accepted when no threshold is configured.
	DefaultMinScore = 0.6

	// DefaultSearchLimit caps how many destination search results are
	// scored per source track.
	DefaultSearchLimit = 15
)

// SelectBest scores every candidate against source and returns the
// highest-scoring one at or above minScore.
//
// The second return value reports whether a match was found. On score
// ties the earliest candidate wins, preserving the search ranking of
// the destination service. An empty candidate list never matches.
func SelectBest(source models.Track, candidates []models.Track, minScore float64) (models.MatchCandidate, bool) {
	if len(candidates) == 0 {
		return models.MatchCandidate{}, false
	}

	best := models.MatchCandidate{Track: candidates[0], Score: Score(source, candidates[0])}
	for _, candidate := range candidates[1:] {
		score := Score(source, candidate)
		if score > best.Score {
			best = models.MatchCandidate{Track: candidate, Score: score}
		}
	}

	if best.Score < minScore {
		return models.MatchCandidate{}, false
	}
	return best, true
}
