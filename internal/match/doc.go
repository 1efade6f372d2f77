// package match implements track matching between streaming services.
//
// Matching runs in three stages. Titles and artists are normalized to
// strip noise like "(Remastered)" or "feat." suffixes, candidates from
// a destination search are scored against the source track with a
// weighted edit-distance similarity, and the best candidate above a
// minimum score is selected.
package match
