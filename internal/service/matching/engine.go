// Package matching scores a newly reported found item against open lost
// items. The scoring is a deterministic weighted heuristic with no side
// effects; callers decide what to do with the qualifying candidates.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"foundit-fast/internal/domain"
)

const (
	// Signal weights. They sum to 100, so a score is directly a percentage.
	CategoryWeight = 40
	LocationWeight = 35
	KeywordCap     = 25

	// Each overlapping description keyword is worth this much, up to
	// KeywordCap.
	keywordPoints = 8

	// Threshold is the minimum score a candidate needs to qualify.
	Threshold = 75
)

// FindMatches compares a found post against the given open lost posts and
// returns the qualifying candidates sorted by descending score. Equal scores
// keep input order. Callers must pre-filter openLost to active lost posts;
// the engine does not re-check kind or status.
func FindMatches(found *domain.Post, openLost []domain.Post) []domain.MatchCandidate {
	var candidates []domain.MatchCandidate

	for i := range openLost {
		lost := openLost[i]

		score := 0
		var reasons []string

		// Category: exact, case-sensitive. Categories come from a fixed
		// set, so no fuzzying here.
		if lost.Category == found.Category {
			score += CategoryWeight
			reasons = append(reasons, fmt.Sprintf("Same category (%s)", lost.Category))
		}

		lostLocation := strings.ToLower(lost.Location)
		foundLocation := strings.ToLower(found.Location)
		if locationsOverlap(lostLocation, foundLocation) {
			score += LocationWeight
			reasons = append(reasons, fmt.Sprintf("Similar location (%s)", lostLocation))
		}

		if n := keywordOverlap(lost.Description, found.Description); n > 0 {
			points := n * keywordPoints
			if points > KeywordCap {
				points = KeywordCap
			}
			score += points
			reasons = append(reasons, "Similar description keywords")
		}

		if score >= Threshold {
			candidates = append(candidates, domain.MatchCandidate{
				LostPost:   &lost,
				Percentage: score,
				Reason:     strings.Join(reasons, ", "),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Percentage > candidates[j].Percentage
	})
	return candidates
}

// locationsOverlap reports whether any lost-location word longer than three
// characters substring-matches (either direction) any found-location word.
// One overlapping pair is enough. The length floor filters out glue words
// like "the" and "and".
func locationsOverlap(lostLocation, foundLocation string) bool {
	foundWords := strings.Fields(foundLocation)
	for _, lw := range strings.Fields(lostLocation) {
		if len(lw) <= 3 {
			continue
		}
		for _, fw := range foundWords {
			if strings.Contains(fw, lw) || strings.Contains(lw, fw) {
				return true
			}
		}
	}
	return false
}

// keywordOverlap counts lost-description keywords (words longer than three
// characters) that substring-match any found-description keyword.
func keywordOverlap(lostDesc, foundDesc string) int {
	lostWords := keywords(lostDesc)
	foundWords := keywords(foundDesc)

	count := 0
	for _, lw := range lostWords {
		for _, fw := range foundWords {
			if strings.Contains(fw, lw) || strings.Contains(lw, fw) {
				count++
				break
			}
		}
	}
	return count
}

func keywords(text string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if len(w) > 3 {
			out = append(out, w)
		}
	}
	return out
}
