package scanner

import (
	"sort"

	"github.com/hg8496/clockwords/pkg/types"
)

// resolveOverlaps reduces raw candidates to a non-overlapping set with a
// left-to-right sweep. Candidates are visited by ascending start, longer
// spans first on ties. A candidate overlapping no accepted match is
// accepted; one overlapping exactly one accepted match replaces it only
// under strict dominance; one overlapping several is discarded. Resolution
// is deliberately local and pairwise, never a global re-optimization, so
// the outcome is deterministic for a given candidate set.
func resolveOverlaps(candidates []types.TimeMatch) []types.TimeMatch {
	if len(candidates) == 0 {
		return candidates
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Span.Start != candidates[j].Span.Start {
			return candidates[i].Span.Start < candidates[j].Span.Start
		}
		return candidates[i].Span.End > candidates[j].Span.End
	})

	accepted := make([]types.TimeMatch, 0, len(candidates))
	for _, cand := range candidates {
		overlap := -1
		multiple := false
		for i, acc := range accepted {
			if !cand.Span.Overlaps(acc.Span) {
				continue
			}
			if overlap >= 0 {
				multiple = true
				break
			}
			overlap = i
		}

		switch {
		case multiple:
			// Chained overlap, keep what is already there.
		case overlap < 0:
			accepted = append(accepted, cand)
		case dominates(cand, accepted[overlap]):
			accepted[overlap] = cand
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Span.Start < accepted[j].Span.Start
	})
	return accepted
}

// dominates reports whether a strictly beats b in the preference order:
// confidence first, span length second, earlier start third.
func dominates(a, b types.TimeMatch) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	if a.Span.Len() != b.Span.Len() {
		return a.Span.Len() > b.Span.Len()
	}
	return a.Span.Start < b.Span.Start
}
