package scanner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hg8496/clockwords/pkg/types"
)

func candidate(start, end int, conf types.MatchConfidence) types.TimeMatch {
	return types.TimeMatch{
		Span:       types.NewSpan(start, end),
		Kind:       types.RelativeDay,
		Confidence: conf,
		Resolved:   types.NewPoint(time.Date(2026, time.February, 7, 0, 0, 0, 0, time.UTC)),
	}
}

func TestResolveOverlaps_Empty(t *testing.T) {
	assert.Empty(t, resolveOverlaps(nil))
}

func TestResolveOverlaps_DisjointAllAccepted(t *testing.T) {
	result := resolveOverlaps([]types.TimeMatch{
		candidate(10, 15, types.Complete),
		candidate(0, 5, types.Complete),
	})

	require.Len(t, result, 2)
	assert.Equal(t, 0, result[0].Span.Start)
	assert.Equal(t, 10, result[1].Span.Start)
}

func TestResolveOverlaps_CompleteBeatsPartial(t *testing.T) {
	// Shorter Complete vs longer Partial on the same region: confidence
	// outranks length.
	result := resolveOverlaps([]types.TimeMatch{
		candidate(0, 10, types.Partial),
		candidate(0, 6, types.Complete),
	})

	require.Len(t, result, 1)
	assert.Equal(t, types.Complete, result[0].Confidence)
}

func TestResolveOverlaps_LongerBeatsShorter(t *testing.T) {
	result := resolveOverlaps([]types.TimeMatch{
		candidate(2, 6, types.Complete),
		candidate(0, 10, types.Complete),
	})

	require.Len(t, result, 1)
	assert.Equal(t, types.NewSpan(0, 10), result[0].Span)
}

func TestResolveOverlaps_EqualCandidateDoesNotReplace(t *testing.T) {
	// Strict dominance: an equal-length, equal-confidence, later-starting
	// overlap never replaces the accepted match.
	first := candidate(0, 5, types.Complete)
	second := candidate(3, 8, types.Complete)

	result := resolveOverlaps([]types.TimeMatch{first, second})

	require.Len(t, result, 1)
	assert.Equal(t, first.Span, result[0].Span)
}

func TestResolveOverlaps_ChainResolvedPairwise(t *testing.T) {
	// A overlaps B, B overlaps C, A and C are disjoint. The sweep keeps A
	// (B does not strictly dominate it) and then accepts C; no global
	// re-optimization happens.
	result := resolveOverlaps([]types.TimeMatch{
		candidate(3, 7, types.Complete),
		candidate(0, 4, types.Complete),
		candidate(6, 10, types.Complete),
	})

	require.Len(t, result, 2)
	assert.Equal(t, types.NewSpan(0, 4), result[0].Span)
	assert.Equal(t, types.NewSpan(6, 10), result[1].Span)
}

func TestResolveOverlaps_LongerReplacementWins(t *testing.T) {
	// The replacing candidate takes over the region; a later overlap of
	// the replaced region is judged against the replacement.
	result := resolveOverlaps([]types.TimeMatch{
		candidate(0, 4, types.Complete),
		candidate(2, 8, types.Complete),
		candidate(6, 10, types.Complete),
	})

	require.Len(t, result, 1)
	assert.Equal(t, types.NewSpan(2, 8), result[0].Span)
}

func TestResolveOverlaps_OutputSortedByStart(t *testing.T) {
	result := resolveOverlaps([]types.TimeMatch{
		candidate(20, 25, types.Complete),
		candidate(0, 5, types.Complete),
		candidate(10, 15, types.Partial),
	})

	require.Len(t, result, 3)
	for i := 1; i < len(result); i++ {
		assert.Less(t, result[i-1].Span.Start, result[i].Span.Start)
	}
}
