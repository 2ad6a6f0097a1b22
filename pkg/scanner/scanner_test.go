package scanner

import (
	"sync"
	"testing"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hg8496/clockwords/pkg/lang"
	"github.com/hg8496/clockwords/pkg/resolve"
	"github.com/hg8496/clockwords/pkg/types"
)

var testNow = time.Date(2026, time.February, 7, 14, 30, 0, 0, time.UTC)

func newTestScanner(t *testing.T, codes ...string) *Scanner {
	t.Helper()
	var languages []lang.Language
	for _, code := range codes {
		l, err := lang.For(code)
		require.NoError(t, err)
		languages = append(languages, l)
	}
	return New(languages, types.DefaultConfig())
}

// countingLanguage invokes a counter every time one of its resolvers runs.
type countingLanguage struct {
	calls *int
}

func (c countingLanguage) Code() string       { return "zz" }
func (c countingLanguage) Keywords() []string { return []string{"flurble"} }
func (c countingLanguage) Prefixes() []string { return []string{"flu", "flur"} }

func (c countingLanguage) Rules() []lang.Rule {
	pattern := regexp2.MustCompile(`(?i)\bflurble\b`, regexp2.RE2)
	return []lang.Rule{{
		Pattern: pattern,
		Kind:    types.RelativeDay,
		Resolve: func(caps lang.Captures, now time.Time) (types.ResolvedTime, bool) {
			*c.calls++
			return resolve.RelativeDay(0, now)
		},
	}}
}

func TestScanner_RejectionInvokesNoRules(t *testing.T) {
	calls := 0
	s := New([]lang.Language{countingLanguage{calls: &calls}}, types.DefaultConfig())

	result := s.Scan("no trigger words anywhere in here", testNow)

	assert.Empty(t, result)
	assert.Zero(t, calls, "prefilter rejection must short-circuit before any rule runs")
}

func TestScanner_AcceptanceInvokesRules(t *testing.T) {
	calls := 0
	s := New([]lang.Language{countingLanguage{calls: &calls}}, types.DefaultConfig())

	result := s.Scan("one flurble please", testNow)

	require.Len(t, result, 1)
	assert.Equal(t, 1, calls)
}

func TestScanner_EmptyInput(t *testing.T) {
	s := newTestScanner(t, "en")

	assert.Empty(t, s.Scan("", testNow))
}

func TestScanner_ResultsSortedAndNonOverlapping(t *testing.T) {
	s := newTestScanner(t, "en")

	result := s.Scan("yesterday at 3pm, then between 9 and 12, then in 4 days", testNow)

	require.NotEmpty(t, result)
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].Span.End, result[i].Span.Start,
			"spans must be sorted and disjoint")
	}
}

func TestScanner_PartialWhileTyping(t *testing.T) {
	s := newTestScanner(t, "en")

	result := s.Scan("I worked yester", testNow)

	require.Len(t, result, 1)
	assert.Equal(t, types.Partial, result[0].Confidence)
	assert.Equal(t, types.NewSpan(9, 15), result[0].Span)
	assert.Equal(t, types.RelativeDay, result[0].Kind)
}

func TestScanner_PartialUpgradesToComplete(t *testing.T) {
	s := newTestScanner(t, "en")

	result := s.Scan("I worked yesterday", testNow)

	require.Len(t, result, 1)
	assert.Equal(t, types.Complete, result[0].Confidence)
	assert.Equal(t, types.NewSpan(9, 18), result[0].Span)
}

func TestScanner_PartialRequiresWordBoundary(t *testing.T) {
	s := newTestScanner(t, "en")

	// "polyester" ends with "yester" but mid-word, so no partial.
	result := s.Scan("I wear polyester", testNow)

	assert.Empty(t, result)
}

func TestScanner_PartialDisabled(t *testing.T) {
	languages, err := lang.All()
	require.NoError(t, err)
	s := New(languages, types.Config{ReportPartial: false, MaxMatches: 10})

	assert.Empty(t, s.Scan("I worked yester", testNow))
}

func TestScanner_AtMostOnePartial(t *testing.T) {
	s := newTestScanner(t, "en", "de")

	result := s.Scan("typing tomorro", testNow)

	require.Len(t, result, 1)
	assert.Equal(t, types.Partial, result[0].Confidence)
}

func TestScanner_CrossLanguageIsolation(t *testing.T) {
	s := newTestScanner(t, "de")

	// English-only keyword, German-only scanner.
	assert.Empty(t, s.Scan("we met two days ago", testNow))
}

func TestScanner_CrossLanguageComposition(t *testing.T) {
	s := newTestScanner(t, "en", "de")

	result := s.Scan("yesterday war gut, gestern too", testNow)

	require.Len(t, result, 2)
	assert.Equal(t, types.NewSpan(0, 9), result[0].Span)
	assert.Equal(t, "gestern", "yesterday war gut, gestern too"[result[1].Span.Start:result[1].Span.End])
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].Span.End, result[i].Span.Start)
	}
}

func TestScanner_MaxMatchesCapKeepsEarliest(t *testing.T) {
	languages, err := lang.All()
	require.NoError(t, err)
	s := New(languages, types.Config{ReportPartial: true, MaxMatches: 2})

	result := s.Scan("yesterday, today, tomorrow", testNow)

	require.Len(t, result, 2)
	assert.Equal(t, types.NewSpan(0, 9), result[0].Span)
	assert.Equal(t, types.NewSpan(11, 16), result[1].Span)
}

func TestScanner_Languages(t *testing.T) {
	s := newTestScanner(t, "en", "de")

	assert.Equal(t, []string{"en", "de"}, s.Languages())
}

func TestScanner_DeterministicAcrossCalls(t *testing.T) {
	s := newTestScanner(t, "en", "de", "fr", "es")
	text := "yesterday at 3pm und gestern um 15 Uhr"

	first := s.Scan(text, testNow)
	second := s.Scan(text, testNow)

	assert.Equal(t, first, second)
}

// Sustained concurrent scans on one shared scanner must all see the same
// result: the prefilter and rule state is read-only, so no interleaving may
// drop a keyword hit. Run with the race detector enabled.
func TestScanner_ConcurrentScansStayConsistent(t *testing.T) {
	s := newTestScanner(t, "en", "de", "fr", "es")
	text := "we met yesterday at 3pm, gestern um 15 Uhr"
	want := s.Scan(text, testNow)
	require.NotEmpty(t, want)

	var wg sync.WaitGroup
	diverged := make([]int, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if got := s.Scan(text, testNow); !assert.ObjectsAreEqual(want, got) {
					diverged[g]++
				}
			}
		}(g)
	}
	wg.Wait()

	for g, n := range diverged {
		assert.Zerof(t, n, "goroutine %d saw diverging scan results", g)
	}
}
