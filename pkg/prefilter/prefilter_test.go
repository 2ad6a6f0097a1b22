package prefilter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefilter_MatchingKeyword(t *testing.T) {
	pf := New([]string{"yesterday", "tomorrow", "today"})

	assert.True(t, pf.Contains("we met yesterday at noon"))
	assert.True(t, pf.Contains("tomorrow works too"))
}

func TestPrefilter_NoKeyword(t *testing.T) {
	pf := New([]string{"yesterday", "tomorrow"})

	assert.False(t, pf.Contains("nothing temporal in this sentence"))
	assert.False(t, pf.Contains(""))
}

func TestPrefilter_CaseInsensitive(t *testing.T) {
	pf := New([]string{"yesterday"})

	assert.True(t, pf.Contains("Yesterday was fine"))
	assert.True(t, pf.Contains("YESTERDAY WAS FINE"))
	assert.True(t, pf.Contains("yEsTeRdAy"))
}

func TestPrefilter_AccentedKeywords(t *testing.T) {
	// Accented entries match byte-exactly; the unaccented spelling is its
	// own entry, never derived.
	pf := New([]string{"días", "dias"})

	assert.True(t, pf.Contains("hace 2 días"))
	assert.True(t, pf.Contains("hace 2 dias"))
	assert.True(t, pf.Contains("hace 2 DIAS"), "case folding is ASCII only")
}

func TestPrefilter_SubstringMatch(t *testing.T) {
	// The prefilter is a pure accept oracle: a keyword inside a longer
	// word still fires, the grammar rules sort out word boundaries.
	pf := New([]string{"heute"})

	assert.True(t, pf.Contains("das heutejournal"))
}

func TestPrefilter_DeduplicatesKeywords(t *testing.T) {
	pf := New([]string{"today", "Today", "TODAY", "", "tomorrow"})

	assert.Equal(t, 2, pf.Size())
}

func TestPrefilter_Empty(t *testing.T) {
	pf := New(nil)

	require.Equal(t, 0, pf.Size())
	assert.False(t, pf.Contains("yesterday"))
}

// One prefilter gates scans from many goroutines; the automaton walk must
// stay read-only and never drop a hit under interleaving. Run with the race
// detector enabled.
func TestPrefilter_ConcurrentContains(t *testing.T) {
	pf := New([]string{"yesterday", "gestern", "demain"})
	texts := []string{
		"we met yesterday at 3pm",
		"gestern um 15 Uhr",
		"on se voit demain",
		"no trigger words here",
	}

	var wg sync.WaitGroup
	misses := make([]int, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for j, text := range texts {
					if pf.Contains(text) != (j < 3) {
						misses[g]++
					}
				}
			}
		}(g)
	}
	wg.Wait()

	for g, n := range misses {
		assert.Zerof(t, n, "goroutine %d saw wrong prefilter answers", g)
	}
}

var foldSink []byte

func TestFoldASCII_NoCopyWithoutUppercase(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		foldSink = foldASCII("we met yesterday at 3pm, gestern um 15 uhr")
	})

	assert.Zero(t, allocs, "lowercase input must not be copied")
}

func TestFoldASCII_Empty(t *testing.T) {
	assert.Nil(t, foldASCII(""))
}
