package lang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hg8496/clockwords/pkg/types"
)

// Saturday afternoon, the reference instant most tests scan against.
var testNow = time.Date(2026, time.February, 7, 14, 30, 0, 0, time.UTC)

// Sunday noon, used by the weekday tests so this/next/last are distinct.
var weekdayNow = time.Date(2026, time.February, 8, 12, 0, 0, 0, time.UTC)

func utc(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func mustLang(t *testing.T, code string) Language {
	t.Helper()
	l, err := For(code)
	require.NoError(t, err)
	return l
}

func apply(t *testing.T, code, text string, now time.Time) []types.TimeMatch {
	t.Helper()
	return ApplyRules(mustLang(t, code).Rules(), text, now)
}

func requireOne(t *testing.T, matches []types.TimeMatch) types.TimeMatch {
	t.Helper()
	require.Len(t, matches, 1)
	return matches[0]
}

func TestApplyRules_ByteSpansWithMultibyteText(t *testing.T) {
	// "café" is five bytes; spans must stay byte offsets, not rune offsets.
	matches := apply(t, "fr", "café hier", testNow)

	m := requireOne(t, matches)
	assert.Equal(t, types.NewSpan(6, 10), m.Span)
	assert.Equal(t, "hier", "café hier"[m.Span.Start:m.Span.End])
}

func TestApplyRules_SpecificRuleSuppressesCoveredGeneralRule(t *testing.T) {
	// The combined rule runs first; the bare "yesterday" and "at 3pm"
	// rules land inside its span and must not surface separately.
	matches := apply(t, "en", "yesterday at 3pm", testNow)

	m := requireOne(t, matches)
	assert.Equal(t, types.Combined, m.Kind)
	assert.Equal(t, types.NewSpan(0, 16), m.Span)
}

func TestApplyRules_DecliningResolverDropsSpan(t *testing.T) {
	matches := apply(t, "en", "at 27pm", testNow)

	assert.Empty(t, matches)
}

func TestApplyRules_MultipleOccurrencesOfOneRule(t *testing.T) {
	matches := apply(t, "en", "yesterday and yesterday", testNow)

	require.Len(t, matches, 2)
	assert.Equal(t, types.NewSpan(0, 9), matches[0].Span)
	assert.Equal(t, types.NewSpan(14, 23), matches[1].Span)
}

func TestApplyRules_EmptyText(t *testing.T) {
	assert.Empty(t, apply(t, "en", "", testNow))
}

func TestRegistry_UnknownCode(t *testing.T) {
	_, err := For("xx")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestRegistry_Codes(t *testing.T) {
	assert.Equal(t, []string{"de", "en", "es", "fr"}, Codes())
}

func TestRegistry_All(t *testing.T) {
	langs, err := All()
	require.NoError(t, err)
	require.Len(t, langs, 4)
	assert.Equal(t, "de", langs[0].Code())
}

func TestLanguage_PrefixesAreAtLeastThreeRunes(t *testing.T) {
	for _, code := range Codes() {
		l := mustLang(t, code)
		for _, p := range l.Prefixes() {
			assert.GreaterOrEqual(t, len([]rune(p)), 3, "%s prefix %q", code, p)
		}
	}
}
