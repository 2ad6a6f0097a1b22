// Package lang defines the language-module contract and the grammar-rule
// application framework. Each built-in language contributes a keyword list
// and typing-prefix list (data, embedded as YAML) plus an ordered list of
// grammar rules (compiled patterns paired with pure resolver functions).
package lang

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/hg8496/clockwords/pkg/types"
)

// Language is the contract every language module satisfies. The scanner
// never inspects language internals beyond this interface, so external
// modules can be composed the same way the built-ins are.
type Language interface {
	// Code returns the ISO-639-1 language code, e.g. "en".
	Code() string

	// Keywords returns the full trigger words for the keyword prefilter,
	// including explicit unaccented variants of accented entries.
	Keywords() []string

	// Prefixes returns the typing prefixes (each at least 3 runes) used
	// for partial match detection.
	Prefixes() []string

	// Rules returns the grammar rules in priority order: more specific
	// forms (Combined) before general ones (RelativeDay).
	Rules() []Rule
}

// Resolver turns the captures of one textual match plus a reference instant
// into a resolved time. Returning false declines the candidate: the span is
// dropped entirely, never reported and never an error.
type Resolver func(caps Captures, now time.Time) (types.ResolvedTime, bool)

// Rule pairs one compiled pattern with the resolver that interprets its
// captures, tagged with the expression kind it produces. Rules are immutable
// after construction and hold no per-match state.
type Rule struct {
	Pattern *regexp2.Regexp
	Kind    types.ExpressionKind
	Resolve Resolver
}

// Captures wraps one pattern match and exposes its named groups.
type Captures struct {
	match *regexp2.Match
}

// Group returns the text of the named capture group, or false if the group
// did not participate in the match.
func (c Captures) Group(name string) (string, bool) {
	g := c.match.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	return g.String(), true
}

// capInt returns the named group parsed as a decimal integer.
func capInt(c Captures, name string) (int, bool) {
	s, ok := c.Group(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// capNumber returns the named group resolved through the number lexicon:
// digits first, then the language's word table. Unknown words decline.
func capNumber(c Captures, name string, table map[string]int) (int, bool) {
	s, ok := c.Group(name)
	if !ok {
		return 0, false
	}
	return parseNumber(table, strings.ToLower(s))
}

// capMinute returns the optional "min" group, defaulting to zero when the
// group did not participate.
func capMinute(c Captures) int {
	s, ok := c.Group("min")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// matchTimeout bounds pattern evaluation so a pathological input can never
// stall a keystroke scan.
const matchTimeout = 5 * time.Second

// mustCompile compiles a built-in grammar pattern. Tries RE2 mode first
// (no backtracking), falling back to the default mode for constructs RE2
// rejects. Built-in patterns are fixed literals, so failure is a programmer
// error and panics at construction time.
func mustCompile(pattern string) *regexp2.Regexp {
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		re, err = regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			panic(fmt.Sprintf("lang: invalid built-in pattern %q: %v", pattern, err))
		}
	}
	re.MatchTimeout = matchTimeout
	return re
}

// ApplyRules runs every rule against the full text and collects resolved
// matches. Every textual occurrence of every pattern is considered; a
// candidate whose resolver declines is discarded. A candidate whose span is
// already covered by a previously accepted, equal-or-longer match is
// skipped, and accepting a candidate evicts earlier matches it fully
// covers, which is why rule order puts specific forms first.
func ApplyRules(rules []Rule, text string, now time.Time) []types.TimeMatch {
	runes := []rune(text)
	byteOff := runeByteOffsets(text, len(runes))

	var matches []types.TimeMatch
	var covered []types.Span

	for _, rule := range rules {
		m, err := rule.Pattern.FindRunesMatch(runes)
		for err == nil && m != nil {
			span := types.NewSpan(byteOff[m.Index], byteOff[m.Index+m.Length])

			if !coveredBy(covered, span) {
				if resolved, ok := rule.Resolve(Captures{match: m}, now); ok {
					matches = evictCovered(matches, span)
					covered = evictCoveredSpans(covered, span)
					matches = append(matches, types.TimeMatch{
						Span:       span,
						Kind:       rule.Kind,
						Confidence: types.Complete,
						Resolved:   resolved,
					})
					covered = append(covered, span)
				}
			}

			m, err = rule.Pattern.FindNextMatch(m)
		}
		// A timeout surfaces as err; the scan contract never fails, so the
		// remaining occurrences of this one rule are abandoned.
	}

	return matches
}

// runeByteOffsets maps rune indices to byte offsets; entry n is the byte
// offset of rune n, entry len(runes) is len(text).
func runeByteOffsets(text string, runeCount int) []int {
	offsets := make([]int, runeCount+1)
	i := 0
	for off := range text {
		offsets[i] = off
		i++
	}
	offsets[runeCount] = len(text)
	return offsets
}

func coveredBy(covered []types.Span, span types.Span) bool {
	for _, c := range covered {
		if c.Covers(span) {
			return true
		}
	}
	return false
}

func evictCovered(matches []types.TimeMatch, span types.Span) []types.TimeMatch {
	kept := matches[:0]
	for _, m := range matches {
		if !span.Covers(m.Span) {
			kept = append(kept, m)
		}
	}
	return kept
}

func evictCoveredSpans(covered []types.Span, span types.Span) []types.Span {
	kept := covered[:0]
	for _, c := range covered {
		if !span.Covers(c) {
			kept = append(kept, c)
		}
	}
	return kept
}
