// Package scanner orchestrates the scan pipeline: the keyword and prefix
// prefilters gate the text, every configured language applies its grammar
// rules, a single in-progress partial may be appended, and the combined
// candidates go through overlap resolution before the capped, ordered
// result is returned.
package scanner

import (
	"strings"
	"time"

	"github.com/hg8496/clockwords/pkg/lang"
	"github.com/hg8496/clockwords/pkg/prefilter"
	"github.com/hg8496/clockwords/pkg/resolve"
	"github.com/hg8496/clockwords/pkg/types"
)

// Scanner is a stateless multi-language time expression scanner. It is
// immutable after construction and safe for concurrent use.
type Scanner struct {
	languages []lang.Language
	keywords  *prefilter.Prefilter
	prefixes  *prefilter.Prefilter
	config    types.Config
}

// New builds a scanner over the given languages. The two prefilter automata
// pool the keywords and prefixes of every language, so one pass over the
// text gates all languages at once.
func New(languages []lang.Language, config types.Config) *Scanner {
	var keywords, prefixes []string
	for _, l := range languages {
		keywords = append(keywords, l.Keywords()...)
		prefixes = append(prefixes, l.Prefixes()...)
	}
	return &Scanner{
		languages: languages,
		keywords:  prefilter.New(keywords),
		prefixes:  prefilter.New(prefixes),
		config:    config,
	}
}

// Languages returns the codes of the configured languages, in their
// configured order.
func (s *Scanner) Languages() []string {
	codes := make([]string, len(s.languages))
	for i, l := range s.languages {
		codes[i] = l.Code()
	}
	return codes
}

// Scan runs the full pipeline over text against the reference instant now.
// It never fails: unrecognizable input yields an empty slice. When neither
// prefilter fires the grammar rules are skipped entirely, which keeps the
// common no-time-talk keystroke close to free.
func (s *Scanner) Scan(text string, now time.Time) []types.TimeMatch {
	hasKeywords := s.keywords.Contains(text)
	hasPrefixes := s.config.ReportPartial && s.prefixes.Contains(text)
	if !hasKeywords && !hasPrefixes {
		return nil
	}

	var matches []types.TimeMatch

	if hasKeywords {
		for _, l := range s.languages {
			matches = append(matches, lang.ApplyRules(l.Rules(), text, now)...)
		}
	}

	if hasPrefixes {
		matches = s.appendPartial(text, now, matches)
	}

	matches = resolveOverlaps(matches)

	if len(matches) > s.config.MaxMatches {
		matches = matches[:s.config.MaxMatches]
	}
	return matches
}

// appendPartial reports the keyword the user is in the middle of typing:
// the text must end with a known prefix that starts at a word boundary.
// At most one partial is appended per scan, and none when a complete match
// already covers the trailing span.
func (s *Scanner) appendPartial(text string, now time.Time, matches []types.TimeMatch) []types.TimeMatch {
	lower := strings.ToLower(text)
	for _, l := range s.languages {
		for _, prefix := range l.Prefixes() {
			if !strings.HasSuffix(lower, strings.ToLower(prefix)) {
				continue
			}
			start := len(text) - len(prefix)
			if start > 0 && !boundaryByte(text[start-1]) {
				continue
			}
			if coveredByComplete(matches, start, len(text)) {
				continue
			}
			// Best effort: a half-typed keyword most plausibly means today.
			resolved, ok := resolve.RelativeDay(0, now)
			if !ok {
				return matches
			}
			return append(matches, types.TimeMatch{
				Span:       types.NewSpan(start, len(text)),
				Kind:       types.RelativeDay,
				Confidence: types.Partial,
				Resolved:   resolved,
			})
		}
	}
	return matches
}

func boundaryByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}

func coveredByComplete(matches []types.TimeMatch, start, end int) bool {
	for _, m := range matches {
		if m.Confidence == types.Complete && m.Span.Start <= start && m.Span.End >= end {
			return true
		}
	}
	return false
}
