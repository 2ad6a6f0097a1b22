// Package clockwords scans free text for natural-language relative time
// expressions ("yesterday", "vor drei Tagen", "hier à 13h", "entre las 9 y
// las 12") and resolves each one against a caller-supplied reference
// instant. It is designed to be called on every keystroke: an Aho-Corasick
// prefilter rejects text with no time talk before any grammar rule runs.
//
// The package root is a facade over pkg/scanner, pkg/lang and pkg/types;
// most callers need nothing beyond NewScanner or DefaultScanner and Scan.
package clockwords

import (
	"errors"
	"fmt"
	"time"

	"github.com/hg8496/clockwords/pkg/lang"
	"github.com/hg8496/clockwords/pkg/scanner"
	"github.com/hg8496/clockwords/pkg/types"
)

// Re-exported result types so callers do not need to import pkg/types.
type (
	TimeMatch       = types.TimeMatch
	Span            = types.Span
	ResolvedTime    = types.ResolvedTime
	ResolvedKind    = types.ResolvedKind
	ExpressionKind  = types.ExpressionKind
	MatchConfidence = types.MatchConfidence
	Config          = types.Config
)

const (
	Partial  = types.Partial
	Complete = types.Complete

	RelativeDay       = types.RelativeDay
	RelativeDayOffset = types.RelativeDayOffset
	TimeSpecification = types.TimeSpecification
	TimeRange         = types.TimeRange
	Combined          = types.Combined

	ResolvedPoint = types.ResolvedPoint
	ResolvedRange = types.ResolvedRange
)

// Scanner is an immutable multi-language time expression scanner, safe for
// concurrent use.
type Scanner struct {
	inner *scanner.Scanner
}

type options struct {
	codes      []string
	config     types.Config
	additional []lang.Language
}

// Option configures scanner construction.
type Option func(*options)

// WithLanguages restricts the scanner to the given ISO 639-1 codes, in the
// given order. Unknown codes are ignored; known languages stay usable.
func WithLanguages(codes ...string) Option {
	return func(o *options) { o.codes = codes }
}

// WithPartialMatches toggles reporting of half-typed keywords.
func WithPartialMatches(enabled bool) Option {
	return func(o *options) { o.config.ReportPartial = enabled }
}

// WithMaxMatches caps the number of matches one scan returns.
func WithMaxMatches(n int) Option {
	return func(o *options) { o.config.MaxMatches = n }
}

// WithLanguage adds a caller-supplied language module alongside the
// built-ins selected by WithLanguages.
func WithLanguage(l lang.Language) Option {
	return func(o *options) { o.additional = append(o.additional, l) }
}

// NewScanner builds a scanner. With no options it enables every built-in
// language with the default configuration.
func NewScanner(opts ...Option) (*Scanner, error) {
	o := options{
		codes:  lang.Codes(),
		config: types.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.config.MaxMatches <= 0 {
		return nil, fmt.Errorf("clockwords: max matches must be positive, got %d", o.config.MaxMatches)
	}

	var languages []lang.Language
	for _, code := range o.codes {
		l, err := lang.For(code)
		if errors.Is(err, lang.ErrUnknownLanguage) {
			// Unknown codes are skipped so one bad code cannot take
			// down the languages the caller can use.
			continue
		}
		if err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}
	languages = append(languages, o.additional...)

	return &Scanner{inner: scanner.New(languages, o.config)}, nil
}

// DefaultScanner returns a scanner with all built-in languages and default
// configuration. It panics only if the embedded language data is corrupt,
// which a test catches at build time.
func DefaultScanner() *Scanner {
	s, err := NewScanner()
	if err != nil {
		panic(fmt.Sprintf("clockwords: default scanner: %v", err))
	}
	return s
}

// Scan returns every time expression found in text, resolved against now,
// ordered by span start with no two spans overlapping. Unrecognizable
// input yields an empty result, never an error.
func (s *Scanner) Scan(text string, now time.Time) []TimeMatch {
	return s.inner.Scan(text, now)
}

// Languages returns the codes of the enabled languages.
func (s *Scanner) Languages() []string {
	return s.inner.Languages()
}
