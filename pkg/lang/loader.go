package lang

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// minPrefixRunes is the shortest typing prefix a language may declare.
// Shorter entries would make the prefix automaton fire on ordinary one- and
// two-letter words.
const minPrefixRunes = 3

// lexicon is the data half of a language module: the trigger words for the
// keyword prefilter and the typing prefixes for partial detection.
type lexicon struct {
	Code     string   `yaml:"code"`
	Keywords []string `yaml:"keywords"`
	Prefixes []string `yaml:"prefixes"`
}

// loadLexicon reads and validates the embedded lexicon for a language code.
func loadLexicon(code string) (*lexicon, error) {
	data, err := lexiconFS.ReadFile("data/" + code + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("reading lexicon for %q: %w", code, err)
	}

	var lex lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parsing lexicon for %q: %w", code, err)
	}

	if err := lex.validate(code); err != nil {
		return nil, err
	}
	return &lex, nil
}

func (l *lexicon) validate(code string) error {
	if l.Code != code {
		return fmt.Errorf("lexicon code mismatch: file says %q, expected %q", l.Code, code)
	}
	if len(l.Keywords) == 0 {
		return fmt.Errorf("lexicon %q declares no keywords", code)
	}
	for _, p := range l.Prefixes {
		if utf8.RuneCountInString(p) < minPrefixRunes {
			return fmt.Errorf("lexicon %q: prefix %q shorter than %d runes", code, p, minPrefixRunes)
		}
	}
	return nil
}
