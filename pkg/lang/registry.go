package lang

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownLanguage is returned by For when the code names no built-in
// language.
var ErrUnknownLanguage = errors.New("unknown language")

var builders = map[string]func() (Language, error){
	"en": English,
	"de": German,
	"fr": French,
	"es": Spanish,
}

// Codes returns the supported language codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(builders))
	for code := range builders {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// For builds the language module for the given ISO 639-1 code.
func For(code string) (Language, error) {
	build, ok := builders[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return build()
}

// All builds every supported language module, ordered by code.
func All() ([]Language, error) {
	langs := make([]Language, 0, len(builders))
	for _, code := range Codes() {
		l, err := For(code)
		if err != nil {
			return nil, fmt.Errorf("building language %s: %w", code, err)
		}
		langs = append(langs, l)
	}
	return langs, nil
}
