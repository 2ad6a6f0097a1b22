// Package prefilter gates the scan pipeline with an Aho-Corasick automaton
// built from the enabled languages' keywords. A negative answer means the
// text cannot contain any recognizable expression and the scan
// short-circuits without running a single grammar rule.
package prefilter

import (
	"strings"
	"unsafe"

	"github.com/cloudflare/ahocorasick"
)

// Prefilter answers "does this text contain any candidate keyword" in time
// linear in the text length, independent of the keyword-set size. A false
// positive only costs wasted rule evaluation; a false negative would be a
// correctness bug, so keywords must cover every trigger word the grammars
// rely on (including explicit unaccented spellings).
type Prefilter struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// New builds a prefilter from the given keywords. Entries are folded to
// lower case; duplicates are dropped. An empty keyword set yields a
// prefilter that rejects everything.
func New(keywords []string) *Prefilter {
	pf := &Prefilter{}

	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		folded := strings.ToLower(kw)
		if folded == "" || seen[folded] {
			continue
		}
		seen[folded] = true
		pf.keywords = append(pf.keywords, folded)
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// Contains reports whether any keyword occurs in text, ignoring ASCII case.
// Accented keywords match byte-exactly; their unaccented variants are
// separate keyword entries supplied by the language modules.
//
// Safe for concurrent use: the automaton walk is read-only, so one
// Prefilter can gate scans from many goroutines at once.
func (pf *Prefilter) Contains(text string) bool {
	if pf.matcher == nil || text == "" {
		return false
	}
	return pf.matcher.Contains(foldASCII(text))
}

// Size returns the number of distinct keywords loaded.
func (pf *Prefilter) Size() int {
	return len(pf.keywords)
}

// foldASCII lowercases ASCII letters byte-wise, preserving length so byte
// offsets into the folded text remain valid for the original. When the text
// has no uppercase ASCII the returned slice aliases the input string and
// must not be written to; only then does a copy happen.
func foldASCII(text string) []byte {
	upper := -1
	for i := 0; i < len(text); i++ {
		if text[i] >= 'A' && text[i] <= 'Z' {
			upper = i
			break
		}
	}
	if upper < 0 {
		if len(text) == 0 {
			return nil
		}
		return unsafe.Slice(unsafe.StringData(text), len(text))
	}

	folded := []byte(text)
	for i := upper; i < len(folded); i++ {
		if folded[i] >= 'A' && folded[i] <= 'Z' {
			folded[i] += 'a' - 'A'
		}
	}
	return folded
}
