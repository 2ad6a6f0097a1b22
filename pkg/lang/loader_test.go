package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLexicon_EmbeddedLanguages(t *testing.T) {
	for _, code := range Codes() {
		lex, err := loadLexicon(code)
		require.NoError(t, err, "lexicon %s", code)
		assert.Equal(t, code, lex.Code)
		assert.NotEmpty(t, lex.Keywords)
		assert.NotEmpty(t, lex.Prefixes)
	}
}

func TestLoadLexicon_MissingFile(t *testing.T) {
	_, err := loadLexicon("xx")
	assert.Error(t, err)
}

func TestLexiconValidate_CodeMismatch(t *testing.T) {
	lex := &lexicon{Code: "en", Keywords: []string{"today"}}

	err := lex.validate("de")
	assert.ErrorContains(t, err, "code mismatch")
}

func TestLexiconValidate_NoKeywords(t *testing.T) {
	lex := &lexicon{Code: "en"}

	err := lex.validate("en")
	assert.ErrorContains(t, err, "no keywords")
}

func TestLexiconValidate_ShortPrefix(t *testing.T) {
	lex := &lexicon{Code: "en", Keywords: []string{"today"}, Prefixes: []string{"to"}}

	err := lex.validate("en")
	assert.ErrorContains(t, err, "shorter")
}

func TestLexiconValidate_MultibytePrefixCountsRunes(t *testing.T) {
	// "mié" is three runes even though it is four bytes.
	lex := &lexicon{Code: "es", Keywords: []string{"miércoles"}, Prefixes: []string{"mié"}}

	assert.NoError(t, lex.validate("es"))
}
