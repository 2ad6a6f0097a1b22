package lang

import "strconv"

// Number lexicon: written number words per language, covering the surface
// forms the grammars accept (1-30). Unrecognized words decline.

var numbersEN = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20, "thirty": 30,
}

var numbersDE = map[string]int{
	"ein": 1, "eins": 1, "eine": 1, "einem": 1, "einen": 1,
	"zwei": 2, "drei": 3, "vier": 4,
	"fünf": 5, "fuenf": 5, "funf": 5,
	"sechs": 6, "sieben": 7, "acht": 8, "neun": 9, "zehn": 10,
	"elf": 11, "zwölf": 12, "zwoelf": 12,
	"dreizehn": 13, "vierzehn": 14, "fünfzehn": 15, "fuenfzehn": 15,
	"sechzehn": 16, "siebzehn": 17, "achtzehn": 18, "neunzehn": 19,
	"zwanzig": 20, "dreißig": 30, "dreissig": 30,
}

var numbersFR = map[string]int{
	"un": 1, "une": 1, "deux": 2, "trois": 3, "quatre": 4, "cinq": 5,
	"six": 6, "sept": 7, "huit": 8, "neuf": 9, "dix": 10,
	"onze": 11, "douze": 12, "treize": 13, "quatorze": 14,
	"quinze": 15, "seize": 16, "vingt": 20, "trente": 30,
}

var numbersES = map[string]int{
	"un": 1, "uno": 1, "una": 1, "dos": 2, "tres": 3, "cuatro": 4,
	"cinco": 5, "seis": 6, "siete": 7, "ocho": 8, "nueve": 9,
	"diez": 10, "once": 11, "doce": 12, "trece": 13, "catorce": 14,
	"quince": 15, "veinte": 20, "treinta": 30,
}

// parseNumber resolves a digit string or number word against the given
// table. Input is expected lowercased by the caller's pattern ((?i) rules
// capture original case, so callers lowercase first).
func parseNumber(table map[string]int, s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	n, ok := table[s]
	return n, ok
}

// NumberWord resolves a number word for the given language code. Exposed
// so external language modules can share the built-in tables.
func NumberWord(code, word string) (int, bool) {
	switch code {
	case "en":
		n, ok := numbersEN[word]
		return n, ok
	case "de":
		n, ok := numbersDE[word]
		return n, ok
	case "fr":
		n, ok := numbersFR[word]
		return n, ok
	case "es":
		n, ok := numbersES[word]
		return n, ok
	default:
		return 0, false
	}
}
