package extract

import (
	"strings"
	"unicode"
)

// Bag counts words in a text. Keys are lowercase letter-only words, with
// single-word synonyms resolved to their canonical skill.
type Bag map[string]int

// Bag builds the word-frequency view of text used by the bag scoring mode.
func (e *Extractor) Bag(text string) Bag {
	out := Bag{}
	words := strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		out[e.dict.Canonicalize(w)]++
	}
	return out
}
