// Package extract turns free text into the canonical skills it mentions.
package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kamusis/jobmatch-cli/internal/skills"
)

// Extractor finds dictionary skills in text. It is safe for concurrent use.
type Extractor struct {
	dict    *skills.Dictionary
	phrases []skills.Phrase
}

// New returns an Extractor over dict.
func New(dict *skills.Dictionary) *Extractor {
	return &Extractor{dict: dict, phrases: dict.Phrases()}
}

// Dictionary returns the dictionary the extractor matches against.
func (e *Extractor) Dictionary() *skills.Dictionary { return e.dict }

// Extract returns the distinct canonical skills found in text. A phrase only
// counts when it is not glued to a letter on either side, so "ai" is found in
// "skilled in ai" but not in "wait".
func (e *Extractor) Extract(text string) skills.Set {
	out := skills.Set{}
	if strings.TrimSpace(text) == "" {
		return out
	}
	lower := Normalize(text)
	for _, p := range e.phrases {
		if out.Has(p.Canonical) {
			continue
		}
		if ContainsPhrase(lower, p.Text) {
			out.Add(p.Canonical)
		}
	}
	return out
}

// Normalize folds text for matching: accents are stripped and the result is
// lowercased, exactly as dictionary phrases are.
func Normalize(text string) string {
	return skills.Fold(text)
}

// ContainsPhrase reports whether phrase occurs in text with no letter
// immediately before or after it. Every occurrence is tried.
func ContainsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	from := 0
	for from <= len(text)-len(phrase) {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(phrase)
		if !letterBefore(text, start) && !letterAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}
	return false
}

func letterBefore(text string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return unicode.IsLetter(r)
}

func letterAfter(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsLetter(r)
}
