// Package skills holds the weighted skill dictionary: canonical skill names,
// their importance weights and the synonyms that resolve to them.
//
// A Dictionary is built once and never mutated afterwards, so it can be shared
// by concurrent scorers without locking.
package skills

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultWeight is returned by WeightOf for skills not in the dictionary.
const DefaultWeight = 1.0

// Dictionary maps canonical skills to weights and synonyms to canonical skills.
type Dictionary struct {
	entries  []Entry
	weights  map[string]float64
	synonyms map[string]string
	phrases  []Phrase
}

// New validates entries and builds a Dictionary from them.
func New(entries []Entry) (*Dictionary, error) {
	validate := validator.New()

	d := &Dictionary{
		entries:  make([]Entry, 0, len(entries)),
		weights:  make(map[string]float64, len(entries)),
		synonyms: make(map[string]string),
	}

	for i, e := range entries {
		e.Canonical = normalizeName(e.Canonical)
		syns := make([]string, 0, len(e.Synonyms))
		for _, s := range e.Synonyms {
			syns = append(syns, normalizeName(s))
		}
		e.Synonyms = syns

		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %v", ErrInvalidEntry, i, e.Canonical, err)
		}
		if _, dup := d.weights[e.Canonical]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSkill, e.Canonical)
		}
		d.weights[e.Canonical] = e.Weight
		d.entries = append(d.entries, e)
	}

	for _, e := range d.entries {
		for _, s := range e.Synonyms {
			if s == e.Canonical {
				continue
			}
			if _, isCanonical := d.weights[s]; isCanonical {
				return nil, fmt.Errorf("%w: synonym %q of %q is a canonical skill", ErrSynonymConflict, s, e.Canonical)
			}
			if prev, ok := d.synonyms[s]; ok && prev != e.Canonical {
				return nil, fmt.Errorf("%w: synonym %q maps to both %q and %q", ErrSynonymConflict, s, prev, e.Canonical)
			}
			d.synonyms[s] = e.Canonical
		}
	}

	sort.Slice(d.entries, func(i, j int) bool {
		return d.entries[i].Canonical < d.entries[j].Canonical
	})
	d.phrases = buildPhrases(d.entries, d.synonyms)
	return d, nil
}

// MustNew is New for static tables; it panics on invalid input.
func MustNew(entries []Entry) *Dictionary {
	d, err := New(entries)
	if err != nil {
		panic(err)
	}
	return d
}

// WeightOf returns the weight of a canonical skill, or DefaultWeight if unknown.
func (d *Dictionary) WeightOf(skill string) float64 {
	if w, ok := d.weights[skill]; ok {
		return w
	}
	return DefaultWeight
}

// Canonicalize resolves a synonym to its canonical skill. Tokens that are not
// known synonyms are returned folded and trimmed.
func (d *Dictionary) Canonicalize(token string) string {
	t := normalizeName(token)
	if c, ok := d.synonyms[t]; ok {
		return c
	}
	return t
}

// Known reports whether skill is a canonical entry.
func (d *Dictionary) Known(skill string) bool {
	_, ok := d.weights[skill]
	return ok
}

// Len returns the number of canonical skills.
func (d *Dictionary) Len() int { return len(d.entries) }

// Entries returns a copy of the entries sorted by canonical name.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Phrases returns every matchable phrase, longest first, then alphabetical.
func (d *Dictionary) Phrases() []Phrase {
	out := make([]Phrase, len(d.phrases))
	copy(out, d.phrases)
	return out
}

// Fingerprint returns a sha256 (hex) of the dictionary contents.
func (d *Dictionary) Fingerprint() string {
	var b strings.Builder
	for _, e := range d.entries {
		b.WriteString(e.Canonical)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(e.Weight, 'g', -1, 64))
		syns := append([]string(nil), e.Synonyms...)
		sort.Strings(syns)
		for _, s := range syns {
			b.WriteByte('|')
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}
	h := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(h[:])
}

func buildPhrases(entries []Entry, synonyms map[string]string) []Phrase {
	out := make([]Phrase, 0, len(entries)+len(synonyms))
	for _, e := range entries {
		out = append(out, Phrase{Text: e.Canonical, Canonical: e.Canonical})
	}
	for s, c := range synonyms {
		out = append(out, Phrase{Text: s, Canonical: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Text) == len(out[j].Text) {
			return out[i].Text < out[j].Text
		}
		return len(out[i].Text) > len(out[j].Text)
	})
	return out
}

func normalizeName(s string) string {
	return Fold(strings.TrimSpace(s))
}
