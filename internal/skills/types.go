package skills

import "sort"

// Entry is one skill row of the dictionary.
type Entry struct {
	Canonical string   `yaml:"canonical" json:"canonical" validate:"required"`
	Weight    float64  `yaml:"weight" json:"weight" validate:"gt=0"`
	Category  string   `yaml:"category,omitempty" json:"category,omitempty"`
	Synonyms  []string `yaml:"synonyms,omitempty" json:"synonyms,omitempty" validate:"dive,required"`
}

// Phrase is a matchable string and the canonical skill it resolves to.
type Phrase struct {
	Text      string
	Canonical string
}

// Set is a set of canonical skill names.
type Set map[string]struct{}

// NewSet returns a set holding names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Sorted returns the members in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same names.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}
