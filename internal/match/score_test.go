package match

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamusis/jobmatch-cli/internal/extract"
	"github.com/kamusis/jobmatch-cli/internal/skills"
)

func newTestScorer(t *testing.T, mode Mode, entries ...skills.Entry) *Scorer {
	t.Helper()
	d, err := skills.New(entries)
	require.NoError(t, err)
	s, err := NewScorer(d, mode, DefaultParams())
	require.NoError(t, err)
	return s
}

func sqlPython() []skills.Entry {
	return []skills.Entry{
		{Canonical: "sql", Weight: 10},
		{Canonical: "python", Weight: 9},
	}
}

func TestWeighted_Scenario(t *testing.T) {
	s := newTestScorer(t, ModeWeighted, sqlPython()...)
	required := skills.NewSet("sql", "python")

	assert.Equal(t, 100.0, s.Weighted(required, skills.NewSet("sql", "python")))

	partial := s.Weighted(required, skills.NewSet("sql"))
	assert.InDelta(t, (10-0.3*9)/19.0*100, partial, 1e-9)
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 100.0)
}

func TestWeighted_Rules(t *testing.T) {
	five := []skills.Entry{
		{Canonical: "a", Weight: 1}, {Canonical: "b", Weight: 1}, {Canonical: "c", Weight: 1},
		{Canonical: "d", Weight: 1}, {Canonical: "e", Weight: 1},
	}
	skewed := []skills.Entry{
		{Canonical: "a", Weight: 10}, {Canonical: "b", Weight: 10}, {Canonical: "c", Weight: 10},
		{Canonical: "d", Weight: 10}, {Canonical: "e", Weight: 0.1},
	}

	tests := []struct {
		name      string
		entries   []skills.Entry
		required  skills.Set
		candidate skills.Set
		want      float64
	}{
		{
			name:      "empty requirement scores zero",
			entries:   five,
			required:  skills.NewSet(),
			candidate: skills.NewSet("a", "b"),
			want:      0,
		},
		{
			name:      "empty candidate clamps at zero",
			entries:   five,
			required:  skills.NewSet("a", "b"),
			candidate: skills.NewSet(),
			want:      0,
		},
		{
			name:      "penalty can drive score to zero",
			entries:   []skills.Entry{{Canonical: "a", Weight: 1}, {Canonical: "b", Weight: 10}},
			required:  skills.NewSet("a", "b"),
			candidate: skills.NewSet("a"),
			want:      0,
		},
		{
			name:      "below bonus threshold",
			entries:   five,
			required:  skills.NewSet("a", "b", "c", "d", "e"),
			candidate: skills.NewSet("a", "b", "c"),
			want:      (3 - 0.6) / 5 * 100,
		},
		{
			name:      "bonus at eighty percent",
			entries:   five,
			required:  skills.NewSet("a", "b", "c", "d", "e"),
			candidate: skills.NewSet("a", "b", "c", "d"),
			want:      (4 - 0.3) / 5 * 100 * 1.1,
		},
		{
			name:      "bonus capped below perfect",
			entries:   skewed,
			required:  skills.NewSet("a", "b", "c", "d", "e"),
			candidate: skills.NewSet("a", "b", "c", "d"),
			want:      95,
		},
		{
			name:      "perfect match overrides cap",
			entries:   skewed,
			required:  skills.NewSet("a", "b", "c", "d", "e"),
			candidate: skills.NewSet("a", "b", "c", "d", "e", "x"),
			want:      100,
		},
		{
			name:      "unknown skills weigh one",
			entries:   five,
			required:  skills.NewSet("zzz", "a"),
			candidate: skills.NewSet("zzz", "a"),
			want:      100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScorer(t, ModeWeighted, tt.entries...)
			assert.InDelta(t, tt.want, s.Weighted(tt.required, tt.candidate), 1e-9)
		})
	}
}

func TestRatio(t *testing.T) {
	s := newTestScorer(t, ModeRatio, sqlPython()...)
	required := skills.NewSet("sql", "python")

	assert.Equal(t, 0.0, s.Ratio(skills.NewSet(), skills.NewSet("sql")))
	assert.InDelta(t, 10/19.0*100, s.Ratio(required, skills.NewSet("sql")), 1e-9)
	assert.Equal(t, 100.0, s.Ratio(required, skills.NewSet("sql", "python", "go")))
	assert.Equal(t, 0.0, s.Ratio(required, skills.NewSet()))
}

func TestBag(t *testing.T) {
	s := newTestScorer(t, ModeBag, skills.Entry{Canonical: "sql", Weight: 10})

	job := extract.Bag{"sql": 1, "need": 1}
	assert.Equal(t, 0.0, s.Bag(extract.Bag{}, extract.Bag{"sql": 1}))
	assert.InDelta(t, 1/11.0*100, s.Bag(job, extract.Bag{"need": 1}), 1e-9)
	assert.Equal(t, 100.0, s.Bag(job, extract.Bag{"sql": 3}), "repeats are clamped")
	assert.Equal(t, 0.0, s.Bag(job, extract.Bag{"other": 4}))
}

func TestScore_BoundsProperty(t *testing.T) {
	d := skills.Default()
	names := make([]string, 0, d.Len())
	for _, e := range d.Entries() {
		names = append(names, e.Canonical)
	}
	rng := rand.New(rand.NewPCG(7, 11))
	pick := func() skills.Set {
		s := skills.NewSet()
		for _, n := range names {
			if rng.IntN(4) == 0 {
				s.Add(n)
			}
		}
		return s
	}

	for _, mode := range []Mode{ModeWeighted, ModeRatio} {
		s, err := NewScorer(d, mode, DefaultParams())
		require.NoError(t, err)
		for i := 0; i < 500; i++ {
			req, cand := pick(), pick()
			got := s.Score(&Profile{Skills: req}, &Profile{Skills: cand})
			require.GreaterOrEqual(t, got, 0.0)
			require.LessOrEqual(t, got, 100.0)

			if len(req) > 0 {
				superset := skills.NewSet(cand.Sorted()...)
				for n := range req {
					superset.Add(n)
				}
				require.Equal(t, 100.0, s.Score(&Profile{Skills: req}, &Profile{Skills: superset}))
			}
		}
	}
}

func TestNewScorer_Validation(t *testing.T) {
	d := skills.Default()

	_, err := NewScorer(d, "cosine", DefaultParams())
	assert.True(t, errors.Is(err, ErrUnknownMode))

	bad := DefaultParams()
	bad.MissingPenalty = -0.1
	_, err = NewScorer(d, ModeWeighted, bad)
	assert.ErrorIs(t, err, ErrInvalidParams)

	bad = DefaultParams()
	bad.BonusThreshold = 1.5
	_, err = NewScorer(d, ModeWeighted, bad)
	assert.ErrorIs(t, err, ErrInvalidParams)

	bad = DefaultParams()
	bad.BonusCap = 120
	_, err = NewScorer(d, ModeWeighted, bad)
	assert.ErrorIs(t, err, ErrInvalidParams)

	s, err := NewScorer(d, "", DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, ModeWeighted, s.Mode())
}
