package match

import (
	"fmt"
	"math"

	"github.com/kamusis/jobmatch-cli/internal/extract"
	"github.com/kamusis/jobmatch-cli/internal/skills"
)

// Mode selects the scoring formula.
type Mode string

const (
	// ModeWeighted is weighted overlap with a missing-skill penalty, a
	// near-complete bonus capped below 100, and 100 only for perfect matches.
	ModeWeighted Mode = "weighted"
	// ModeRatio is matched required weight over total required weight.
	ModeRatio Mode = "ratio"
	// ModeBag is weighted word-frequency overlap between the two texts.
	ModeBag Mode = "bag"
)

// ParseMode parses a scoring mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeWeighted, ModeRatio, ModeBag:
		return Mode(s), nil
	case "":
		return ModeWeighted, nil
	default:
		return "", fmt.Errorf("%w: %q (want weighted, ratio or bag)", ErrUnknownMode, s)
	}
}

// Params tunes the weighted mode.
type Params struct {
	// MissingPenalty is the fraction of a missing skill's weight subtracted
	// from the matched weight.
	MissingPenalty float64
	// BonusThreshold is the matched/required count ratio that earns the bonus.
	BonusThreshold float64
	// BonusMultiplier scales the base score once the threshold is reached.
	BonusMultiplier float64
	// BonusCap bounds a bonused, non-perfect score.
	BonusCap float64
}

// DefaultParams returns the standard weighted-mode constants.
func DefaultParams() Params {
	return Params{
		MissingPenalty:  0.3,
		BonusThreshold:  0.8,
		BonusMultiplier: 1.1,
		BonusCap:        95,
	}
}

func (p Params) validate() error {
	switch {
	case p.MissingPenalty < 0 || math.IsNaN(p.MissingPenalty):
		return fmt.Errorf("%w: missing penalty %v < 0", ErrInvalidParams, p.MissingPenalty)
	case !(p.BonusThreshold > 0 && p.BonusThreshold <= 1):
		return fmt.Errorf("%w: bonus threshold %v not in (0,1]", ErrInvalidParams, p.BonusThreshold)
	case !(p.BonusMultiplier > 0):
		return fmt.Errorf("%w: bonus multiplier %v <= 0", ErrInvalidParams, p.BonusMultiplier)
	case !(p.BonusCap > 0 && p.BonusCap <= MaxScore):
		return fmt.Errorf("%w: bonus cap %v not in (0,100]", ErrInvalidParams, p.BonusCap)
	}
	return nil
}

// MaxScore is the top of the score scale.
const MaxScore = 100.0

// Scorer computes job/resume match scores on a 0–100 scale. It holds no
// mutable state.
type Scorer struct {
	dict   *skills.Dictionary
	mode   Mode
	params Params
}

// NewScorer returns a Scorer for mode with params.
func NewScorer(dict *skills.Dictionary, mode Mode, params Params) (*Scorer, error) {
	if dict == nil {
		return nil, fmt.Errorf("dictionary is nil")
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = ModeWeighted
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Scorer{dict: dict, mode: mode, params: params}, nil
}

// Mode returns the scoring mode.
func (s *Scorer) Mode() Mode { return s.mode }

// Score scores resume against job using the configured mode.
func (s *Scorer) Score(job, resume *Profile) float64 {
	switch s.mode {
	case ModeRatio:
		return s.Ratio(job.Skills, resume.Skills)
	case ModeBag:
		return s.Bag(job.Bag, resume.Bag)
	default:
		return s.Weighted(job.Skills, resume.Skills)
	}
}

// Weighted scores candidate against the required skills.
//
// Missing skills subtract MissingPenalty × weight. At or above BonusThreshold
// of the required count the clamped base is multiplied by BonusMultiplier and
// capped at BonusCap. Exactly 100 is reserved for a candidate holding every
// required skill. An empty requirement scores 0.
func (s *Scorer) Weighted(required, candidate skills.Set) float64 {
	if len(required) == 0 {
		return 0
	}
	names := required.Sorted()

	var maxWeight float64
	for _, n := range names {
		maxWeight += s.dict.WeightOf(n)
	}
	if maxWeight == 0 {
		return 0
	}

	var matchedWeight float64
	matched := 0
	for _, n := range names {
		w := s.dict.WeightOf(n)
		if candidate.Has(n) {
			matchedWeight += w
			matched++
		} else {
			matchedWeight -= s.params.MissingPenalty * w
		}
	}

	if matched == len(names) {
		return MaxScore
	}

	base := clamp(matchedWeight/maxWeight*100, 0, MaxScore)
	if float64(matched)/float64(len(names)) >= s.params.BonusThreshold {
		base = math.Min(base*s.params.BonusMultiplier, s.params.BonusCap)
	}
	return base
}

// Ratio is the plain matched-weight over required-weight percentage.
func (s *Scorer) Ratio(required, candidate skills.Set) float64 {
	if len(required) == 0 {
		return 0
	}
	var maxWeight, matchedWeight float64
	for _, n := range required.Sorted() {
		w := s.dict.WeightOf(n)
		maxWeight += w
		if candidate.Has(n) {
			matchedWeight += w
		}
	}
	if maxWeight == 0 {
		return 0
	}
	return clamp(matchedWeight/maxWeight*100, 0, MaxScore)
}

// Bag compares word counts: every distinct job word contributes
// jobCount × weight to the maximum and resumeCount × weight when the resume
// uses it. Repeating a word in the resume cannot push the score past 100.
func (s *Scorer) Bag(job, resume extract.Bag) float64 {
	if len(job) == 0 {
		return 0
	}
	var maxScore, total float64
	for _, w := range sortedWords(job) {
		weight := s.dict.WeightOf(w)
		maxScore += float64(job[w]) * weight
		if rc := resume[w]; rc > 0 {
			total += float64(rc) * weight
		}
	}
	if maxScore == 0 {
		return 0
	}
	return clamp(total/maxScore*100, 0, MaxScore)
}

func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
