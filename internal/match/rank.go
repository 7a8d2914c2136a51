// Package match scores resumes against jobs and ranks the best candidates
// for an anchor record.
package match

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kamusis/jobmatch-cli/internal/extract"
	"github.com/kamusis/jobmatch-cli/internal/records"
	"github.com/kamusis/jobmatch-cli/internal/skills"
)

// Strategy selects how the top-K is retained.
type Strategy string

const (
	// StrategySort scores everything, sorts, then truncates.
	StrategySort Strategy = "sort"
	// StrategyHeap streams results through a bounded heap of size K.
	StrategyHeap Strategy = "heap"
)

// ParseStrategy parses a selection strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySort, StrategyHeap:
		return Strategy(s), nil
	case "":
		return StrategySort, nil
	default:
		return "", fmt.Errorf("%w: %q (want sort or heap)", ErrUnknownStrategy, s)
	}
}

// Options configures an Engine.
type Options struct {
	Mode     Mode
	Params   Params
	Strategy Strategy
	// Workers bounds concurrent candidate scoring; 0 means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns weighted scoring, sort selection and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{Mode: ModeWeighted, Params: DefaultParams(), Strategy: StrategySort}
}

// Engine ranks candidates for anchors. It caches record profiles and is safe
// for concurrent use.
type Engine struct {
	dict     *skills.Dictionary
	ext      *extract.Extractor
	scorer   *Scorer
	strategy Strategy
	workers  int
	cache    *profileCache
}

// NewEngine builds an Engine over dict.
func NewEngine(dict *skills.Dictionary, opts Options) (*Engine, error) {
	scorer, err := NewScorer(dict, opts.Mode, opts.Params)
	if err != nil {
		return nil, err
	}
	strategy, err := ParseStrategy(string(opts.Strategy))
	if err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers < 0 {
		return nil, fmt.Errorf("workers must be >= 0, got %d", workers)
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	ext := extract.New(dict)
	return &Engine{
		dict:     dict,
		ext:      ext,
		scorer:   scorer,
		strategy: strategy,
		workers:  workers,
		cache:    newProfileCache(ext, scorer.Mode() == ModeBag),
	}, nil
}

// Dictionary returns the engine's dictionary.
func (e *Engine) Dictionary() *skills.Dictionary { return e.dict }

// Scorer returns the engine's scorer.
func (e *Engine) Scorer() *Scorer { return e.scorer }

// Profile returns the cached profile of r.
func (e *Engine) Profile(r records.Record) *Profile {
	return e.cache.get(r)
}

// Match scores a single anchor/candidate pair.
func (e *Engine) Match(anchor, candidate records.Record) (MatchResult, error) {
	if anchor.Kind == candidate.Kind {
		return MatchResult{}, fmt.Errorf("%w: %s vs %s", ErrKindMismatch, anchor.ID, candidate.ID)
	}
	return e.result(e.Profile(anchor), e.Profile(candidate)), nil
}

func (e *Engine) result(anchor, candidate *Profile) MatchResult {
	job, resume := anchor, candidate
	if anchor.Record.Kind == records.KindResume {
		job, resume = candidate, anchor
	}

	matched := make([]string, 0, len(job.Skills))
	missing := make([]string, 0, len(job.Skills))
	for _, s := range job.Skills.Sorted() {
		if resume.Skills.Has(s) {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	return MatchResult{
		AnchorID:    anchor.Record.ID,
		CandidateID: candidate.Record.ID,
		JobID:       job.Record.ID,
		ResumeID:    resume.Record.ID,
		Score:       e.scorer.Score(job, resume),
		Matched:     matched,
		Missing:     missing,
	}
}

// TopK scores every candidate against anchor and returns the k best with a
// positive score, ordered by score (descending) then candidate id. k <= 0
// returns every positive result. Zero scores are counted in Stats but never
// ranked.
func (e *Engine) TopK(ctx context.Context, anchor records.Record, candidates []records.Record, k int) (*Ranking, error) {
	for _, c := range candidates {
		if c.Kind == anchor.Kind {
			return nil, fmt.Errorf("%w: %s vs %s", ErrKindMismatch, anchor.ID, c.ID)
		}
	}

	start := time.Now()
	ap := e.Profile(anchor)
	scored := make([]MatchResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scored[i] = e.result(ap, e.Profile(c))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cannot rank %s: %w", anchor.ID, err)
	}

	positive := 0
	for _, r := range scored {
		if r.Score > 0 {
			positive++
		}
	}

	var results []MatchResult
	if e.strategy == StrategyHeap {
		results = selectHeap(scored, k)
	} else {
		results = selectSort(scored, k)
	}

	rk := &Ranking{
		Anchor:       anchor,
		AnchorSkills: ap.Skills.Sorted(),
		Results:      results,
		Stats: Stats{
			Scanned:  len(candidates),
			Positive: positive,
			Elapsed:  time.Since(start),
		},
	}
	slog.Debug("ranked candidates",
		slog.String("anchor", anchor.ID),
		slog.Int("scanned", rk.Stats.Scanned),
		slog.Int("positive", rk.Stats.Positive),
		slog.Int("returned", len(results)),
		slog.Duration("elapsed", rk.Stats.Elapsed),
	)
	return rk, nil
}

// MatchAll ranks resumes for every job, in job order.
func (e *Engine) MatchAll(ctx context.Context, jobs, resumes []records.Record, k int) ([]*Ranking, error) {
	out := make([]*Ranking, 0, len(jobs))
	for _, j := range jobs {
		rk, err := e.TopK(ctx, j, resumes, k)
		if err != nil {
			return nil, err
		}
		out = append(out, rk)
	}
	return out, nil
}
