package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kamusis/jobmatch-cli/internal/config"
	"github.com/kamusis/jobmatch-cli/internal/match"
	"github.com/kamusis/jobmatch-cli/internal/records"
	"github.com/kamusis/jobmatch-cli/internal/skills"
)

// session is everything a matching command needs, resolved once from
// config, environment and flags.
type session struct {
	cfg     *config.Config
	dict    *skills.Dictionary
	jobs    *records.Store
	resumes *records.Store
}

// loadConfig returns the effective config: file, then JOBMATCH_* variables,
// then the root persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w\nFix the file or run 'jobmatch init'.", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	overrides := []struct {
		flag string
		dst  *string
	}{
		{flagJobsPath, &cfg.JobsPath},
		{flagResumesPath, &cfg.ResumesPath},
		{flagDictionaryPath, &cfg.DictionaryPath},
	}
	for _, o := range overrides {
		if o.flag == "" {
			continue
		}
		p, err := config.ExpandPath(o.flag)
		if err != nil {
			return nil, err
		}
		*o.dst = p
	}
	return cfg, nil
}

// loadDictionary returns the YAML dictionary at path, or the built-in table
// when path is empty.
func loadDictionary(path string) (*skills.Dictionary, error) {
	if path == "" {
		return skills.Default(), nil
	}
	d, err := skills.LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded skill dictionary", slog.String("path", path), slog.Int("skills", d.Len()))
	return d, nil
}

// loadStore loads one record file. An unavailable file is reported and
// yields an empty store so the command can continue.
func loadStore(path string, kind records.Kind) (*records.Store, error) {
	s, err := records.Load(path, kind)
	if errors.Is(err, records.ErrInputUnavailable) {
		printWarn(string(kind), fmt.Sprintf("%v (continuing with no %ss)", err, kind))
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded records", slog.String("kind", string(kind)), slog.String("path", path), slog.Int("count", s.Len()))
	return s, nil
}

func newSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dict, err := loadDictionary(cfg.DictionaryPath)
	if err != nil {
		return nil, err
	}
	jobs, err := loadStore(cfg.JobsPath, records.KindJob)
	if err != nil {
		return nil, err
	}
	resumes, err := loadStore(cfg.ResumesPath, records.KindResume)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, dict: dict, jobs: jobs, resumes: resumes}, nil
}

// store returns the records of kind.
func (s *session) store(kind records.Kind) *records.Store {
	if kind == records.KindJob {
		return s.jobs
	}
	return s.resumes
}

// counterpart returns the store a record of kind is ranked against.
func (s *session) counterpart(kind records.Kind) *records.Store {
	if kind == records.KindJob {
		return s.resumes
	}
	return s.jobs
}

// engineOptions maps config onto engine options, letting any changed
// --mode/--strategy/--workers flag on cmd win.
func (s *session) engineOptions(cmd *cobra.Command) (match.Options, error) {
	sc := s.cfg.Scoring
	modeName, strategyName, workers := sc.Mode, s.cfg.Ranking.Strategy, s.cfg.Ranking.Workers
	if f := cmd.Flags().Lookup("mode"); f != nil && f.Changed {
		modeName = f.Value.String()
	}
	if f := cmd.Flags().Lookup("strategy"); f != nil && f.Changed {
		strategyName = f.Value.String()
	}
	if cmd.Flags().Changed("workers") {
		w, err := cmd.Flags().GetInt("workers")
		if err != nil {
			return match.Options{}, err
		}
		workers = w
	}

	mode, err := match.ParseMode(modeName)
	if err != nil {
		return match.Options{}, err
	}
	strategy, err := match.ParseStrategy(strategyName)
	if err != nil {
		return match.Options{}, err
	}
	return match.Options{
		Mode: mode,
		Params: match.Params{
			MissingPenalty:  sc.MissingPenalty,
			BonusThreshold:  sc.BonusThreshold,
			BonusMultiplier: sc.BonusMultiplier,
			BonusCap:        sc.BonusCap,
		},
		Strategy: strategy,
		Workers:  workers,
	}, nil
}

func (s *session) engine(cmd *cobra.Command) (*match.Engine, match.Options, error) {
	opts, err := s.engineOptions(cmd)
	if err != nil {
		return nil, opts, err
	}
	e, err := match.NewEngine(s.dict, opts)
	if err != nil {
		return nil, opts, err
	}
	return e, opts, nil
}
