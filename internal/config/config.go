// Package config loads jobmatch settings from ~/.jobmatch/jobmatch.yaml and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment keys read by ApplyEnv.
const (
	EnvConfig     = "JOBMATCH_CONFIG"
	EnvJobs       = "JOBMATCH_JOBS"
	EnvResumes    = "JOBMATCH_RESUMES"
	EnvDictionary = "JOBMATCH_DICTIONARY"
	EnvTopK       = "JOBMATCH_TOP_K"
	EnvMode       = "JOBMATCH_MODE"
)

// Scoring holds the scorer mode and its weighted-mode constants.
type Scoring struct {
	Mode            string  `yaml:"mode" validate:"oneof=weighted ratio bag"`
	MissingPenalty  float64 `yaml:"missing_penalty" validate:"gte=0"`
	BonusThreshold  float64 `yaml:"bonus_threshold" validate:"gt=0,lte=1"`
	BonusMultiplier float64 `yaml:"bonus_multiplier" validate:"gt=0"`
	BonusCap        float64 `yaml:"bonus_cap" validate:"gt=0,lte=100"`
}

// Ranking controls top-K selection.
type Ranking struct {
	Strategy   string `yaml:"strategy" validate:"oneof=sort heap"`
	Workers    int    `yaml:"workers" validate:"gte=0"`
	ShowSkills bool   `yaml:"show_skills"`
}

// Bench controls `jobmatch bench`.
type Bench struct {
	Jobs      int     `yaml:"jobs" validate:"gte=0"`
	Threshold float64 `yaml:"threshold" validate:"gte=0,lte=100"`
}

// Config is the in-memory representation of ~/.jobmatch/jobmatch.yaml.
type Config struct {
	JobsPath       string  `yaml:"jobs_path" validate:"required"`
	ResumesPath    string  `yaml:"resumes_path" validate:"required"`
	DictionaryPath string  `yaml:"dictionary_path,omitempty"`
	TopK           int     `yaml:"top_k" validate:"gte=0"`
	Scoring        Scoring `yaml:"scoring"`
	Ranking        Ranking `yaml:"ranking"`
	Bench          Bench   `yaml:"bench"`
}

var validate = validator.New()

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// JobmatchDir returns the absolute path to ~/.jobmatch/.
func JobmatchDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".jobmatch"), nil
}

// ConfigPath returns the config file path: $JOBMATCH_CONFIG when set,
// otherwise ~/.jobmatch/jobmatch.yaml.
func ConfigPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return ExpandPath(p)
	}
	dir, err := JobmatchDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "jobmatch.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the settings used when no config file exists and
// written on first `jobmatch init`.
func DefaultConfig() *Config {
	return &Config{
		JobsPath:    filepath.Join("data", "job_description.csv"),
		ResumesPath: filepath.Join("data", "resume.csv"),
		TopK:        5,
		Scoring: Scoring{
			Mode:            "weighted",
			MissingPenalty:  0.3,
			BonusThreshold:  0.8,
			BonusMultiplier: 1.1,
			BonusCap:        95,
		},
		Ranking: Ranking{Strategy: "sort"},
		Bench:   Bench{Jobs: 10, Threshold: 50},
	}
}

// Load reads the config file over DefaultConfig, so keys absent from the
// file keep their defaults. A missing file yields DefaultConfig. The result
// is validated and its paths are ~-expanded.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.JobsPath, &c.ResumesPath, &c.DictionaryPath} {
		v, err := ExpandPath(*p)
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// ApplyEnv overlays JOBMATCH_* values from the process environment or
// ~/.jobmatch/.env onto c.
func (c *Config) ApplyEnv() error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvJobs, &c.JobsPath},
		{EnvResumes, &c.ResumesPath},
		{EnvDictionary, &c.DictionaryPath},
		{EnvMode, &c.Scoring.Mode},
	}
	for _, s := range strs {
		v, err := GetConfigValue(s.key)
		if err != nil {
			return err
		}
		if v != "" {
			*s.dst = v
		}
	}

	v, err := GetConfigValue(EnvTopK)
	if err != nil {
		return err
	}
	if v != "" {
		k, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTopK, v, err)
		}
		c.TopK = k
	}
	if err := c.expandPaths(); err != nil {
		return err
	}
	return c.Validate()
}

// Save marshals cfg and writes it to ConfigPath, creating the directory.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
