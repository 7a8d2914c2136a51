package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvPath returns the absolute path to the dotenv file (~/.jobmatch/.env).
func DotEnvPath() (string, error) {
	dir, err := JobmatchDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// LoadDotEnv reads ~/.jobmatch/.env and returns key/value pairs. A missing
// file yields an empty map.
func LoadDotEnv() (map[string]string, error) {
	p, err := DotEnvPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	m, err := godotenv.Read(p)
	if err != nil {
		return nil, fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return m, nil
}

// GetConfigValue returns the effective value for key, using process environment variables
// first and falling back to ~/.jobmatch/.env.
func GetConfigValue(key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	dotenv, err := LoadDotEnv()
	if err != nil {
		return "", err
	}
	return dotenv[key], nil
}

// EnsureDotEnvTemplate creates ~/.jobmatch/.env with empty JOBMATCH_* keys
// if it does not already exist.
func EnsureDotEnvTemplate() error {
	p, err := DotEnvPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat dotenv file %s: %w", p, err)
	}

	body := "" +
		"# Values here apply when the variable is unset in the environment.\n" +
		EnvJobs + "=\n" +
		EnvResumes + "=\n" +
		EnvDictionary + "=\n" +
		EnvTopK + "=\n" +
		EnvMode + "=\n"

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		return fmt.Errorf("cannot write dotenv template %s: %w", p, err)
	}
	return nil
}
