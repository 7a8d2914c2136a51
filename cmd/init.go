package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamusis/jobmatch-cli/internal/config"
	"github.com/kamusis/jobmatch-cli/internal/skills"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.jobmatch with a default config, .env template and skill dictionary",
	Long: `Initialize ~/.jobmatch/.

Writes jobmatch.yaml (or the file named by JOBMATCH_CONFIG), a .env template
and skills.yaml holding the built-in dictionary. Existing files are left
untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var flagInitNoDictionary bool

func init() {
	initCmd.Flags().BoolVar(&flagInitNoDictionary, "no-dictionary", false, "Do not write skills.yaml; keep using the built-in table")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	// ── 1. Resolve ~/.jobmatch ────────────────────────────────────────────────
	dir, err := config.JobmatchDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("jobmatch directory ready: %s", dir))

	// ── 2. Dictionary ─────────────────────────────────────────────────────────
	dictPath := ""
	if !flagInitNoDictionary {
		dictPath = filepath.Join(dir, "skills.yaml")
		if _, err := os.Stat(dictPath); os.IsNotExist(err) {
			if err := skills.Save(dictPath, skills.Default()); err != nil {
				return err
			}
			printOK("", fmt.Sprintf("Dictionary written: %s (%d skills)", dictPath, skills.Default().Len()))
		} else {
			printSkip("", fmt.Sprintf("Dictionary already exists: %s", dictPath))
		}
	}

	// ── 3. Config ─────────────────────────────────────────────────────────────
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		cfg.DictionaryPath = dictPath
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 4. .env template ──────────────────────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	envPath, _ := config.DotEnvPath()
	printOK("", fmt.Sprintf(".env ready: %s", envPath))

	// ── 5. Validate the result ────────────────────────────────────────────────
	if _, err := config.Load(); err != nil {
		return err
	}

	fmt.Println("\n✓  jobmatch init complete. Run 'jobmatch doctor' to check your inputs.")
	return nil
}
