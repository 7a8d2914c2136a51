package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/jobmatch-cli/internal/config"
	"github.com/kamusis/jobmatch-cli/internal/extract"
	"github.com/kamusis/jobmatch-cli/internal/records"
	"github.com/kamusis/jobmatch-cli/internal/skills"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run pre-flight checks on config, dictionary and input files",
	Long: `Check that the config parses, the skill dictionary is valid and both input
files load. Run this command when rankings look wrong or empty.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("jobmatch doctor")
	fmt.Println()

	// ── Check 1: config file ──────────────────────────────────────────────────
	fmt.Println("[ Config ]")
	cfgPath, err := config.ConfigPath()
	if err != nil {
		failD("cannot resolve config path: %v", err)
	} else if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		printMiss("", fmt.Sprintf("%s not found — using defaults (run 'jobmatch init' to create it)", cfgPath))
	} else {
		printOK("", fmt.Sprintf("found: %s", cfgPath))
	}
	cfg, loadErr := loadConfig()
	if loadErr != nil {
		failD("%v", loadErr)
		fmt.Println()
		return fmt.Errorf("doctor found problems")
	}
	printOK("", fmt.Sprintf("valid — mode %s, strategy %s, top_k %d", cfg.Scoring.Mode, cfg.Ranking.Strategy, cfg.TopK))
	fmt.Println()

	// ── Check 2: dictionary ───────────────────────────────────────────────────
	fmt.Println("[ Skill dictionary ]")
	dict, err := loadDictionary(cfg.DictionaryPath)
	switch {
	case err != nil:
		failD("%v", err)
	case cfg.DictionaryPath == "":
		printOK("", fmt.Sprintf("built-in table — %d skills", dict.Len()))
	default:
		printOK("", fmt.Sprintf("%s — %d skills", cfg.DictionaryPath, dict.Len()))
	}
	if dict != nil {
		printInfo("", fmt.Sprintf("fingerprint %s", shortHash(dict.Fingerprint())))
	}
	fmt.Println()

	// ── Check 3 & 4: input files ──────────────────────────────────────────────
	for _, in := range []struct {
		path string
		kind records.Kind
	}{
		{cfg.JobsPath, records.KindJob},
		{cfg.ResumesPath, records.KindResume},
	} {
		fmt.Printf("[ %ss ]\n", in.kind)
		s, err := records.Load(in.path, in.kind)
		switch {
		case err != nil:
			failD("%v", err)
		case s.Len() == 0:
			printWarn("", fmt.Sprintf("%s has no %ss after the header", in.path, in.kind))
		default:
			printOK("", fmt.Sprintf("%s — %d %ss", in.path, s.Len(), in.kind))
			if dict != nil {
				checkCoverage(s, dict)
			}
		}
		fmt.Println()
	}

	printBullet("Summary")
	if !allOK {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("✓  All checks passed.")
	return nil
}

// checkCoverage warns about records in which no dictionary skill is found;
// such jobs rank nothing and such resumes score zero everywhere.
func checkCoverage(s *records.Store, dict *skills.Dictionary) {
	ext := extract.New(dict)
	var empty []string
	for _, r := range s.All() {
		if len(ext.Extract(r.Text)) == 0 {
			empty = append(empty, r.ID)
		}
	}
	if len(empty) == 0 {
		printOK("", "every record mentions at least one known skill")
		return
	}
	shown := empty
	if len(shown) > 5 {
		shown = shown[:5]
	}
	printWarn("", fmt.Sprintf("%d record(s) with no known skill, e.g. %s", len(empty), joinOrDash(shown)))
}
