package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJobsPath       string
	flagResumesPath    string
	flagDictionaryPath string
	flagDebug          bool
)

var rootCmd = &cobra.Command{
	Use:          "jobmatch",
	Short:        "jobmatch — rank resumes against job postings by weighted skills",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `jobmatch extracts skills from job postings and resumes, scores every
pair with a weighted skill overlap and prints the best candidates.

Inputs are two line-oriented files (one header line, one description per
line). Paths come from ~/.jobmatch/jobmatch.yaml, JOBMATCH_* variables or
the flags below, in increasing order of precedence.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging(flagDebug)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagJobsPath, "jobs", "", "Job descriptions file (overrides config)")
	pf.StringVar(&flagResumesPath, "resumes", "", "Resumes file (overrides config)")
	pf.StringVar(&flagDictionaryPath, "dictionary", "", "YAML skill dictionary (default: built-in table)")
	pf.BoolVar(&flagDebug, "debug", false, "Print debug logs to stderr")
}

// setupLogging installs the process-wide slog handler. Diagnostics go to
// stderr; command output stays on stdout.
func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
