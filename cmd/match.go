package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/jobmatch-cli/internal/match"
	"github.com/kamusis/jobmatch-cli/internal/records"
	"github.com/kamusis/jobmatch-cli/internal/report"
)

var (
	flagMatchK        int
	flagMatchMode     string
	flagMatchStrategy string
	flagMatchWorkers  int
	flagMatchSkills   bool
	flagMatchAll      bool
	flagMatchOut      string
)

var matchCmd = &cobra.Command{
	Use:   "match [job|resume] [number|id]",
	Short: "Rank the best candidates for a job or the best jobs for a resume",
	Long: `Score every record of the other kind against one anchor and print the
top K with a positive score, best first. Ties are broken by id.

  jobmatch match job 3            best resumes for the third job
  jobmatch match resume resume_2  best jobs for resume_2
  jobmatch match --all -k 3       best resumes for every job`,
	Args: cobra.MaximumNArgs(2),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().IntVarP(&flagMatchK, "k", "k", 0, "Number of results per anchor (default from config; 0 = no limit)")
	matchCmd.Flags().StringVar(&flagMatchMode, "mode", "", "Scoring mode: weighted, ratio or bag")
	matchCmd.Flags().StringVar(&flagMatchStrategy, "strategy", "", "Top-K selection: sort or heap")
	matchCmd.Flags().IntVar(&flagMatchWorkers, "workers", 0, "Parallel scoring workers (0 = GOMAXPROCS)")
	matchCmd.Flags().BoolVar(&flagMatchSkills, "skills", false, "Show matched and missing skills")
	matchCmd.Flags().BoolVar(&flagMatchAll, "all", false, "Rank resumes for every job")
	matchCmd.Flags().StringVar(&flagMatchOut, "out", "", "Also write a report to this directory")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if !flagMatchAll && len(args) != 2 {
		return fmt.Errorf("expected <job|resume> <number|id>, or --all")
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	eng, opts, err := s.engine(cmd)
	if err != nil {
		return err
	}
	k := s.cfg.TopK
	if cmd.Flags().Changed("k") {
		k = flagMatchK
	}
	showSkills := s.cfg.Ranking.ShowSkills || flagMatchSkills

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var rankings []*match.Ranking
	if flagMatchAll {
		rankings, err = eng.MatchAll(ctx, s.jobs.All(), s.resumes.All(), k)
		if err != nil {
			return err
		}
	} else {
		kind, err := records.ParseKind(args[0])
		if err != nil {
			return err
		}
		anchor, err := s.store(kind).Lookup(args[1])
		if err != nil {
			return err
		}
		rk, err := eng.TopK(ctx, anchor, s.counterpart(kind).All(), k)
		if err != nil {
			return err
		}
		rankings = []*match.Ranking{rk}
	}

	out := cmd.OutOrStdout()
	for _, rk := range rankings {
		writeRanking(out, rk, k, showSkills)
	}
	if flagMatchAll {
		writeTotals(out, rankings)
	}

	if flagMatchOut == "" {
		return nil
	}
	rep := report.Build(rankings, report.Meta{
		Mode:     opts.Mode,
		Strategy: opts.Strategy,
		TopK:     k,
		Dict:     s.dict,
		Inputs:   []report.Input{report.InputOf(s.jobs), report.InputOf(s.resumes)},
	})
	if err := report.Write(flagMatchOut, rep); err != nil {
		return err
	}
	printOK("", fmt.Sprintf("Report written: %s (run %s)", flagMatchOut, rep.Manifest.RunID))
	return nil
}

func writeRanking(w io.Writer, rk *match.Ranking, k int, showSkills bool) {
	other := "resumes"
	if rk.Anchor.Kind == records.KindResume {
		other = "jobs"
	}
	limit := "all"
	if k > 0 {
		limit = fmt.Sprintf("top %d", k)
	}
	fmt.Fprintf(w, "\n%s (%s %s)\n", rk.Anchor.ID, limit, other)
	if showSkills {
		fmt.Fprintf(w, "  skills: %s\n", joinOrDash(rk.AnchorSkills))
	}
	writeResults(w, rk.Results, showSkills)
	fmt.Fprintf(w, "  ~  scanned %d, matched %d in %s\n", rk.Stats.Scanned, rk.Stats.Positive, rk.Stats.Elapsed)
}

func writeTotals(w io.Writer, rankings []*match.Ranking) {
	var scanned, positive int
	for _, rk := range rankings {
		scanned += rk.Stats.Scanned
		positive += rk.Stats.Positive
	}
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("─", 40))
	fmt.Fprintf(w, "Anchors: %d  Pairs scored: %d  Positive: %d\n", len(rankings), scanned, positive)
}
