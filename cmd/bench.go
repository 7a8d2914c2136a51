package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamusis/jobmatch-cli/internal/match"
)

var (
	flagBenchJobs      int
	flagBenchThreshold float64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time matching for the first N jobs against every resume",
	Long: `Rank every resume for each of the first N jobs and report, per job, how
many resumes score above the threshold and how long ranking took.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchJobs, "jobs-count", 0, "Number of jobs to benchmark (default from config; 0 = all)")
	benchCmd.Flags().Float64Var(&flagBenchThreshold, "threshold", 0, "Score a resume must exceed to count (default from config)")
	benchCmd.Flags().String("mode", "", "Scoring mode: weighted, ratio or bag")
	benchCmd.Flags().String("strategy", "", "Top-K selection: sort or heap")
	benchCmd.Flags().Int("workers", 0, "Parallel scoring workers (0 = GOMAXPROCS)")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	eng, _, err := s.engine(cmd)
	if err != nil {
		return err
	}

	n := s.cfg.Bench.Jobs
	if cmd.Flags().Changed("jobs-count") {
		n = flagBenchJobs
	}
	threshold := s.cfg.Bench.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = flagBenchThreshold
	}

	jobs := s.jobs.All()
	if n > 0 {
		jobs = s.jobs.Head(n)
	}
	if len(jobs) == 0 || s.resumes.Len() == 0 {
		printSkip("", "nothing to benchmark: need at least one job and one resume")
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rep, err := eng.Bench(ctx, jobs, s.resumes.All(), threshold)
	if err != nil {
		return err
	}
	writeBench(cmd.OutOrStdout(), rep)
	return nil
}

func writeBench(w io.Writer, rep *match.BenchReport) {
	fmt.Fprintf(w, "Benchmark: %d job(s) x %d resume(s), threshold %.2f\n\n", len(rep.Jobs), rep.Resumes, rep.Threshold)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "JOB\tABOVE\tTIME")
	for _, j := range rep.Jobs {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", j.JobID, j.Above, j.Elapsed.Round(time.Microsecond))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\nTotal: %s  Average per job: %s\n", rep.Total.Round(time.Microsecond), rep.Average().Round(time.Microsecond))
}
