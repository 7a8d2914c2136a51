package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamusis/jobmatch-cli/internal/match"
	"github.com/kamusis/jobmatch-cli/internal/report"
)

var flagReportSkills bool

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Show a report written by 'jobmatch match --out'",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagReportSkills, "skills", false, "Show matched and missing skills")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	rep, err := report.Load(args[0])
	if err != nil {
		return err
	}
	writeReport(cmd.OutOrStdout(), rep, flagReportSkills)
	return nil
}

func writeReport(w io.Writer, rep *report.Report, showSkills bool) {
	m := rep.Manifest
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Run:\t%s\n", m.RunID)
	fmt.Fprintf(tw, "Created:\t%s\n", m.CreatedAt)
	fmt.Fprintf(tw, "Mode:\t%s (%s)\n", m.Mode, m.Strategy)
	fmt.Fprintf(tw, "Top K:\t%d\n", m.TopK)
	fmt.Fprintf(tw, "Dictionary:\t%d skills, %s\n", m.DictionarySize, shortHash(m.Dictionary))
	for _, in := range m.Inputs {
		fmt.Fprintf(tw, "Input:\t%s %s (%d records, %s)\n", in.Kind, emptyAs(in.Path, "-"), in.Records, shortHash(in.TextHash))
	}
	_ = tw.Flush()

	for _, g := range rep.Groups() {
		fmt.Fprintf(w, "\n%s\n", g.AnchorID)
		results := make([]match.MatchResult, len(g.Rows))
		for i, row := range g.Rows {
			results[i] = row.MatchResult
		}
		writeResults(w, results, showSkills)
	}
	if len(rep.Rows) == 0 {
		fmt.Fprintf(w, "\n%d anchor(s), no ranked rows\n", m.Anchors)
	}
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return emptyAs(h, "-")
}
