package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/kamusis/jobmatch-cli/internal/records"
	"github.com/kamusis/jobmatch-cli/internal/skills"
)

const previewRunes = 240

var inspectCmd = &cobra.Command{
	Use:   "inspect <job|resume> <number|id>",
	Short: "Show a record's text and the skills extracted from it",
	Args:  cobra.ExactArgs(2),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	kind, err := records.ParseKind(args[0])
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	r, err := s.store(kind).Lookup(args[1])
	if err != nil {
		return err
	}
	eng, _, err := s.engine(cmd)
	if err != nil {
		return err
	}
	writeInspect(cmd.OutOrStdout(), r, eng.Profile(r).Skills, s.dict)
	return nil
}

func writeInspect(w io.Writer, r records.Record, found skills.Set, dict *skills.Dictionary) {
	fmt.Fprintf(w, "Record:  %s\n", r.ID)
	fmt.Fprintf(w, "Length:  %d chars\n", utf8.RuneCountInString(r.Text))
	fmt.Fprintf(w, "Preview: %s\n", preview(r.Text, previewRunes))

	if len(found) == 0 {
		fmt.Fprintln(w, "\nSkills: none recognised")
		return
	}

	categories := make(map[string]string, dict.Len())
	for _, e := range dict.Entries() {
		categories[e.Canonical] = e.Category
	}
	var total float64
	fmt.Fprintf(w, "\nSkills (%d):\n", len(found))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range found.Sorted() {
		wt := dict.WeightOf(name)
		total += wt
		fmt.Fprintf(tw, "  %s\t%.1f\t%s\n", name, wt, emptyAs(categories[name], "-"))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\nTotal weight: %.1f\n", total)
}

func preview(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "…"
}

func emptyAs(s, alt string) string {
	if s == "" {
		return alt
	}
	return s
}
