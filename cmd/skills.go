package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamusis/jobmatch-cli/internal/skills"
)

var (
	flagSkillsCategory string
	flagSkillsWrite    string
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skill dictionary with weights, categories and synonyms",
	Long: `List the active skill dictionary: the YAML file from config or
--dictionary, otherwise the built-in table.

Use --write to save the active dictionary as YAML, ready for editing.`,
	Args: cobra.NoArgs,
	RunE: runSkills,
}

func init() {
	skillsCmd.Flags().StringVar(&flagSkillsCategory, "category", "", "Only list skills in this category")
	skillsCmd.Flags().StringVar(&flagSkillsWrite, "write", "", "Write the active dictionary to this YAML file")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dict, err := loadDictionary(cfg.DictionaryPath)
	if err != nil {
		return err
	}
	if flagSkillsWrite != "" {
		if err := skills.Save(flagSkillsWrite, dict); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Dictionary written: %s (%d skills)", flagSkillsWrite, dict.Len()))
		return nil
	}
	writeSkills(cmd.OutOrStdout(), dict, flagSkillsCategory)
	return nil
}

// writeSkills prints entries grouped by category, heaviest first within a
// category.
func writeSkills(w io.Writer, dict *skills.Dictionary, category string) {
	groups := make(map[string][]skills.Entry)
	for _, e := range dict.Entries() {
		c := emptyAs(e.Category, "other")
		if category != "" && !strings.EqualFold(c, category) {
			continue
		}
		groups[c] = append(groups[c], e)
	}
	if len(groups) == 0 {
		fmt.Fprintf(w, "No skills in category %q.\n", category)
		return
	}

	names := make([]string, 0, len(groups))
	for c := range groups {
		names = append(names, c)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range names {
		entries := groups[c]
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Weight == entries[j].Weight {
				return entries[i].Canonical < entries[j].Canonical
			}
			return entries[i].Weight > entries[j].Weight
		})
		fmt.Fprintf(tw, "[%s]\t\t\n", c)
		for _, e := range entries {
			fmt.Fprintf(tw, "  %s\t%.1f\t%s\n", e.Canonical, e.Weight, strings.Join(e.Synonyms, ", "))
		}
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\n%d skills, fingerprint %s\n", dict.Len(), shortHash(dict.Fingerprint()))
}
