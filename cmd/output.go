package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kamusis/jobmatch-cli/internal/match"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Status lines share one icon vocabulary across commands.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr)
//   ⚠  warning
//   ○  skipped / not applicable
//   -  not found / missing
//   ~  neutral info / stats

// printSection prints a top-level section header, e.g. "=== jobmatch doctor ===".
func printSection(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

// printBullet prints a grouped-section bullet, e.g. "● Summary".
func printBullet(title string) {
	fmt.Printf("\n● %s\n", title)
}

// printOK prints a success line.
//
//	name = "" → "  ✓  msg"
//	name set  → "  ✓  [name] msg"
func printOK(name, msg string) {
	if name == "" {
		fmt.Printf("  ✓  %s\n", msg)
	} else {
		fmt.Printf("  ✓  [%s] %s\n", name, msg)
	}
}

// printErr prints an error line to stderr.
func printErr(name, msg string) {
	if name == "" {
		fmt.Fprintf(os.Stderr, "  ✗  %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "  ✗  [%s] %s\n", name, msg)
	}
}

// printWarn prints a warning line.
func printWarn(name, msg string) {
	if name == "" {
		fmt.Printf("  ⚠  %s\n", msg)
	} else {
		fmt.Printf("  ⚠  [%s] %s\n", name, msg)
	}
}

// printSkip prints a skipped / not-applicable line.
func printSkip(name, msg string) {
	if name == "" {
		fmt.Printf("  ○  %s\n", msg)
	} else {
		fmt.Printf("  ○  [%s] %s\n", name, msg)
	}
}

// printMiss prints a not-found / missing line.
func printMiss(name, msg string) {
	if name == "" {
		fmt.Printf("  -  %s\n", msg)
	} else {
		fmt.Printf("  -  [%s] %s\n", name, msg)
	}
}

// printInfo prints a neutral informational line.
func printInfo(name, msg string) {
	if name == "" {
		fmt.Printf("  ~  %s\n", msg)
	} else {
		fmt.Printf("  ~  [%s] %s\n", name, msg)
	}
}

// writeResults prints ranked rows as "rank. id | score", optionally followed
// by the matched and missing skill lists.
func writeResults(w io.Writer, results []match.MatchResult, showSkills bool) {
	if len(results) == 0 {
		fmt.Fprintln(w, "  -  no candidate scored above zero")
		return
	}
	for i, r := range results {
		fmt.Fprintf(w, "  %d. %s | %.2f\n", i+1, r.CandidateID, r.Score)
		if showSkills {
			fmt.Fprintf(w, "     matched: %s\n", joinOrDash(r.Matched))
			fmt.Fprintf(w, "     missing: %s\n", joinOrDash(r.Missing))
		}
	}
}

func joinOrDash(xs []string) string {
	if len(xs) == 0 {
		return "-"
	}
	return strings.Join(xs, ", ")
}
