package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/kamusis/jobmatch-cli/internal/match"
	"github.com/kamusis/jobmatch-cli/internal/skills"
)

// Meta is the run information recorded alongside the rankings.
type Meta struct {
	Mode     match.Mode
	Strategy match.Strategy
	TopK     int
	Dict     *skills.Dictionary
	Inputs   []Input
}

// Build flattens rankings into a report with a fresh run id.
func Build(rankings []*match.Ranking, meta Meta) *Report {
	m := Manifest{
		ReportVersion: Version,
		RunID:         uuid.NewString(),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Mode:          string(meta.Mode),
		Strategy:      string(meta.Strategy),
		TopK:          meta.TopK,
		Inputs:        meta.Inputs,
		Anchors:       len(rankings),
		ResultsFile:   defaultResultsFile,
	}
	if meta.Dict != nil {
		m.Dictionary = meta.Dict.Fingerprint()
		m.DictionarySize = meta.Dict.Len()
	}

	var rows []Row
	for _, rk := range rankings {
		for i, res := range rk.Results {
			rows = append(rows, Row{Rank: i + 1, MatchResult: res})
		}
	}
	return &Report{Manifest: m, Rows: rows}
}
