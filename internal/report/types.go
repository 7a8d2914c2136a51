// Package report exports rankings to a directory and reads them back.
//
// A report directory holds report_manifest.json, describing the run that
// produced it, and results.jsonl with one ranked row per line.
package report

import "github.com/kamusis/jobmatch-cli/internal/match"

// Version is the current on-disk report format.
const Version = 1

const (
	manifestFile       = "report_manifest.json"
	defaultResultsFile = "results.jsonl"
	lockFile           = ".report.lock"
)

// Manifest describes a ranking run and how to interpret its results file.
type Manifest struct {
	ReportVersion  int     `json:"report_version"`
	RunID          string  `json:"run_id"`
	CreatedAt      string  `json:"created_at"`
	Mode           string  `json:"mode"`
	Strategy       string  `json:"strategy"`
	TopK           int     `json:"top_k"`
	Dictionary     string  `json:"dictionary_fingerprint"`
	DictionarySize int     `json:"dictionary_size"`
	Inputs         []Input `json:"inputs"`
	Anchors        int     `json:"anchors"`
	ResultsFile    string  `json:"results_file"`
}

// Input records which file a record set came from and a hash of its texts.
type Input struct {
	Kind     string `json:"kind"`
	Path     string `json:"path"`
	Records  int    `json:"records"`
	TextHash string `json:"text_hash"`
}

// Row is one ranked candidate in results.jsonl.
type Row struct {
	Rank int `json:"rank"`
	match.MatchResult
}

// Report is a loaded or about-to-be-written report.
type Report struct {
	Manifest Manifest
	Rows     []Row
}

// Group is the rows of one anchor, in rank order.
type Group struct {
	AnchorID string
	Rows     []Row
}

// Groups splits the rows by anchor, preserving first-seen anchor order.
func (r *Report) Groups() []Group {
	var out []Group
	pos := make(map[string]int)
	for _, row := range r.Rows {
		i, ok := pos[row.AnchorID]
		if !ok {
			i = len(out)
			pos[row.AnchorID] = i
			out = append(out, Group{AnchorID: row.AnchorID})
		}
		out[i].Rows = append(out[i].Rows, row)
	}
	return out
}
