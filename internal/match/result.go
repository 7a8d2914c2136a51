package match

import (
	"sort"
	"time"

	"github.com/kamusis/jobmatch-cli/internal/records"
)

// MatchResult is the score of one candidate against one anchor.
type MatchResult struct {
	AnchorID    string   `json:"anchor_id"`
	CandidateID string   `json:"candidate_id"`
	JobID       string   `json:"job_id"`
	ResumeID    string   `json:"resume_id"`
	Score       float64  `json:"score"`
	Matched     []string `json:"matched_skills"`
	Missing     []string `json:"missing_skills"`
}

// Stats summarises one ranking pass.
type Stats struct {
	Scanned  int           `json:"scanned"`
	Positive int           `json:"positive"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Ranking is the top-K answer for one anchor.
type Ranking struct {
	Anchor       records.Record `json:"-"`
	AnchorSkills []string       `json:"anchor_skills"`
	Results      []MatchResult  `json:"results"`
	Stats        Stats          `json:"stats"`
}

// SortResults sorts results by score (descending), then by candidate ID (ascending).
func SortResults(results []MatchResult) {
	sort.Slice(results, func(i, j int) bool {
		return ranksBefore(results[i], results[j])
	})
}

func ranksBefore(a, b MatchResult) bool {
	if a.Score == b.Score {
		return a.CandidateID < b.CandidateID
	}
	return a.Score > b.Score
}
