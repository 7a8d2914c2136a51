package match

import (
	"context"
	"time"

	"github.com/kamusis/jobmatch-cli/internal/records"
)

// BenchJob is the timing of one job in a benchmark run.
type BenchJob struct {
	JobID   string
	Above   int
	Elapsed time.Duration
}

// BenchReport summarises a benchmark run.
type BenchReport struct {
	Threshold float64
	Resumes   int
	Jobs      []BenchJob
	Total     time.Duration
}

// Average returns the mean per-job time.
func (r *BenchReport) Average() time.Duration {
	if len(r.Jobs) == 0 {
		return 0
	}
	return r.Total / time.Duration(len(r.Jobs))
}

// Bench ranks every resume for each job and counts candidates scoring above
// threshold. Profiles are cached across jobs, so later jobs measure scoring
// and selection only.
func (e *Engine) Bench(ctx context.Context, jobs, resumes []records.Record, threshold float64) (*BenchReport, error) {
	rep := &BenchReport{Threshold: threshold, Resumes: len(resumes)}
	for _, j := range jobs {
		rk, err := e.TopK(ctx, j, resumes, 0)
		if err != nil {
			return nil, err
		}
		above := 0
		for _, r := range rk.Results {
			if r.Score > threshold {
				above++
			}
		}
		rep.Jobs = append(rep.Jobs, BenchJob{JobID: j.ID, Above: above, Elapsed: rk.Stats.Elapsed})
		rep.Total += rk.Stats.Elapsed
	}
	return rep, nil
}
