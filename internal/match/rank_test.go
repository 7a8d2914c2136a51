package match

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamusis/jobmatch-cli/internal/records"
	"github.com/kamusis/jobmatch-cli/internal/skills"
)

func newTestEngine(t *testing.T, opts Options, entries ...skills.Entry) *Engine {
	t.Helper()
	d := skills.Default()
	if len(entries) > 0 {
		var err error
		d, err = skills.New(entries)
		require.NoError(t, err)
	}
	e, err := NewEngine(d, opts)
	require.NoError(t, err)
	return e
}

func resumes(texts ...string) []records.Record {
	return records.NewStore(records.KindResume, texts).All()
}

func jobs(texts ...string) []records.Record {
	return records.NewStore(records.KindJob, texts).All()
}

func assertRanked(t *testing.T, results []MatchResult) {
	t.Helper()
	for i := 0; i+1 < len(results); i++ {
		a, b := results[i], results[i+1]
		require.GreaterOrEqual(t, a.Score, b.Score, "position %d", i)
		if a.Score == b.Score {
			require.Less(t, a.CandidateID, b.CandidateID, "tie at position %d", i)
		}
	}
}

func TestTopK_Scenario(t *testing.T) {
	e := newTestEngine(t, DefaultOptions(), sqlPython()...)
	job := jobs("Need sql and python skills")[0]
	cands := resumes("I know sql only", "I know sql and python")

	rk, err := e.TopK(context.Background(), job, cands, 1)
	require.NoError(t, err)
	require.Len(t, rk.Results, 1)

	best := rk.Results[0]
	assert.Equal(t, "resume_2", best.CandidateID)
	assert.Equal(t, 100.0, best.Score)
	assert.Equal(t, []string{"python", "sql"}, best.Matched)
	assert.Empty(t, best.Missing)
	assert.Equal(t, []string{"python", "sql"}, rk.AnchorSkills)
	assert.Equal(t, 2, rk.Stats.Scanned)
	assert.Equal(t, 2, rk.Stats.Positive)

	all, err := e.TopK(context.Background(), job, cands, 0)
	require.NoError(t, err)
	require.Len(t, all.Results, 2)
	partial := all.Results[1]
	assert.Equal(t, "resume_1", partial.CandidateID)
	assert.Greater(t, partial.Score, 0.0)
	assert.Less(t, partial.Score, 100.0)
	assert.Equal(t, []string{"sql"}, partial.Matched)
	assert.Equal(t, []string{"python"}, partial.Missing)
}

func TestTopK_DropsZeroScoresButCountsThem(t *testing.T) {
	e := newTestEngine(t, DefaultOptions(), sqlPython()...)
	job := jobs("sql and python")[0]
	cands := resumes("gardening", "sql and python", "cooking")

	rk, err := e.TopK(context.Background(), job, cands, 5)
	require.NoError(t, err)
	require.Len(t, rk.Results, 1)
	assert.Equal(t, "resume_2", rk.Results[0].CandidateID)
	assert.Equal(t, 3, rk.Stats.Scanned)
	assert.Equal(t, 1, rk.Stats.Positive)
}

func TestTopK_EmptyRequiredSkillSet(t *testing.T) {
	e := newTestEngine(t, DefaultOptions(), sqlPython()...)
	job := jobs("We need a cheerful person")[0]

	rk, err := e.TopK(context.Background(), job, resumes("sql", "python and sql"), 5)
	require.NoError(t, err)
	assert.Empty(t, rk.Results)
	assert.Equal(t, 2, rk.Stats.Scanned)
	assert.Equal(t, 0, rk.Stats.Positive)
}

func TestTopK_TiesBreakByID(t *testing.T) {
	e := newTestEngine(t, DefaultOptions(), sqlPython()...)
	job := jobs("sql and python")[0]

	texts := make([]string, 12)
	for i := range texts {
		texts[i] = "sql"
	}
	texts[4] = "sql and python"

	rk, err := e.TopK(context.Background(), job, resumes(texts...), 4)
	require.NoError(t, err)
	assertRanked(t, rk.Results)

	ids := make([]string, len(rk.Results))
	for i, r := range rk.Results {
		ids[i] = r.CandidateID
	}
	// ids compare byte-wise, so resume_10 sorts before resume_2.
	assert.Equal(t, []string{"resume_5", "resume_1", "resume_10", "resume_11"}, ids)
}

func TestTopK_ResumeAnchor(t *testing.T) {
	e := newTestEngine(t, DefaultOptions(), sqlPython()...)
	resume := resumes("sql and python expert")[0]
	cands := jobs("sql", "python, sql", "painting")

	rk, err := e.TopK(context.Background(), resume, cands, 5)
	require.NoError(t, err)
	require.Len(t, rk.Results, 2)
	assert.Equal(t, "job_1", rk.Results[0].CandidateID)
	assert.Equal(t, "job_2", rk.Results[1].CandidateID)
	for _, r := range rk.Results {
		assert.Equal(t, "resume_1", r.AnchorID)
		assert.Equal(t, "resume_1", r.ResumeID)
		assert.Equal(t, r.CandidateID, r.JobID)
		assert.Equal(t, 100.0, r.Score)
	}
}

func TestTopK_KindMismatch(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())
	_, err := e.TopK(context.Background(), jobs("sql")[0], jobs("a", "b"), 1)
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = e.Match(resumes("x")[0], resumes("y")[0])
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestTopK_CancelledContext(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.TopK(ctx, jobs("sql")[0], resumes("sql", "python"), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func randomCorpus(n int, seed uint64) []string {
	vocab := []string{
		"sql", "python", "excel", "tableau", "machine learning", "docker", "kubernetes",
		"agile", "scrum", "communication", "restful api", "git", "java", "aws", "pandas",
		"and", "with", "years", "team",
	}
	rng := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]string, n)
	for i := range out {
		n := 1 + rng.IntN(8)
		words := make([]string, 0, n)
		for j := 0; j < n; j++ {
			words = append(words, vocab[rng.IntN(len(vocab))])
		}
		out[i] = strings.Join(words, ", ")
	}
	return out
}

func TestTopK_StrategiesAgree(t *testing.T) {
	js := jobs(randomCorpus(5, 1)...)
	rs := resumes(randomCorpus(60, 2)...)

	for _, mode := range []Mode{ModeWeighted, ModeRatio, ModeBag} {
		sortOpts := Options{Mode: mode, Params: DefaultParams(), Strategy: StrategySort, Workers: 1}
		heapOpts := Options{Mode: mode, Params: DefaultParams(), Strategy: StrategyHeap, Workers: 8}
		sorted := newTestEngine(t, sortOpts)
		heaped := newTestEngine(t, heapOpts)

		for _, j := range js {
			for _, k := range []int{0, 1, 3, 5, 10, 100} {
				t.Run(fmt.Sprintf("%s/%s/k=%d", mode, j.ID, k), func(t *testing.T) {
					a, err := sorted.TopK(context.Background(), j, rs, k)
					require.NoError(t, err)
					b, err := heaped.TopK(context.Background(), j, rs, k)
					require.NoError(t, err)
					assert.Equal(t, a.Results, b.Results)
					assert.Equal(t, a.Stats.Positive, b.Stats.Positive)
					assertRanked(t, a.Results)
					if k > 0 {
						assert.LessOrEqual(t, len(a.Results), k)
					}
				})
			}
		}
	}
}

func TestTopK_Idempotent(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())
	j := jobs(randomCorpus(1, 3)...)[0]
	rs := resumes(randomCorpus(40, 4)...)

	a, err := e.TopK(context.Background(), j, rs, 5)
	require.NoError(t, err)
	b, err := e.TopK(context.Background(), j, rs, 5)
	require.NoError(t, err)
	assert.Equal(t, a.Results, b.Results)
	assert.Equal(t, len(rs)+1, e.cache.len())
}

func TestMatchAll(t *testing.T) {
	e := newTestEngine(t, DefaultOptions(), sqlPython()...)
	js := jobs("sql", "python", "nothing relevant")
	rs := resumes("sql", "python", "sql and python")

	out, err := e.MatchAll(context.Background(), js, rs, 2)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "job_1", out[0].Anchor.ID)
	assert.Equal(t, []string{"resume_1", "resume_3"}, []string{out[0].Results[0].CandidateID, out[0].Results[1].CandidateID})
	assert.Empty(t, out[2].Results)
}

func TestBench(t *testing.T) {
	e := newTestEngine(t, DefaultOptions(), sqlPython()...)
	js := jobs("sql and python", "sql")
	rs := resumes("sql", "python", "sql and python", "nothing")

	rep, err := e.Bench(context.Background(), js, rs, 50)
	require.NoError(t, err)
	require.Len(t, rep.Jobs, 2)
	assert.Equal(t, 4, rep.Resumes)
	assert.Equal(t, 1, rep.Jobs[0].Above)
	assert.Equal(t, 2, rep.Jobs[1].Above)
	assert.Equal(t, rep.Total/2, rep.Average())
}

func TestNewEngine_Validation(t *testing.T) {
	_, err := NewEngine(skills.Default(), Options{Mode: ModeWeighted, Params: DefaultParams(), Strategy: "bubble"})
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = NewEngine(skills.Default(), Options{Mode: ModeWeighted, Params: DefaultParams(), Workers: -1})
	assert.Error(t, err)
}
