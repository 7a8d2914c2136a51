package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamusis/jobmatch-cli/internal/match"
	"github.com/kamusis/jobmatch-cli/internal/records"
	"github.com/kamusis/jobmatch-cli/internal/skills"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	dict, err := skills.New([]skills.Entry{
		{Canonical: "sql", Weight: 10},
		{Canonical: "python", Weight: 9},
	})
	require.NoError(t, err)
	eng, err := match.NewEngine(dict, match.DefaultOptions())
	require.NoError(t, err)
	jobs := records.NewStore(records.KindJob, []string{"sql and python", "python"})
	resumes := records.NewStore(records.KindResume, []string{"sql only", "sql and python", "python"})

	rks, err := eng.MatchAll(context.Background(), jobs.All(), resumes.All(), 2)
	require.NoError(t, err)
	return Build(rks, Meta{
		Mode:     match.ModeWeighted,
		Strategy: match.StrategySort,
		TopK:     2,
		Dict:     dict,
		Inputs:   []Input{InputOf(jobs), InputOf(resumes)},
	})
}

func TestBuild(t *testing.T) {
	r := sampleReport(t)
	m := r.Manifest

	_, err := uuid.Parse(m.RunID)
	require.NoError(t, err, "run id %q", m.RunID)
	assert.Equal(t, 2, m.Anchors)
	assert.Equal(t, 2, m.TopK)
	assert.Equal(t, 2, m.DictionarySize)
	assert.Len(t, m.Dictionary, 64)

	require.Len(t, r.Rows, 4)
	first := r.Rows[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, "job_1", first.AnchorID)
	assert.Equal(t, "resume_2", first.CandidateID)
	assert.Equal(t, 100.0, first.Score)

	groups := r.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "job_1", groups[0].AnchorID)
	assert.Equal(t, "job_2", groups[1].AnchorID)
	// job_2 wants python: resume_2 and resume_3 both score 100, id breaks the tie
	require.Len(t, groups[1].Rows, 2)
	assert.Equal(t, "resume_2", groups[1].Rows[0].CandidateID)
	assert.Equal(t, "resume_3", groups[1].Rows[1].CandidateID)
}

func TestWriteLoad_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := sampleReport(t)

	require.NoError(t, Write(dir, r))
	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, r.Manifest, got.Manifest)
	assert.Equal(t, r.Rows, got.Rows)
}

func TestWrite_Locked(t *testing.T) {
	dir := t.TempDir()
	l := flock.New(filepath.Join(dir, lockFile))
	locked, err := l.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer func() { _ = l.Unlock() }()

	err = Write(dir, sampleReport(t))
	assert.ErrorIs(t, err, ErrLocked)
	_, err = os.Stat(filepath.Join(dir, manifestFile))
	assert.True(t, os.IsNotExist(err), "manifest written despite lock")
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	assert.Error(t, err, "missing manifest")

	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestFile), []byte(`{"report_version": 99}`), 0o644))
	_, err = Load(dir)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestFile), []byte(`{"report_version": 1}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultResultsFile), []byte("{not json}\n"), 0o644))
	_, err = Load(dir)
	assert.Error(t, err, "invalid JSONL")
}

func TestStoreHash(t *testing.T) {
	a := records.NewStore(records.KindJob, []string{"x", "y"})
	b := records.NewStore(records.KindJob, []string{"x", "y"})
	c := records.NewStore(records.KindJob, []string{"xy"})

	assert.Equal(t, StoreHash(a), StoreHash(b))
	assert.NotEqual(t, StoreHash(a), StoreHash(c), "line boundaries are part of the hash")
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", TextHash(""))
}
