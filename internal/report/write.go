package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Write writes the report artifacts to dir, creating it if needed. An
// advisory lock on dir/.report.lock keeps concurrent writers apart.
func Write(dir string, r *Report) error {
	m := r.Manifest
	if m.ReportVersion == 0 {
		m.ReportVersion = Version
	}
	if m.ResultsFile == "" {
		m.ResultsFile = defaultResultsFile
	}
	if m.CreatedAt == "" {
		m.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create report dir %s: %w", dir, err)
	}

	lockPath := filepath.Join(dir, lockFile)
	l := flock.New(lockPath)
	locked, err := l.TryLock()
	if err != nil {
		return fmt.Errorf("cannot acquire report lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("%w (lock: %s)", ErrLocked, lockPath)
	}
	defer func() { _ = l.Unlock() }()

	if err := writeRows(filepath.Join(dir, m.ResultsFile), r.Rows); err != nil {
		return err
	}

	// manifest last, so a readable manifest implies complete results
	mb, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFile), mb, 0o644); err != nil {
		return fmt.Errorf("cannot write manifest: %w", err)
	}
	return nil
}

func writeRows(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create results file: %w", err)
	}
	bw := bufio.NewWriter(f)
	for _, row := range rows {
		line, err := json.Marshal(row)
		if err != nil {
			_ = f.Close()
			return err
		}
		if _, err := bw.Write(line); err != nil {
			_ = f.Close()
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
