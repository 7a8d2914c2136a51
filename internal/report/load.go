package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads a report from dir.
func Load(dir string) (*Report, error) {
	manifestPath := filepath.Join(dir, manifestFile)
	b, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest %s: %w", manifestPath, err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest JSON %s: %w", manifestPath, err)
	}
	if m.ReportVersion > Version {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrUnsupportedVersion, m.ReportVersion, Version)
	}
	if m.ResultsFile == "" {
		m.ResultsFile = defaultResultsFile
	}

	rows, err := loadRows(filepath.Join(dir, m.ResultsFile))
	if err != nil {
		return nil, err
	}
	return &Report{Manifest: m, Rows: rows}, nil
}

func loadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open results file %s: %w", path, err)
	}
	defer f.Close()

	var out []Row
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var row Row
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("invalid results JSONL %s: %w", path, err)
		}
		out = append(out, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read results file %s: %w", path, err)
	}
	return out, nil
}
