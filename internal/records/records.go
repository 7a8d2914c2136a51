// Package records loads job postings and resumes from line-oriented files.
//
// Each file has one header line followed by one free-text description per
// line. Records get sequential ids (job_1, job_2, … / resume_1, …) in file
// order; blank lines are skipped and do not consume an id.
package records

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Kind distinguishes job postings from resumes.
type Kind string

const (
	KindJob    Kind = "job"
	KindResume Kind = "resume"
)

// ParseKind parses "job"/"jobs" or "resume"/"resumes".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "job", "jobs":
		return KindJob, nil
	case "resume", "resumes", "cv":
		return KindResume, nil
	default:
		return "", fmt.Errorf("unknown record kind %q (want job or resume)", s)
	}
}

// Record is one job posting or resume.
type Record struct {
	ID   string
	Kind Kind
	Text string
}

// Store is an ordered, read-only collection of records of one kind.
type Store struct {
	Kind    Kind
	Path    string
	records []Record
	byID    map[string]int
}

// NewStore builds a store from descriptions, assigning ids in order.
func NewStore(kind Kind, texts []string) *Store {
	s := &Store{Kind: kind, byID: make(map[string]int, len(texts))}
	for _, t := range texts {
		s.append(t)
	}
	return s
}

func (s *Store) append(text string) {
	id := string(s.Kind) + "_" + strconv.Itoa(len(s.records)+1)
	s.byID[id] = len(s.records)
	s.records = append(s.records, Record{ID: id, Kind: s.Kind, Text: text})
}

// Load reads records of kind from path. If the file cannot be opened or read
// the returned store is empty (never nil) and the error wraps
// ErrInputUnavailable.
func Load(path string, kind Kind) (*Store, error) {
	empty := NewStore(kind, nil)
	empty.Path = path

	f, err := os.Open(path)
	if err != nil {
		return empty, fmt.Errorf("%w: cannot open %s: %w", ErrInputUnavailable, path, err)
	}
	defer f.Close()

	texts, err := Parse(f)
	if err != nil {
		return empty, fmt.Errorf("%w: cannot read %s: %w", ErrInputUnavailable, path, err)
	}
	s := NewStore(kind, texts)
	s.Path = path
	return s, nil
}

// Parse reads descriptions from r: the first line is a header and is
// skipped, blank lines are dropped, surrounding whitespace is trimmed and a
// line wrapped in double quotes is unwrapped. Commas are ordinary text.
func Parse(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var out []string
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}
		line := cleanLine(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func cleanLine(line string) string {
	line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		line = strings.ReplaceAll(line[1:len(line)-1], `""`, `"`)
		line = strings.TrimSpace(line)
	}
	return line
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// All returns the records in load order.
func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// At returns the record at 1-based position n.
func (s *Store) At(n int) (Record, error) {
	if n < 1 || n > len(s.records) {
		return Record{}, fmt.Errorf("%w: %s %d (have %d)", ErrInvalidIndex, s.Kind, n, len(s.records))
	}
	return s.records[n-1], nil
}

// ByID returns the record with the given id.
func (s *Store) ByID(id string) (Record, error) {
	i, ok := s.byID[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: no %s with id %q", ErrInvalidIndex, s.Kind, id)
	}
	return s.records[i], nil
}

// Lookup resolves ref as either a 1-based position ("3") or an id ("job_3").
func (s *Store) Lookup(ref string) (Record, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		return s.At(n)
	}
	return s.ByID(ref)
}

// Head returns at most the first n records.
func (s *Store) Head(n int) []Record {
	if n < 0 || n > len(s.records) {
		n = len(s.records)
	}
	out := make([]Record, n)
	copy(out, s.records[:n])
	return out
}
