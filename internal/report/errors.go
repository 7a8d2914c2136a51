package report

import "errors"

var (
	// ErrLocked indicates another process is writing the same report directory.
	ErrLocked = errors.New("report directory is locked")

	// ErrUnsupportedVersion indicates a manifest written by a newer format.
	ErrUnsupportedVersion = errors.New("unsupported report version")
)
