package records

import "errors"

var (
	// ErrInputUnavailable indicates a record file is missing or unreadable.
	// Loaders return it together with an empty, usable store.
	ErrInputUnavailable = errors.New("input unavailable")

	// ErrInvalidIndex indicates a record reference outside the loaded range.
	ErrInvalidIndex = errors.New("invalid record index")
)
