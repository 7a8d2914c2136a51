package skills

import "errors"

var (
	// ErrDuplicateSkill indicates two entries share a canonical name.
	ErrDuplicateSkill = errors.New("duplicate canonical skill")

	// ErrSynonymConflict indicates a synonym collides with another entry.
	ErrSynonymConflict = errors.New("synonym conflict")

	// ErrInvalidEntry indicates an entry failed field validation (e.g. weight <= 0).
	ErrInvalidEntry = errors.New("invalid skill entry")
)
