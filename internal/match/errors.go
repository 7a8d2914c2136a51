package match

import "errors"

var (
	// ErrUnknownMode indicates an unsupported scoring mode name.
	ErrUnknownMode = errors.New("unknown scoring mode")

	// ErrUnknownStrategy indicates an unsupported top-K selection strategy.
	ErrUnknownStrategy = errors.New("unknown selection strategy")

	// ErrInvalidParams indicates out-of-range weighted-mode parameters.
	ErrInvalidParams = errors.New("invalid scoring parameters")

	// ErrKindMismatch indicates an anchor matched against records of its own kind.
	ErrKindMismatch = errors.New("anchor and candidate have the same kind")
)
