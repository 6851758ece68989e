package ports

import "errors"

// Store-level errors. Adapters wrap these so services can match them with
// errors.Is regardless of the persistence technology.
var (
	ErrRowNotFound     = errors.New("row not found")
	ErrUniqueViolation = errors.New("unique constraint violation")
)
