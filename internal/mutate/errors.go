package mutate

import "errors"

// Refusals are ordinary errors: the caller notifies the user and the state
// stays untouched. Out-of-range indices are NOT errors; those operations
// report Changed=false and do nothing.
var (
	ErrEmptyTitle  = errors.New("title is required")
	ErrEmptyText   = errors.New("text is required")
	ErrProjectCap  = errors.New("active project cap reached; pause one to the incubator first")
	ErrInvalidMode = errors.New("invalid focus mode (create|build|manage|care)")
)
