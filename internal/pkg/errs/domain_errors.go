package errs

import "errors"

// Error taxonomy shared by every layer. Concrete sentinels are created with
// Kinded so callers only ever branch on these kinds.
var (
	// malformed or out-of-range input
	ErrValidation = errors.New("validation error")
	// unknown vehicle or rental identifier
	ErrNotFound = errors.New("not found")
	// overlapping rental, duplicate unique key, vehicle still in use
	ErrConflict = errors.New("conflict")
	// lifecycle precondition violated
	ErrInvalidTransition = errors.New("invalid transition")
	// concurrent write detected by the storage layer; retryable
	ErrStorageConflict = errors.New("storage conflict")
	ErrForbidden       = errors.New("forbidden")
)

// IsRetryable reports whether the caller may retry the same request unchanged.
func IsRetryable(err error) bool {
	return Is(err, ErrStorageConflict)
}
