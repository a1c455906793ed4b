// Package errs holds the sentinel errors shared by every layer of the
// timeline. Call sites wrap them with fmt.Errorf("%w: ...") and callers
// match with errors.Is.
package errs

import "errors"

var (
	// ErrConfiguration marks malformed static input: empty plans,
	// non-monotonic breakpoints, mismatched range lengths.
	ErrConfiguration = errors.New("configuration error")

	// ErrOutOfRange marks a negative frame index.
	ErrOutOfRange = errors.New("frame out of range")

	ErrDuplicateID = errors.New("duplicate composition id")
	ErrNotFound    = errors.New("composition not found")

	// ErrSealed is returned when the registry is mutated after Seal.
	ErrSealed = errors.New("registry is sealed")
)
