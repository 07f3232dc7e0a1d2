package arr

import "errors"

var (
	// ErrOutOfRange indicates an index that falls outside [0, len) once
	// negative indices have been normalised.
	ErrOutOfRange = errors.New("arr: index out of range")
	// ErrTypeMismatch indicates a value was supplied where a callable (or a
	// callable result of a specific type) was required.
	ErrTypeMismatch = errors.New("arr: type mismatch")
	// ErrMalformedPattern indicates a split pattern that does not compile or
	// an empty explode delimiter.
	ErrMalformedPattern = errors.New("arr: malformed pattern")
	// ErrNoEvaluator indicates no expression engine could be resolved.
	ErrNoEvaluator = errors.New("arr: evaluator not configured")
)
