package linsys

import "github.com/go-errors/errors"

var (
	// ErrDimensionMismatch is returned when rows(A) != len(b), when the
	// number of columns of A differs from the length of x or of a proof,
	// or when A is empty or ragged.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrLengthMismatch is returned when a proof and a coefficient row
	// differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrMissingEntry is returned when a matrix or vector holds a nil entry.
	ErrMissingEntry = errors.New("missing matrix or vector entry")
	// ErrCurveMismatch is returned when an encoded proof names a curve
	// other than the one it is decoded into.
	ErrCurveMismatch = errors.New("proof encoded for a different curve")
)
