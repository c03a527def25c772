package sparse

import "errors"

// Sentinel errors for CSR construction, access, and persistence. Returned
// (possibly wrapped with context) by all package operations and matched via
// errors.Is.
var (
	// ErrRagged indicates dense input rows of differing lengths.
	ErrRagged = errors.New("sparse: ragged dense input")

	// ErrBadShape indicates inconsistent raw CSR arrays (row pointers not
	// monotonically non-decreasing, lengths that disagree, or column indices
	// outside the declared width).
	ErrBadShape = errors.New("sparse: inconsistent CSR data")

	// ErrOutOfRange indicates an At index outside the matrix bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates a vector length incompatible with the
	// matrix shape.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrBadEncoding indicates persisted matrix data that fails to decode.
	ErrBadEncoding = errors.New("sparse: undecodable matrix data")
)
