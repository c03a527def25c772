package meshio

import "errors"

// Sentinel errors for file parsing. I/O failures (missing files, permission
// problems) surface as wrapped *os.PathError values instead.
var (
	// ErrBadFormat indicates a malformed header or data line.
	ErrBadFormat = errors.New("meshio: malformed file")

	// ErrCountMismatch indicates the declared entry count disagrees with the
	// number of data lines.
	ErrCountMismatch = errors.New("meshio: declared count does not match entries")
)
