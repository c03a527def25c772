// Package meshio reads and writes the plain-text element and vertex files
// a PolygonalDomain is typically loaded from.
//
// Both formats start with the entry count on the first line, followed by
// one whitespace-separated entry per line:
//
//	element file           vertex file
//	-------------          -------------
//	2                      4
//	0   1   2              0.0   0.0
//	0   2   3              1.0   0.0
//	                       1.0   1.0
//	                       0.0   1.0
//
// Element lines carry three vertex indices; vertex lines carry x and y
// coordinates. A declared count that disagrees with the number of data
// lines is rejected (ErrCountMismatch) — the header is a cheap integrity
// check, not a hint.
//
// Readers and writers accept a WithLogger option (charmbracelet/log) and
// report what they touched at debug level.
//
// Errors:
//
//   - ErrBadFormat     — unparsable header, wrong field count, or a field
//     that is not a number. Wrapped with file and line context.
//   - ErrCountMismatch — header count ≠ number of entries.
package meshio
