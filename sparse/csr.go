package sparse

import "fmt"

// CSR is a sparse matrix in compressed sparse row format. Zero entries are
// not stored: values holds the nonzero entries row by row, colIndex their
// column positions, and rowPtr[i]..rowPtr[i+1] delimits row i. A CSR is
// immutable after construction and safe for concurrent readers.
type CSR struct {
	values   []float64
	colIndex []int
	rowPtr   []int
	cols     int
}

// NewFromDense compresses a rectangular dense array, keeping only nonzero
// entries. An empty input yields a 0×0 matrix.
// Returns ErrRagged when rows differ in length.
// Complexity: O(rows·cols).
func NewFromDense(dense [][]float64) (*CSR, error) {
	m := &CSR{rowPtr: []int{0}}
	if len(dense) == 0 {
		return m, nil
	}
	m.cols = len(dense[0])
	for i, row := range dense {
		if len(row) != m.cols {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), m.cols, ErrRagged)
		}
		for j, v := range row {
			if v != 0 {
				m.values = append(m.values, v)
				m.colIndex = append(m.colIndex, j)
			}
		}
		m.rowPtr = append(m.rowPtr, len(m.values))
	}

	return m, nil
}

// FromRaw builds a CSR directly from its raw arrays, validating their
// consistency: rowPtr must start at 0, end at len(values), never decrease,
// and every column index must fall inside [0, cols).
// Returns ErrBadShape on any violation. The slices are copied.
func FromRaw(values []float64, colIndex []int, rowPtr []int, cols int) (*CSR, error) {
	switch {
	case cols < 0:
		return nil, fmt.Errorf("negative cols %d: %w", cols, ErrBadShape)
	case len(values) != len(colIndex):
		return nil, fmt.Errorf("%d values vs %d column indices: %w", len(values), len(colIndex), ErrBadShape)
	case len(rowPtr) == 0 || rowPtr[0] != 0:
		return nil, fmt.Errorf("row pointers must start at 0: %w", ErrBadShape)
	case rowPtr[len(rowPtr)-1] != len(values):
		return nil, fmt.Errorf("last row pointer %d vs %d values: %w", rowPtr[len(rowPtr)-1], len(values), ErrBadShape)
	}
	for i := 1; i < len(rowPtr); i++ {
		if rowPtr[i] < rowPtr[i-1] {
			return nil, fmt.Errorf("row pointer %d decreases: %w", i, ErrBadShape)
		}
	}
	for n, j := range colIndex {
		if j < 0 || j >= cols {
			return nil, fmt.Errorf("entry %d: column %d with %d cols: %w", n, j, cols, ErrBadShape)
		}
	}

	return &CSR{
		values:   append([]float64(nil), values...),
		colIndex: append([]int(nil), colIndex...),
		rowPtr:   append([]int(nil), rowPtr...),
		cols:     cols,
	}, nil
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return len(m.rowPtr) - 1 }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored (nonzero) entries.
func (m *CSR) NNZ() int { return len(m.values) }

// String implements fmt.Stringer.
func (m *CSR) String() string {
	return fmt.Sprintf("CSR(%dx%d, %d entries)", m.Rows(), m.cols, len(m.values))
}

// At returns the entry at (i, j); absent entries read as 0.
// Returns ErrOutOfRange for indices outside the matrix.
// Complexity: O(nnz of row i).
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, m.Rows(), m.cols, ErrOutOfRange)
	}
	for n := m.rowPtr[i]; n < m.rowPtr[i+1]; n++ {
		if m.colIndex[n] == j {
			return m.values[n], nil
		}
	}

	return 0, nil
}

// MulVec returns the matrix-vector product m·x.
// Returns ErrDimensionMismatch when len(x) ≠ Cols.
// Complexity: O(NNZ).
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("vector length %d vs %d cols: %w", len(x), m.cols, ErrDimensionMismatch)
	}
	out := make([]float64, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		sum := 0.0
		for n := m.rowPtr[i]; n < m.rowPtr[i+1]; n++ {
			sum += m.values[n] * x[m.colIndex[n]]
		}
		out[i] = sum
	}

	return out, nil
}

// Equal reports whether m and other hold identical CSR data (same shape,
// same stored entries in the same positions).
func (m *CSR) Equal(other *CSR) bool {
	if other == nil || m.cols != other.cols || len(m.values) != len(other.values) || len(m.rowPtr) != len(other.rowPtr) {
		return false
	}
	for n := range m.values {
		if m.values[n] != other.values[n] || m.colIndex[n] != other.colIndex[n] {
			return false
		}
	}
	for i := range m.rowPtr {
		if m.rowPtr[i] != other.rowPtr[i] {
			return false
		}
	}

	return true
}

// Values returns a copy of the stored nonzero entries in row-major order.
func (m *CSR) Values() []float64 {
	return append([]float64(nil), m.values...)
}

// ColIndex returns a copy of the column indices of the stored entries.
func (m *CSR) ColIndex() []int {
	return append([]int(nil), m.colIndex...)
}

// RowPtr returns a copy of the cumulative row pointers.
func (m *CSR) RowPtr() []int {
	return append([]int(nil), m.rowPtr...)
}

// Entries calls fn for every stored entry with its coordinates and value,
// rows ascending and columns in storage order. Iteration stops early when
// fn returns false.
func (m *CSR) Entries(fn func(i, j int, v float64) bool) {
	for i := 0; i < m.Rows(); i++ {
		for n := m.rowPtr[i]; n < m.rowPtr[i+1]; n++ {
			if !fn(i, m.colIndex[n], m.values[n]) {
				return
			}
		}
	}
}
