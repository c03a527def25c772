package builder

import (
	"errors"
	"fmt"

	"github.com/meshdom/meshdom/mesh"
)

// ErrBadDimensions indicates a requested grid dimension below 1.
var ErrBadDimensions = errors.New("builder: rows and cols must be ≥ 1")

const minGridDim = 1

// Rectangle returns the raw node and element data of a triangulated
// rows×cols rectangle of unit squares.
//
// The grid spans [0,cols]×[0,rows] with (rows+1)·(cols+1) nodes in
// row-major order. Every cell contributes two triangles: (ll, lr, ul) then
// (lr, ur, ul), so 2·rows·cols elements in total. For the 1×1 grid this is
// the canonical two-element unit square with elements meeting along the
// (1,0)–(0,1) diagonal.
//
// Complexity: O(rows·cols) time and memory.
func Rectangle(rows, cols int) ([]mesh.Node, [][3]int, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, nil, fmt.Errorf("rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minGridDim, ErrBadDimensions)
	}

	nodes := make([]mesh.Node, 0, (rows+1)*(cols+1))
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			nodes = append(nodes, mesh.Node{X: float64(c), Y: float64(r)})
		}
	}

	elements := make([][3]int, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ll := r*(cols+1) + c // lower-left node of the cell
			lr := ll + 1
			ul := ll + cols + 1
			ur := ul + 1
			elements = append(elements, [3]int{ll, lr, ul}, [3]int{lr, ur, ul})
		}
	}

	return nodes, elements, nil
}
