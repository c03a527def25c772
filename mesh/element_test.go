package mesh_test

import (
	"errors"
	"math"
	"testing"

	"github.com/meshdom/meshdom/mesh"
	"github.com/stretchr/testify/require"
)

// unitNodes is the unit square: indices 0..3 counter-clockwise from the origin.
var unitNodes = []mesh.Node{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// TestNewTriangle_Errors verifies the construction taxonomy: out-of-range
// indices, repeated indices, and collinear corners.
func TestNewTriangle_Errors(t *testing.T) {
	collinear := []mesh.Node{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}

	cases := []struct {
		name    string
		nodes   []mesh.Node
		i, j, k int
		err     error
	}{
		{"IndexNegative", unitNodes, -1, 1, 2, mesh.ErrIndexOutOfRange},
		{"IndexTooLarge", unitNodes, 0, 1, 99, mesh.ErrIndexOutOfRange},
		{"RepeatedIndex", unitNodes, 0, 1, 1, mesh.ErrDegenerateElement},
		{"CollinearCorners", collinear, 0, 1, 2, mesh.ErrDegenerateElement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.NewTriangle(tc.nodes, tc.i, tc.j, tc.k, 0)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewTriangle(%d,%d,%d) error = %v; want %v", tc.i, tc.j, tc.k, err, tc.err)
			}
		})
	}
}

func TestTriangle_Area(t *testing.T) {
	tr, err := mesh.NewTriangle(unitNodes, 0, 1, 2, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, tr.Area(), 1e-12)

	// Orientation must not matter.
	rev, err := mesh.NewTriangle(unitNodes, 2, 1, 0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, rev.Area(), 1e-12)
}

func TestTriangle_Contains(t *testing.T) {
	tr, err := mesh.NewTriangle(unitNodes, 0, 1, 2, 0) // (0,0) (1,0) (1,1)
	require.NoError(t, err)

	require.True(t, tr.Contains(mesh.Node{X: 0.75, Y: 0.25}), "interior point")
	require.True(t, tr.Contains(mesh.Node{X: 0.5, Y: 0.5}), "point on hypotenuse")
	require.True(t, tr.Contains(mesh.Node{X: 0, Y: 0}), "corner point")
	require.False(t, tr.Contains(mesh.Node{X: 0.25, Y: 0.75}), "point across the hypotenuse")
	require.False(t, tr.Contains(mesh.Node{X: 2, Y: 0}), "point outside the bounding box")
}

func TestTriangle_DistanceTo(t *testing.T) {
	tr, err := mesh.NewTriangle(unitNodes, 0, 1, 2, 0)
	require.NoError(t, err)

	require.Zero(t, tr.DistanceTo(mesh.Node{X: 0.75, Y: 0.25}), "inside ⇒ distance 0")
	require.Zero(t, tr.DistanceTo(mesh.Node{X: 0.5, Y: 0.5}), "boundary ⇒ distance 0")
	require.InDelta(t, 1.0, tr.DistanceTo(mesh.Node{X: 0.5, Y: -1}), 1e-12)
	require.InDelta(t, math.Sqrt2, tr.DistanceTo(mesh.Node{X: 2, Y: 2}), 1e-12)
}

func TestTriangle_Centroid(t *testing.T) {
	tr, err := mesh.NewTriangle(unitNodes, 0, 1, 2, 0)
	require.NoError(t, err)

	c := tr.Centroid()
	require.InDelta(t, 2.0/3.0, c.X, 1e-12)
	require.InDelta(t, 1.0/3.0, c.Y, 1e-12)
}

func TestTriangle_SharedVertices(t *testing.T) {
	a, err := mesh.NewTriangle(unitNodes, 0, 1, 2, 0)
	require.NoError(t, err)
	b, err := mesh.NewTriangle(unitNodes, 0, 2, 3, 0)
	require.NoError(t, err)

	require.Equal(t, []int{0, 2}, a.SharedVertices(b), "edge-sharing pair")
	require.Equal(t, []int{0, 2}, b.SharedVertices(a), "symmetric result")
	require.Equal(t, []int{0, 1, 2}, a.SharedVertices(a), "self comparison")
}

func TestTriangle_BoundingBox(t *testing.T) {
	nodes := []mesh.Node{{X: -1, Y: 2}, {X: 3, Y: 0}, {X: 1, Y: 5}}
	tr, err := mesh.NewTriangle(nodes, 0, 1, 2, 0)
	require.NoError(t, err)

	lo, hi := tr.BoundingBox()
	require.Equal(t, mesh.Node{X: -1, Y: 0}, lo)
	require.Equal(t, mesh.Node{X: 3, Y: 5}, hi)
}

// TestDistancePointToSegment mirrors the canonical fixtures: a point beyond
// an endpoint, a point projecting onto the middle, and a point on the
// segment itself.
func TestDistancePointToSegment(t *testing.T) {
	a, b := mesh.Node{X: 0, Y: 1}, mesh.Node{X: 1, Y: 0}

	require.InDelta(t, 4.0, mesh.DistancePointToSegment(mesh.Node{X: 5, Y: 0}, a, b), 1e-12)
	require.InDelta(t, math.Hypot(0.5, 0.5), mesh.DistancePointToSegment(mesh.Node{X: 0, Y: 0}, a, b), 1e-12)
	require.Zero(t, mesh.DistancePointToSegment(mesh.Node{X: 1, Y: 0}, a, b))

	// Degenerate segment degrades to plain point distance.
	p := mesh.Node{X: 3, Y: 4}
	require.InDelta(t, 5.0, mesh.DistancePointToSegment(p, mesh.Node{}, mesh.Node{}), 1e-12)
}
