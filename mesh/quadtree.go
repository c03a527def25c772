package mesh

import (
	"container/heap"
	"math"
)

// Static quadtree over element bounding boxes, backing ClosestElement.
//
// The tree is bulk-built once at domain construction and never mutated.
// nearest runs a best-first search over the tree: entries pop in order of
// bounding-box lower-bound distance, and the search stops as soon as that
// lower bound exceeds the best true distance found. Because a box distance
// never exceeds the element's true distance, and pruning is strictly
// greater-than, elements tied with the current best are still visited —
// the lowest-index tie-break of the exhaustive scan is preserved exactly.

const (
	qtMaxDepth = 12
	qtLeafSize = 8
)

type box struct {
	minX, minY, maxX, maxY float64
}

func boxOf(el Element) box {
	lo, hi := el.BoundingBox()
	return box{minX: lo.X, minY: lo.Y, maxX: hi.X, maxY: hi.Y}
}

func (b box) union(o box) box {
	return box{
		minX: math.Min(b.minX, o.minX),
		minY: math.Min(b.minY, o.minY),
		maxX: math.Max(b.maxX, o.maxX),
		maxY: math.Max(b.maxY, o.maxY),
	}
}

func (b box) covers(o box) bool {
	return o.minX >= b.minX && o.maxX <= b.maxX && o.minY >= b.minY && o.maxY <= b.maxY
}

// dist returns the Euclidean distance from p to the box; zero inside.
func (b box) dist(p Node) float64 {
	dx := math.Max(math.Max(b.minX-p.X, 0), p.X-b.maxX)
	dy := math.Max(math.Max(b.minY-p.Y, 0), p.Y-b.maxY)

	return math.Hypot(dx, dy)
}

// quadrants splits the box into its four equal quadrants.
func (b box) quadrants() [4]box {
	mx := (b.minX + b.maxX) / 2
	my := (b.minY + b.maxY) / 2
	return [4]box{
		{b.minX, b.minY, mx, my}, // SW
		{mx, b.minY, b.maxX, my}, // SE
		{b.minX, my, mx, b.maxY}, // NW
		{mx, my, b.maxX, b.maxY}, // NE
	}
}

type qtNode struct {
	bounds   box
	elems    []int // element indices stored at this node (leaf or straddlers)
	children []*qtNode
}

type quadTree struct {
	boxes []box
	root  *qtNode
}

// newQuadTree bulk-builds the tree for a non-empty element list.
// Time: O(E·maxDepth) worst case; Memory: O(E).
func newQuadTree(elements []Element) *quadTree {
	boxes := make([]box, len(elements))
	bounds := boxOf(elements[0])
	for e, el := range elements {
		boxes[e] = boxOf(el)
		bounds = bounds.union(boxes[e])
	}
	items := make([]int, len(elements))
	for e := range items {
		items[e] = e
	}

	return &quadTree{boxes: boxes, root: buildQTNode(items, bounds, 0, boxes)}
}

// buildQTNode distributes items into the quadrant that fully covers them;
// straddlers stay at the node. A node where nothing separates stays a leaf
// rather than recursing without progress.
func buildQTNode(items []int, bounds box, depth int, boxes []box) *qtNode {
	n := &qtNode{bounds: bounds}
	if len(items) <= qtLeafSize || depth >= qtMaxDepth {
		n.elems = items
		return n
	}

	quads := bounds.quadrants()
	var parts [4][]int
	var straddle []int
	for _, it := range items {
		placed := false
		for q := 0; q < 4 && !placed; q++ {
			if quads[q].covers(boxes[it]) {
				parts[q] = append(parts[q], it)
				placed = true
			}
		}
		if !placed {
			straddle = append(straddle, it)
		}
	}
	if len(straddle) == len(items) {
		n.elems = items
		return n
	}

	n.elems = straddle
	for q := 0; q < 4; q++ {
		if len(parts[q]) > 0 {
			n.children = append(n.children, buildQTNode(parts[q], quads[q], depth+1, boxes))
		}
	}

	return n
}

// nearest returns the index of the element closest to p, ties to the lowest
// index. elements must be the list the tree was built from.
func (t *quadTree) nearest(p Node, elements []Element) int {
	best := -1
	bestDist := math.Inf(1)

	q := &searchQueue{}
	heap.Push(q, searchEntry{dist: t.root.bounds.dist(p), node: t.root})
	for q.Len() > 0 {
		e := heap.Pop(q).(searchEntry)
		if e.dist > bestDist {
			break // every remaining lower bound is larger still
		}
		if e.node == nil {
			d := elements[e.elem].DistanceTo(p)
			if d < bestDist || (d == bestDist && e.elem < best) {
				best, bestDist = e.elem, d
			}
			continue
		}
		for _, idx := range e.node.elems {
			heap.Push(q, searchEntry{dist: t.boxes[idx].dist(p), elem: idx})
		}
		for _, child := range e.node.children {
			heap.Push(q, searchEntry{dist: child.bounds.dist(p), node: child})
		}
	}

	return best
}

// searchEntry is either a tree node (node != nil) or a single element,
// keyed by the bounding-box lower-bound distance to the query point.
type searchEntry struct {
	dist float64
	node *qtNode
	elem int
}

type searchQueue struct {
	entries []searchEntry
}

func (q *searchQueue) Len() int           { return len(q.entries) }
func (q *searchQueue) Less(i, j int) bool { return q.entries[i].dist < q.entries[j].dist }
func (q *searchQueue) Swap(i, j int)      { q.entries[i], q.entries[j] = q.entries[j], q.entries[i] }
func (q *searchQueue) Push(x interface{}) { q.entries = append(q.entries, x.(searchEntry)) }
func (q *searchQueue) Pop() interface{} {
	e := q.entries[len(q.entries)-1]
	q.entries = q.entries[:len(q.entries)-1]
	return e
}
