// Package spatial provides the balanced k-d tree used to answer
// k-nearest-neighbor queries over deposited photon positions.
package spatial

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/mkbrown/photonmap/pkg/core"
)

// point32 is a float32 copy of a query-able position, kept separate
// from core.Vec3 so the k-NN hot path never touches float64.
type point32 struct {
	X, Y, Z float32
}

func vecToPoint32(v core.Vec3) point32 {
	return point32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func axisValue(p point32, axis int) float32 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

func squaredDist(a, b point32) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return dx*dx + dy*dy + dz*dz
}

// node is one split in the tree: the point at this node (by index into
// the tree's point slice), the axis it was split on, and its children.
type node struct {
	index       int
	axis        int
	left, right *node
}

// KDTree is a balanced 3-D k-d tree over a frozen point set, built once
// and queried many times. It is safe for concurrent read-only queries.
type KDTree struct {
	points []point32
	root   *node
}

// Build constructs a k-d tree over points. The returned tree's indices
// refer to positions in the given slice, in the order given.
func Build(points []core.Vec3) *KDTree {
	pts := make([]point32, len(points))
	for i, p := range points {
		pts[i] = vecToPoint32(p)
	}
	t := &KDTree{points: pts}
	if len(pts) == 0 {
		return t
	}
	indices := make([]int, len(pts))
	for i := range indices {
		indices[i] = i
	}
	t.root = t.build(indices)
	return t
}

// build recursively splits indices on the axis of largest extent,
// median-splitting so the tree stays balanced regardless of input
// distribution. The pattern mirrors a bounding-volume hierarchy build:
// compute an extent, pick the longest axis, sort, split at the middle.
func (t *KDTree) build(indices []int) *node {
	if len(indices) == 0 {
		return nil
	}

	axis := t.longestAxis(indices)
	sort.Slice(indices, func(i, j int) bool {
		return axisValue(t.points[indices[i]], axis) < axisValue(t.points[indices[j]], axis)
	})

	mid := len(indices) / 2
	n := &node{index: indices[mid], axis: axis}
	n.left = t.build(indices[:mid])
	n.right = t.build(indices[mid+1:])
	return n
}

func (t *KDTree) longestAxis(indices []int) int {
	minP := t.points[indices[0]]
	maxP := minP
	for _, i := range indices[1:] {
		p := t.points[i]
		minP.X, maxP.X = math32.Min(minP.X, p.X), math32.Max(maxP.X, p.X)
		minP.Y, maxP.Y = math32.Min(minP.Y, p.Y), math32.Max(maxP.Y, p.Y)
		minP.Z, maxP.Z = math32.Min(minP.Z, p.Z), math32.Max(maxP.Z, p.Z)
	}
	ex, ey, ez := maxP.X-minP.X, maxP.Y-minP.Y, maxP.Z-minP.Z
	if ex >= ey && ex >= ez {
		return 0
	}
	if ey >= ez {
		return 1
	}
	return 2
}

// KNN returns the indices of the k points nearest to query and the
// squared distance to the farthest of them. If fewer than k points
// exist, all points are returned. If the tree is empty, both results
// are zero-valued.
func (t *KDTree) KNN(query core.Vec3, k int) ([]int, float64) {
	if t.root == nil || k <= 0 {
		return nil, 0
	}
	q := vecToPoint32(query)
	bq := NewBoundedQueue(k)
	t.knn(t.root, q, bq)
	indices, maxSq := bq.Results()
	return indices, float64(maxSq)
}

func (t *KDTree) knn(n *node, q point32, bq *BoundedQueue) {
	if n == nil {
		return
	}
	bq.Add(n.index, squaredDist(t.points[n.index], q))

	diff := axisValue(q, n.axis) - axisValue(t.points[n.index], n.axis)
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}

	t.knn(near, q, bq)
	if !bq.Full() || diff*diff < bq.Worst() {
		t.knn(far, q, bq)
	}
}

// Len returns the number of points in the tree.
func (t *KDTree) Len() int { return len(t.points) }
