package geometry

import (
	"sort"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/material"
)

// leafThreshold is the shape count at or below which a BVH node stores
// shapes directly instead of splitting further.
const leafThreshold = 8

// BVHNode is a node in the ray-scene acceleration structure.
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape
}

// BVH is a bounding volume hierarchy over Shapes, the ray-scene
// acceleration structure spec.md treats as an external collaborator.
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of shapes via recursive median
// split on the longest axis.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)
	return &BVH{Root: buildBVH(shapesCopy)}
}

func buildBVH(shapes []Shape) *BVHNode {
	box := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		box = box.Union(s.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: box, Shapes: shapes}
	}

	axis := box.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		ci, cj := shapes[i].BoundingBox().Center(), shapes[j].BoundingBox().Center()
		switch axis {
		case 0:
			return ci.X < cj.X
		case 1:
			return ci.Y < cj.Y
		default:
			return ci.Z < cj.Z
		}
	})

	mid := len(shapes) / 2
	return &BVHNode{
		BoundingBox: box,
		Left:        buildBVH(shapes[:mid]),
		Right:       buildBVH(shapes[mid:]),
	}
}

// Hit finds the closest intersection along the ray within [tMin, tMax].
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	if b.Root == nil {
		return nil, false
	}
	return hitNode(b.Root, ray, tMin, tMax)
}

func hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.Shapes != nil {
		var closest *material.SurfaceInteraction
		hitAnything := false
		closestSoFar := tMax
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				hitAnything = true
				closestSoFar = hit.T
				closest = hit
			}
		}
		return closest, hitAnything
	}

	var closest *material.SurfaceInteraction
	hitAnything := false
	closestSoFar := tMax
	if node.Left != nil {
		if hit, ok := hitNode(node.Left, ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}
	if node.Right != nil {
		if hit, ok := hitNode(node.Right, ray, tMin, closestSoFar); ok {
			hitAnything = true
			closest = hit
		}
	}
	return closest, hitAnything
}
