package geometry

import (
	"math"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/material"
)

// Triangle is a single triangle primitive.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Normal     core.Vec3 // unit geometric normal, derived from vertex winding order
	Material   material.Material
}

// NewTriangle creates a triangle, deriving its geometric normal from
// vertex winding order.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	normal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return &Triangle{V0: v0, V1: v1, V2: v2, Normal: normal, Material: mat}
}

// Hit implements Shape via the Möller-Trumbore ray-triangle test.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	const epsilon = 1e-9

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return nil, false
	}

	dist := f * edge2.Dot(q)
	if dist < tMin || dist > tMax {
		return nil, false
	}

	point := ray.At(dist)
	frontFace := ray.Direction.Dot(t.Normal) < 0
	normal := t.Normal
	if !frontFace {
		normal = normal.Negate()
	}

	return &material.SurfaceInteraction{
		Point:           point,
		ShadingNormal:   normal,
		GeometricNormal: normal,
		UV:              core.NewVec2(u, v),
		T:               dist,
		FrontFace:       frontFace,
		Material:        t.Material,
	}, true
}

// BoundingBox implements Shape.
func (t *Triangle) BoundingBox() AABB {
	box := NewAABB(t.V0, t.V1)
	box = box.Union(NewAABB(t.V2, t.V2))
	// pad a hair along the normal so an axis-aligned triangle still has
	// a non-degenerate box that the slab test can hit
	pad := t.Normal.Multiply(1e-4)
	return box.Union(NewAABB(box.Min.Add(pad), box.Max.Subtract(pad)))
}
