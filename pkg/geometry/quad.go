package geometry

import (
	"math"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/material"
)

// Quad is a parallelogram spanned by two edge vectors U and V from
// Corner, used both as scene geometry (mirror/glass box walls) and as
// the shape backing QuadLight.
type Quad struct {
	Corner, U, V core.Vec3
	Normal       core.Vec3
	Material     material.Material
}

// NewQuad creates a quad and derives its normal from U x V.
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	normal := u.Cross(v).Normalize()
	return &Quad{Corner: corner, U: u, V: v, Normal: normal, Material: mat}
}

// Hit implements Shape.
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	denom := ray.Direction.Dot(q.Normal)
	if math.Abs(denom) < 1e-9 {
		return nil, false
	}

	dist := q.Corner.Subtract(ray.Origin).Dot(q.Normal) / denom
	if dist < tMin || dist > tMax {
		return nil, false
	}

	point := ray.At(dist)
	toPoint := point.Subtract(q.Corner)

	uu, vv, uv := q.U.Dot(q.U), q.V.Dot(q.V), q.U.Dot(q.V)
	det := uu*vv - uv*uv
	if math.Abs(det) < 1e-12 {
		return nil, false
	}
	pu, pv := toPoint.Dot(q.U), toPoint.Dot(q.V)
	alpha := (vv*pu - uv*pv) / det
	beta := (uu*pv - uv*pu) / det
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	frontFace := denom < 0
	normal := q.Normal
	if !frontFace {
		normal = normal.Negate()
	}

	return &material.SurfaceInteraction{
		Point:           point,
		ShadingNormal:   normal,
		GeometricNormal: normal,
		UV:              core.NewVec2(alpha, beta),
		T:               dist,
		FrontFace:       frontFace,
		Material:        q.Material,
	}, true
}

// BoundingBox implements Shape.
func (q *Quad) BoundingBox() AABB {
	corners := [4]core.Vec3{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	}
	box := NewAABB(corners[0], corners[1])
	box = box.Union(NewAABB(corners[2], corners[3]))
	// pad a hair along the normal so a perfectly flat quad still has a
	// non-degenerate box for BVH partitioning
	pad := q.Normal.Multiply(1e-4)
	return box.Union(NewAABB(box.Min.Add(pad), box.Max.Subtract(pad)))
}

// Area returns the parallelogram's surface area, |U x V|.
func (q *Quad) Area() float64 {
	return q.U.Cross(q.V).Length()
}
