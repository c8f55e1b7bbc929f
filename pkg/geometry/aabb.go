package geometry

import (
	"math"

	"github.com/mkbrown/photonmap/pkg/core"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max core.Vec3
}

// NewAABB creates an AABB from two corner points.
func NewAABB(a, b core.Vec3) AABB {
	return AABB{
		Min: core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max: core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	}
}

// Union returns the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: core.NewVec3(math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)),
		Max: core.NewVec3(math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)),
	}
}

// Center returns the midpoint of the box.
func (a AABB) Center() core.Vec3 {
	return a.Min.Add(a.Max).Multiply(0.5)
}

// LongestAxis returns 0, 1, or 2 for the axis (x, y, z) along which the
// box has the largest extent.
func (a AABB) LongestAxis() int {
	extent := a.Max.Subtract(a.Min)
	if extent.X > extent.Y && extent.X > extent.Z {
		return 0
	}
	if extent.Y > extent.Z {
		return 1
	}
	return 2
}

// Hit tests ray-box intersection using the slab method.
func (a AABB) Hit(ray core.Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin, dir, lo, hi := a.axis(axis, ray)
		invD := 1.0 / dir
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

func (a AABB) axis(axis int, ray core.Ray) (origin, dir, lo, hi float64) {
	switch axis {
	case 0:
		return ray.Origin.X, ray.Direction.X, a.Min.X, a.Max.X
	case 1:
		return ray.Origin.Y, ray.Direction.Y, a.Min.Y, a.Max.Y
	default:
		return ray.Origin.Z, ray.Direction.Z, a.Min.Z, a.Max.Z
	}
}
