package geometry

import (
	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/material"
)

// Shape is anything that can be hit by a ray and bounded by an AABB.
// Scene loading and the ray-scene acceleration structure are external
// collaborators per spec.md; this interface is the seam between them
// and the estimator.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool)
	BoundingBox() AABB
}
