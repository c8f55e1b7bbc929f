// Package scene assembles geometry and lights into the read-only
// world both the photon pass and the camera pass intersect against.
package scene

import (
	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/geometry"
	"github.com/mkbrown/photonmap/pkg/lights"
	"github.com/mkbrown/photonmap/pkg/material"
)

// Epsilon guards against shadow-ray and secondary-ray self-intersection.
const Epsilon = 1e-4

// Scene bundles the ray-intersection acceleration structure with the
// light set and its sampler. Once built it is never mutated, so it is
// safely shared read-only across the photon-pass and camera-pass
// worker goroutines.
type Scene struct {
	BVH          *geometry.BVH
	Lights       []lights.Light
	LightSampler lights.Sampler
}

// New builds a scene from a flat shape list and a light list. Lights
// that are also visible geometry (area lights) must additionally
// appear in shapes so camera and photon rays can hit them directly.
func New(shapes []geometry.Shape, lightList []lights.Light) *Scene {
	return &Scene{
		BVH:          geometry.NewBVH(shapes),
		Lights:       lightList,
		LightSampler: lights.NewUniformSampler(lightList),
	}
}

// Intersect finds the closest hit along ray in [tMin, tMax].
func (s *Scene) Intersect(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	return s.BVH.Hit(ray, tMin, tMax)
}
