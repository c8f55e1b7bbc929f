// Package lights implements area-light sampling: choosing a light from
// the scene, a point on it, and an emission direction, each with the
// density the estimator needs to turn the sample into an unbiased
// radiance contribution.
package lights

import (
	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/material"
)

// Light is a surface that emits radiance. Both the camera pass (next-
// event estimation) and the photon pass (emission sampling) go through
// this interface.
type Light interface {
	// SamplePoint returns a point uniformly distributed over the
	// light's surface, its shading normal there, and the area-measure
	// density of that point (1/Area for a uniform sampler).
	SamplePoint(sample core.Vec2) (point core.Vec3, normal core.Vec3, pdfArea float64)

	// SampleDirection returns an emission direction from a point with
	// the given shading normal, and its solid-angle density.
	SampleDirection(normal core.Vec3, sample core.Vec2) (dir core.Vec3, pdfSolid float64)

	// Le returns the emitted radiance leaving surface in direction dir
	// (dir points away from the surface, toward the observer).
	Le(surface *material.SurfaceInteraction, dir core.Vec3) core.Vec3

	// Area returns the light's surface area.
	Area() float64
}

// Sampler chooses a light from a fixed set, exposing the discrete
// selection probability the estimator needs to unbias the choice.
type Sampler interface {
	SampleLight(u float64) (light Light, pdf float64)
	Count() int
}
