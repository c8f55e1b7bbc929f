// Package integrator implements the camera-side radiance estimator:
// the recursive evaluator that turns a camera ray into a radiance
// value by combining next-event estimation, photon-map density
// estimation, and bounded final gathering.
package integrator

import (
	"math"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/material"
	"github.com/mkbrown/photonmap/pkg/photon"
)

// densityEstimate implements the shared disk-kernel density estimator
// (component E): it queries store for the k nearest photons to
// hit.Point, sums their BSDF-weighted contribution, and normalizes by
// the disk area pi*r^2 and the total photon count of the generating
// pass (not the number of photons actually returned).
func densityEstimate(wo core.Vec3, hit *material.SurfaceInteraction, store *photon.Store, k int, nPass int) core.Vec3 {
	if nPass <= 0 {
		return core.Vec3{}
	}

	indices, rSquared := store.QueryKNearestPhotons(hit.Point, k)
	if len(indices) == 0 || rSquared <= 0 {
		return core.Vec3{}
	}

	var sum core.Vec3
	for _, idx := range indices {
		p := store.GetIthPhoton(idx)
		f := hit.Material.Evaluate(wo, p.Wi, hit, material.FromCamera)
		sum = sum.Add(f.MultiplyVec(p.Power))
	}

	return sum.Multiply(1.0 / (float64(nPass) * math.Pi * rSquared))
}
