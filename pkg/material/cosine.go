package material

import "github.com/mkbrown/photonmap/pkg/core"

// CosineTerm computes the shading-normal asymmetry correction shared
// by the photon tracer and the radiance estimator (component F). wo
// and wi are both expected to point away from the surface, toward the
// outgoing and incoming path segments respectively.
//
// The light-leak guard rejects directions whose sign disagrees between
// the geometric and shading normals, since such directions would let
// light pass through a backfacing geometric surface that a shading
// normal perturbation makes appear front-facing (or vice versa).
func CosineTerm(wo, wi core.Vec3, surface *SurfaceInteraction, dir TransportDir) float64 {
	nGeom := surface.GeometricNormal
	nShading := surface.ShadingNormal

	if wi.Dot(nGeom)*wi.Dot(nShading) <= 0 {
		return 0
	}
	if wo.Dot(nGeom)*wo.Dot(nShading) <= 0 {
		return 0
	}

	if dir == FromCamera {
		return absf(wi.Dot(nShading))
	}

	// FromLight: correct for the asymmetry introduced by shading
	// normals so that photon-pass throughput agrees in expectation
	// with camera-pass throughput.
	woShading := absf(wo.Dot(nShading))
	wiGeom := absf(wi.Dot(nGeom))
	woGeom := absf(wo.Dot(nGeom))
	if woGeom == 0 {
		return 0
	}
	return woShading * wiGeom / woGeom
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
