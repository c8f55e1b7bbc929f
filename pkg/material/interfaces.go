package material

import (
	"github.com/mkbrown/photonmap/pkg/core"
)

// MaterialTag is the closed set of transport behaviors a surface can
// exhibit. The photon tracer and the radiance estimator both dispatch
// on this tag rather than doing open-ended type assertions.
type MaterialTag int

const (
	// Diffuse surfaces scatter incoming light according to a smooth
	// BRDF and are the only surfaces photons are deposited at.
	Diffuse MaterialTag = iota
	// Specular surfaces scatter along one or a few delta directions
	// (mirror reflection, dielectric refraction) and are never
	// recorded in a photon map directly.
	Specular
)

func (t MaterialTag) String() string {
	switch t {
	case Diffuse:
		return "Diffuse"
	case Specular:
		return "Specular"
	default:
		return "Unknown"
	}
}

// TransportDir distinguishes which end of a light path is carrying the
// throughput being computed. It governs the shading-normal asymmetry
// correction applied by CosineTerm.
type TransportDir int

const (
	// FromCamera is importance transport: paths traced from the eye.
	FromCamera TransportDir = iota
	// FromLight is radiance transport: paths traced from a light.
	FromLight
)

// SurfaceInteraction describes a ray-primitive intersection. Shading
// and geometric normals are tracked separately because the cosine-term
// asymmetry correction (see CosineTerm) needs both.
type SurfaceInteraction struct {
	Point           core.Vec3
	ShadingNormal   core.Vec3
	GeometricNormal core.Vec3
	UV              core.Vec2
	T               float64
	FrontFace       bool
	Material        Material
}

// BSDFSample is one (direction, pre-weighted throughput) pair returned
// by SampleAll, used for the shallow specular branch enumeration in
// the radiance estimator.
type BSDFSample struct {
	Wi core.Vec3
	F  core.Vec3
}

// Material is the discriminated contract every surface material
// implements. Diffuse and Specular are the only two MaterialTag
// variants; dispatch on Tag() rather than a type switch.
type Material interface {
	// Tag reports whether this material is Diffuse or Specular.
	Tag() MaterialTag

	// Evaluate returns the BSDF value f(wo, wi) at surface, under the
	// given transport direction. Specular materials return zero here
	// (their contribution is a delta function, handled by Sample).
	Evaluate(wo, wi core.Vec3, surface *SurfaceInteraction, dir TransportDir) core.Vec3

	// Sample draws one scattered direction, returning the direction,
	// the (already divided-by-pdf, for delta materials) or raw BSDF
	// value f, the solid-angle pdf (0 for delta materials), and
	// whether a valid sample was produced.
	Sample(wo core.Vec3, surface *SurfaceInteraction, dir TransportDir, sampler core.Sampler) (wi core.Vec3, f core.Vec3, pdf float64, ok bool)

	// SampleAll returns the finite set of (direction, weighted-f)
	// pairs used at shallow specular bounces (reflection + refraction
	// with Fresnel weights baked into f). Diffuse materials return a
	// single Sample() draw with f pre-multiplied by cos/pdf, or none.
	SampleAll(wo core.Vec3, surface *SurfaceInteraction, dir TransportDir, sampler core.Sampler) []BSDFSample

	// Emitted returns the emitted radiance leaving surface toward wo,
	// or zero if this material does not emit.
	Emitted(surface *SurfaceInteraction, wo core.Vec3) core.Vec3

	// IsEmitter reports whether this material ever emits light.
	IsEmitter() bool
}
