package material

import (
	"math"

	"github.com/mkbrown/photonmap/pkg/core"
)

// Lambertian is a perfectly diffuse material, optionally emissive when
// Emission is non-zero (an area light's surface material).
type Lambertian struct {
	Albedo   core.Vec3
	Emission core.Vec3
}

// NewLambertian creates a plain diffuse material.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewEmissiveLambertian creates a diffuse material that also emits
// light, the surface material used by area lights.
func NewEmissiveLambertian(albedo, emission core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo, Emission: emission}
}

// Tag implements Material.
func (l *Lambertian) Tag() MaterialTag { return Diffuse }

// Evaluate implements Material: the Lambertian BRDF is constant,
// albedo/pi, over the hemisphere the shading normal defines.
func (l *Lambertian) Evaluate(wo, wi core.Vec3, surface *SurfaceInteraction, dir TransportDir) core.Vec3 {
	if wi.Dot(surface.ShadingNormal) <= 0 {
		return core.Vec3{}
	}
	return l.Albedo.Multiply(1.0 / math.Pi)
}

// Sample implements Material via cosine-weighted hemisphere sampling.
func (l *Lambertian) Sample(wo core.Vec3, surface *SurfaceInteraction, dir TransportDir, sampler core.Sampler) (core.Vec3, core.Vec3, float64, bool) {
	wi := core.SampleCosineHemisphere(surface.ShadingNormal, sampler.Get2D())
	cosTheta := wi.Dot(surface.ShadingNormal)
	if cosTheta <= 0 {
		return core.Vec3{}, core.Vec3{}, 0, false
	}
	pdf := cosTheta / math.Pi
	return wi, l.Albedo.Multiply(1.0 / math.Pi), pdf, true
}

// SampleAll implements Material: diffuse surfaces only ever contribute
// a single Sample() draw, never an all-branch expansion.
func (l *Lambertian) SampleAll(wo core.Vec3, surface *SurfaceInteraction, dir TransportDir, sampler core.Sampler) []BSDFSample {
	wi, f, pdf, ok := l.Sample(wo, surface, dir, sampler)
	if !ok || pdf <= 0 {
		return nil
	}
	cosTheta := wi.Dot(surface.ShadingNormal)
	return []BSDFSample{{Wi: wi, F: f.Multiply(cosTheta / pdf)}}
}

// Emitted implements Material.
func (l *Lambertian) Emitted(surface *SurfaceInteraction, wo core.Vec3) core.Vec3 {
	if !l.IsEmitter() || wo.Dot(surface.ShadingNormal) <= 0 {
		return core.Vec3{}
	}
	return l.Emission
}

// IsEmitter implements Material.
func (l *Lambertian) IsEmitter() bool {
	return !l.Emission.IsZero()
}
