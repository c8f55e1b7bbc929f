package material

import (
	"math"

	"github.com/mkbrown/photonmap/pkg/core"
)

// Glass is a dielectric material that both reflects and refracts,
// weighted by Fresnel reflectance (Schlick's approximation).
type Glass struct {
	RefractiveIndex float64
}

// NewGlass creates a glass material with the given index of refraction
// (e.g. 1.5 for common glass).
func NewGlass(refractiveIndex float64) *Glass {
	return &Glass{RefractiveIndex: refractiveIndex}
}

// Tag implements Material.
func (g *Glass) Tag() MaterialTag { return Specular }

// Evaluate implements Material: delta BSDF, zero at any sampled pair.
func (g *Glass) Evaluate(wo, wi core.Vec3, surface *SurfaceInteraction, dir TransportDir) core.Vec3 {
	return core.Vec3{}
}

// Sample implements Material by stochastically choosing between
// reflection and refraction according to Fresnel reflectance.
func (g *Glass) Sample(wo core.Vec3, surface *SurfaceInteraction, dir TransportDir, sampler core.Sampler) (core.Vec3, core.Vec3, float64, bool) {
	incoming := wo.Negate()
	eta, normal, cosTheta := g.refractionGeometry(incoming, surface)

	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	cannotRefract := eta*sinTheta > 1.0

	if cannotRefract || schlickReflectance(cosTheta, eta) > sampler.Get1D() {
		wi := reflect(incoming, normal)
		return wi, core.NewVec3(1, 1, 1), 0, true
	}

	wi := refract(incoming, normal, eta, cosTheta)
	return wi, core.NewVec3(1, 1, 1), 0, true
}

// SampleAll implements Material: at shallow bounces the estimator
// wants both the reflection and refraction branch, each weighted by
// its own Fresnel factor, rather than one stochastic choice.
func (g *Glass) SampleAll(wo core.Vec3, surface *SurfaceInteraction, dir TransportDir, sampler core.Sampler) []BSDFSample {
	incoming := wo.Negate()
	eta, normal, cosTheta := g.refractionGeometry(incoming, surface)

	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	reflectWi := reflect(incoming, normal)

	if eta*sinTheta > 1.0 {
		// total internal reflection: only the reflection branch exists
		return []BSDFSample{{Wi: reflectWi, F: core.NewVec3(1, 1, 1)}}
	}

	reflectance := schlickReflectance(cosTheta, eta)
	refractWi := refract(incoming, normal, eta, cosTheta)

	return []BSDFSample{
		{Wi: reflectWi, F: core.NewVec3(reflectance, reflectance, reflectance)},
		{Wi: refractWi, F: core.NewVec3(1-reflectance, 1-reflectance, 1-reflectance)},
	}
}

// Emitted implements Material.
func (g *Glass) Emitted(surface *SurfaceInteraction, wo core.Vec3) core.Vec3 { return core.Vec3{} }

// IsEmitter implements Material.
func (g *Glass) IsEmitter() bool { return false }

// refractionGeometry returns the relative index of refraction, the
// normal oriented to face the incoming ray, and the cosine of the
// incidence angle.
func (g *Glass) refractionGeometry(incoming core.Vec3, surface *SurfaceInteraction) (eta float64, normal core.Vec3, cosTheta float64) {
	normal = surface.ShadingNormal
	if surface.FrontFace {
		eta = 1.0 / g.RefractiveIndex
	} else {
		eta = g.RefractiveIndex
	}
	unit := incoming.Normalize()
	cosTheta = math.Min(-unit.Dot(normal), 1.0)
	return eta, normal, cosTheta
}

func schlickReflectance(cosTheta, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

func refract(uv, n core.Vec3, etaiOverEtat, cosTheta float64) core.Vec3 {
	perp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	parallelLen := -math.Sqrt(math.Abs(1.0 - perp.LengthSquared()))
	parallel := n.Multiply(parallelLen)
	return perp.Add(parallel)
}
