package material

import "github.com/mkbrown/photonmap/pkg/core"

// Mirror is a perfectly specular reflector.
type Mirror struct {
	Albedo core.Vec3
}

// NewMirror creates a mirror material.
func NewMirror(albedo core.Vec3) *Mirror {
	return &Mirror{Albedo: albedo}
}

// Tag implements Material.
func (m *Mirror) Tag() MaterialTag { return Specular }

// Evaluate implements Material: a delta BSDF evaluates to zero at any
// sampled direction pair (all mass is on the single reflected ray).
func (m *Mirror) Evaluate(wo, wi core.Vec3, surface *SurfaceInteraction, dir TransportDir) core.Vec3 {
	return core.Vec3{}
}

// Sample implements Material by reflecting wo about the shading
// normal. pdf is 0, signaling a delta distribution.
func (m *Mirror) Sample(wo core.Vec3, surface *SurfaceInteraction, dir TransportDir, sampler core.Sampler) (core.Vec3, core.Vec3, float64, bool) {
	incoming := wo.Negate()
	wi := reflect(incoming, surface.ShadingNormal)
	if wi.Dot(surface.ShadingNormal) <= 0 {
		return core.Vec3{}, core.Vec3{}, 0, false
	}
	return wi, m.Albedo, 0, true
}

// SampleAll implements Material: mirrors contribute exactly one
// branch, weighted by the mirror's albedo only; no cosine factor is
// folded into it.
func (m *Mirror) SampleAll(wo core.Vec3, surface *SurfaceInteraction, dir TransportDir, sampler core.Sampler) []BSDFSample {
	wi, f, _, ok := m.Sample(wo, surface, dir, sampler)
	if !ok {
		return nil
	}
	return []BSDFSample{{Wi: wi, F: f}}
}

// Emitted implements Material.
func (m *Mirror) Emitted(surface *SurfaceInteraction, wo core.Vec3) core.Vec3 { return core.Vec3{} }

// IsEmitter implements Material.
func (m *Mirror) IsEmitter() bool { return false }

// reflect computes the reflection of incoming direction v (pointing
// toward the surface) about normal n.
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
