package integrator

import (
	"math"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/log"
	"github.com/mkbrown/photonmap/pkg/material"
	"github.com/mkbrown/photonmap/pkg/photon"
	"github.com/mkbrown/photonmap/pkg/scene"
)

// Config bundles the per-run tunables the CLI surface exposes: sample
// counts, photon-map k values, and the depth thresholds that decide
// when a diffuse hit falls back to a direct photon-map lookup.
type Config struct {
	MaxDepth            int
	FinalGatheringDepth int
	KGlobal             int
	KCaustic            int
	NPhotonsGlobal      int
	NPhotonsCaustic     int
}

// Estimator is the camera-side recursive radiance evaluator (component
// D). It holds only read-only references to the scene and the two
// built photon stores, so a single Estimator is shared across every
// render-worker goroutine.
type Estimator struct {
	Scene   *scene.Scene
	Global  *photon.Store
	Caustic *photon.Store
	Config  Config
	Logger  log.Logger
}

// NewEstimator creates a radiance estimator over the given scene and
// built photon stores.
func NewEstimator(sc *scene.Scene, global, caustic *photon.Store, cfg Config, logger log.Logger) *Estimator {
	return &Estimator{Scene: sc, Global: global, Caustic: caustic, Config: cfg, Logger: logger}
}

// L evaluates the radiance arriving along ray, recursing up to
// Config.MaxDepth bounces.
func (e *Estimator) L(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	if depth >= e.Config.MaxDepth {
		return core.Vec3{}
	}

	hit, ok := e.Scene.Intersect(ray, scene.Epsilon, math.Inf(1))
	if !ok {
		return core.Vec3{}
	}

	wo := ray.Direction.Negate()
	if hit.Material.IsEmitter() {
		return hit.Material.Emitted(hit, wo)
	}

	switch hit.Material.Tag() {
	case material.Diffuse:
		return e.diffuse(wo, hit, depth, sampler)
	case material.Specular:
		return e.specular(ray, wo, hit, depth, sampler)
	default:
		if e.Logger != nil {
			e.Logger.Warningf("integrator: unknown material tag %v, dropping sample", hit.Material.Tag())
		}
		return core.Vec3{}
	}
}

// diffuse implements the diffuse branch of the recursive estimator: a
// direct photon-map lookup once depth reaches the final-gathering
// threshold, otherwise next-event estimation plus a caustic lookup
// plus one bounce of final gathering.
func (e *Estimator) diffuse(wo core.Vec3, hit *material.SurfaceInteraction, depth int, sampler core.Sampler) core.Vec3 {
	if depth >= e.Config.FinalGatheringDepth {
		return e.densityGlobal(wo, hit)
	}

	ld := e.directIllumination(wo, hit, sampler)
	lc := e.densityCaustic(wo, hit)
	li := e.finalGather(wo, hit, 0, sampler)
	return ld.Add(lc).Add(li)
}

// specular implements the specular branch: at shallow depth, enumerate
// every branch SampleAll offers (reflection and refraction, Fresnel-
// weighted) to reduce noise; beyond that, take a single stochastic
// sample.
func (e *Estimator) specular(ray core.Ray, wo core.Vec3, hit *material.SurfaceInteraction, depth int, sampler core.Sampler) core.Vec3 {
	if depth >= 3 {
		wi, f, pdf, ok := hit.Material.Sample(wo, hit, material.FromCamera, sampler)
		if !ok {
			return core.Vec3{}
		}
		li := e.L(core.NewRay(hit.Point, wi), depth+1, sampler)
		if pdf > 0 {
			cos := material.CosineTerm(wo, wi, hit, material.FromCamera)
			return li.MultiplyVec(f).Multiply(cos / pdf)
		}
		return li.MultiplyVec(f)
	}

	branches := hit.Material.SampleAll(wo, hit, material.FromCamera, sampler)
	var sum core.Vec3
	for _, b := range branches {
		cos := material.CosineTerm(wo, b.Wi, hit, material.FromCamera)
		if cos <= 0 {
			continue
		}
		li := e.L(core.NewRay(hit.Point, b.Wi), depth+1, sampler)
		sum = sum.Add(li.MultiplyVec(b.F).Multiply(cos))
	}
	return sum
}

// directIllumination performs next-event estimation: sample a light
// and a point on it, convert the area-measure density to a solid-angle
// density, and cast a shadow ray to test visibility.
func (e *Estimator) directIllumination(wo core.Vec3, hit *material.SurfaceInteraction, sampler core.Sampler) core.Vec3 {
	light, pL := e.Scene.LightSampler.SampleLight(sampler.Get1D())
	if light == nil || pL <= 0 {
		return core.Vec3{}
	}

	lightPoint, lightNormal, pPos := light.SamplePoint(sampler.Get2D())
	if pPos <= 0 {
		return core.Vec3{}
	}

	toLight := lightPoint.Subtract(hit.Point)
	r := toLight.Length()
	if r <= 0 {
		return core.Vec3{}
	}
	wi := toLight.Multiply(1.0 / r)

	cosLight := math.Abs(wi.Negate().Dot(lightNormal))
	if cosLight <= 0 {
		return core.Vec3{}
	}
	pOmega := pPos * r * r / cosLight
	if pOmega <= 0 {
		return core.Vec3{}
	}

	shadowRay := core.NewRay(hit.Point, wi)
	if _, blocked := e.Scene.Intersect(shadowRay, scene.Epsilon, r-scene.Epsilon); blocked {
		return core.Vec3{}
	}

	f := hit.Material.Evaluate(wo, wi, hit, material.FromCamera)
	cos := material.CosineTerm(wo, wi, hit, material.FromCamera)
	if cos <= 0 {
		return core.Vec3{}
	}

	lightSurface := &material.SurfaceInteraction{
		Point:           lightPoint,
		ShadingNormal:   lightNormal,
		GeometricNormal: lightNormal,
	}
	le := light.Le(lightSurface, wi.Negate())

	return f.MultiplyVec(le).Multiply(cos / (pL * pOmega))
}

// finalGather traces one BSDF-sampled bounce from a diffuse hit: on
// reaching another diffuse surface it terminates with a global-map
// density lookup; on reaching a specular surface it recurses (bounded
// by Config.MaxDepth), preserving L*S+DGD-shaped paths.
func (e *Estimator) finalGather(wo core.Vec3, hit *material.SurfaceInteraction, depth int, sampler core.Sampler) core.Vec3 {
	if depth >= e.Config.MaxDepth {
		return core.Vec3{}
	}

	wi, f, pdf, ok := hit.Material.Sample(wo, hit, material.FromCamera, sampler)
	if !ok {
		return core.Vec3{}
	}

	ray := core.NewRay(hit.Point, wi)
	next, hasHit := e.Scene.Intersect(ray, scene.Epsilon, math.Inf(1))
	if !hasHit {
		return core.Vec3{}
	}
	nextWo := wi.Negate()

	var weight core.Vec3
	if pdf > 0 {
		cos := material.CosineTerm(wo, wi, hit, material.FromCamera)
		if cos <= 0 {
			return core.Vec3{}
		}
		weight = f.Multiply(cos / pdf)
	} else {
		weight = f
	}

	switch next.Material.Tag() {
	case material.Diffuse:
		rho := e.densityGlobal(nextWo, next)
		return weight.MultiplyVec(rho)
	case material.Specular:
		inner := e.finalGather(nextWo, next, depth+1, sampler)
		return weight.MultiplyVec(inner)
	default:
		return core.Vec3{}
	}
}

func (e *Estimator) densityGlobal(wo core.Vec3, hit *material.SurfaceInteraction) core.Vec3 {
	return densityEstimate(wo, hit, e.Global, e.Config.KGlobal, e.Config.NPhotonsGlobal)
}

func (e *Estimator) densityCaustic(wo core.Vec3, hit *material.SurfaceInteraction) core.Vec3 {
	return densityEstimate(wo, hit, e.Caustic, e.Config.KCaustic, e.Config.NPhotonsCaustic)
}
