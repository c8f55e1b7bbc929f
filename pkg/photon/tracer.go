package photon

import (
	"math"
	"runtime"
	"sync"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/log"
	"github.com/mkbrown/photonmap/pkg/material"
	"github.com/mkbrown/photonmap/pkg/scene"
)

// Mode selects which deposit predicate a pass uses.
type Mode int

const (
	// Global deposits a photon at every diffuse bounce.
	Global Mode = iota
	// Caustic deposits only the first diffuse hit reached immediately
	// after a specular bounce, then terminates the path.
	Caustic
)

func (m Mode) String() string {
	if m == Caustic {
		return "caustic"
	}
	return "global"
}

// Tracer runs the light-transport pass: N independent photon paths per
// invocation of TracePass, split into contiguous per-goroutine ranges
// (no shared task queue, unlike the camera pass's worker pool), each
// goroutine with its own seeded random source and local photon buffer
// merged at the end.
type Tracer struct {
	Scene      *scene.Scene
	MaxDepth   int
	BaseSeed   int64
	NumThreads int
	Logger     log.Logger
}

// NewTracer creates a photon tracer over scene, bounding paths to
// maxDepth bounces and deriving per-thread seeds from baseSeed.
func NewTracer(sc *scene.Scene, maxDepth int, baseSeed int64, numThreads int, logger log.Logger) *Tracer {
	return &Tracer{Scene: sc, MaxDepth: maxDepth, BaseSeed: baseSeed, NumThreads: numThreads, Logger: logger}
}

// TracePass runs count independent photon paths in mode and returns the
// merged photon vector. Work is split as evenly as possible across
// worker goroutines; each owns a distinct seeded random source and a
// local buffer, so no synchronization is needed on the hot path.
func (t *Tracer) TracePass(mode Mode, count int) []Photon {
	if count <= 0 || len(t.Scene.Lights) == 0 {
		return nil
	}

	numThreads := t.NumThreads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}
	if numThreads > count {
		numThreads = count
	}

	buffers := make([][]Photon, numThreads)
	var wg sync.WaitGroup

	base := count / numThreads
	remainder := count % numThreads
	for threadIndex := 0; threadIndex < numThreads; threadIndex++ {
		n := base
		if threadIndex < remainder {
			n++
		}
		wg.Add(1)
		go func(threadIndex, n int) {
			defer wg.Done()
			rng := core.NewSeededRandom(t.BaseSeed, threadIndex)
			sampler := core.NewRandomSampler(rng)
			local := make([]Photon, 0, n)
			for i := 0; i < n; i++ {
				local = append(local, t.tracePath(mode, sampler)...)
			}
			buffers[threadIndex] = local
		}(threadIndex, n)
	}
	wg.Wait()

	total := 0
	for _, b := range buffers {
		total += len(b)
	}
	merged := make([]Photon, 0, total)
	for _, b := range buffers {
		merged = append(merged, b...)
	}
	return merged
}

// tracePath runs one photon path and returns the deposits it produced
// (zero, one, or several depending on mode).
func (t *Tracer) tracePath(mode Mode, sampler core.Sampler) []Photon {
	light, pL := t.Scene.LightSampler.SampleLight(sampler.Get1D())
	if light == nil || pL <= 0 {
		return nil
	}

	point, lightNormal, pPos := light.SamplePoint(sampler.Get2D())
	if pPos <= 0 {
		return nil
	}
	dir, pDir := light.SampleDirection(lightNormal, sampler.Get2D())
	if pDir <= 0 {
		return nil
	}

	lightSurface := &material.SurfaceInteraction{
		Point:           point,
		ShadingNormal:   lightNormal,
		GeometricNormal: lightNormal,
	}
	le := light.Le(lightSurface, dir)
	cosLight := absFloat(dir.Dot(lightNormal))

	denom := pL * pPos * pDir
	if denom <= 0 {
		return nil
	}
	throughput := le.Multiply(cosLight / denom)

	ray := core.NewRay(point, dir)
	prevSpecular := false
	var deposits []Photon

	for k := 0; k < t.MaxDepth; k++ {
		if !throughput.IsFinite() || throughput.HasNegative() {
			if t.Logger != nil {
				t.Logger.Warningf("photon: degenerate throughput at bounce %d, discarding path", k)
			}
			return deposits
		}

		hit, ok := t.Scene.Intersect(ray, scene.Epsilon, math.Inf(1))
		if !ok {
			return deposits
		}

		tag := hit.Material.Tag()
		terminate := false

		switch mode {
		case Global:
			if tag == material.Diffuse {
				deposits = append(deposits, Photon{
					Power:    throughput,
					Position: hit.Point,
					Wi:       ray.Direction.Negate(),
				})
			}
		case Caustic:
			if tag == material.Diffuse {
				if prevSpecular {
					deposits = append(deposits, Photon{
						Power:    throughput,
						Position: hit.Point,
						Wi:       ray.Direction.Negate(),
					})
				}
				terminate = true
			}
		}
		if terminate {
			return deposits
		}

		if k > 0 {
			q := maxComponent(throughput)
			if q > 1 {
				q = 1
			}
			if sampler.Get1D() >= q {
				return deposits
			}
			if q > 0 {
				throughput = throughput.Multiply(1.0 / q)
			}
		}

		wo := ray.Direction.Negate()
		wi, f, pdf, sampled := hit.Material.Sample(wo, hit, material.FromLight, sampler)
		if !sampled {
			return deposits
		}

		if pdf > 0 {
			cos := material.CosineTerm(wo, wi, hit, material.FromLight)
			throughput = throughput.MultiplyVec(f).Multiply(cos / pdf)
		} else {
			// pdf == 0 signals a delta (specular) BSDF: f already
			// carries the full reflectance/transmittance weight.
			throughput = throughput.MultiplyVec(f)
		}

		prevSpecular = tag == material.Specular
		ray = core.NewRay(hit.Point, wi)
	}

	return deposits
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxComponent(v core.Vec3) float64 {
	return v.MaxComponent()
}
