package integrator

import (
	"testing"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/photon"
	"github.com/mkbrown/photonmap/pkg/scene"
)

func newTestEstimator(t *testing.T, sceneName string, cfg Config) (*Estimator, *scene.Preset) {
	t.Helper()
	preset, err := scene.Builtin(sceneName)
	if err != nil {
		t.Fatal(err)
	}
	global := photon.NewStore()
	global.Build()
	caustic := photon.NewStore()
	caustic.Build()
	return NewEstimator(preset.Scene, global, caustic, cfg, nil), preset
}

// TestEmptySceneIsBlack covers scenario S1: a scene with no geometry
// and no lights must return exactly zero radiance for every ray.
func TestEmptySceneIsBlack(t *testing.T) {
	e, preset := newTestEstimator(t, "empty", Config{MaxDepth: 5, FinalGatheringDepth: 1, KGlobal: 8, KCaustic: 8})
	ray := core.NewRay(preset.LookFrom, preset.LookAt.Subtract(preset.LookFrom).Normalize())
	sampler := core.NewRandomSampler(core.NewSeededRandom(1, 0))

	got := e.L(ray, 0, sampler)
	if got != (core.Vec3{}) {
		t.Fatalf("expected exact zero radiance on an empty scene, got %+v", got)
	}
}

// TestDirectEmitterHitReturnsExactLe covers scenario S2: a camera ray
// aimed straight at an emissive quad must return exactly the quad's
// emitted radiance, independent of every photon-map and sampling path.
func TestDirectEmitterHitReturnsExactLe(t *testing.T) {
	e, preset := newTestEstimator(t, "emissive-quad", Config{MaxDepth: 5, FinalGatheringDepth: 1, KGlobal: 8, KCaustic: 8})
	dir := preset.LookAt.Subtract(preset.LookFrom).Normalize()
	ray := core.NewRay(preset.LookFrom, dir)
	sampler := core.NewRandomSampler(core.NewSeededRandom(1, 0))

	got := e.L(ray, 0, sampler)
	want := core.NewVec3(4, 4, 4)
	if got != want {
		t.Fatalf("expected exact emitted radiance %+v, got %+v", want, got)
	}
}

// TestDepthLimitReturnsBlack ensures the recursion never exceeds
// Config.MaxDepth.
func TestDepthLimitReturnsBlack(t *testing.T) {
	e, preset := newTestEstimator(t, "lambertian-box", Config{MaxDepth: 3, FinalGatheringDepth: 1, KGlobal: 8, KCaustic: 8})
	dir := preset.LookAt.Subtract(preset.LookFrom).Normalize()
	ray := core.NewRay(preset.LookFrom, dir)
	sampler := core.NewRandomSampler(core.NewSeededRandom(1, 0))

	got := e.L(ray, 3, sampler)
	if got != (core.Vec3{}) {
		t.Fatalf("expected zero radiance once depth reaches MaxDepth, got %+v", got)
	}
}
