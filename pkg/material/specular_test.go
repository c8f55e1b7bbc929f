package material

import (
	"testing"

	"github.com/mkbrown/photonmap/pkg/core"
)

func testHitSurface() *SurfaceInteraction {
	n := core.NewVec3(0, 1, 0)
	return &SurfaceInteraction{
		Point:           core.NewVec3(0, 0, 0),
		ShadingNormal:   n,
		GeometricNormal: n,
		FrontFace:       true,
	}
}

type constSampler struct{ u float64 }

func (s constSampler) Get1D() float64  { return s.u }
func (s constSampler) Get2D() core.Vec2 { return core.NewVec2(s.u, s.u) }

func TestMirrorSampleReflectsAboutNormal(t *testing.T) {
	m := NewMirror(core.NewVec3(0.9, 0.9, 0.9))
	surf := testHitSurface()
	wo := core.NewVec3(1, 1, 0).Normalize()

	wi, f, pdf, ok := m.Sample(wo, surf, FromCamera, constSampler{0.5})
	if !ok {
		t.Fatal("expected a valid mirror sample")
	}
	if pdf != 0 {
		t.Fatalf("expected pdf == 0 for a delta BSDF, got %f", pdf)
	}
	if f != m.Albedo {
		t.Fatalf("expected f == albedo, got %+v", f)
	}
	want := core.NewVec3(-1, 1, 0).Normalize()
	if wi.Subtract(want).Length() > 1e-9 {
		t.Fatalf("mirror reflection = %+v, want %+v", wi, want)
	}
}

func TestGlassSampleProducesFiniteDirection(t *testing.T) {
	g := NewGlass(1.5)
	surf := testHitSurface()
	wo := core.NewVec3(0.3, 1, 0).Normalize()

	for _, u := range []float64{0.01, 0.5, 0.99} {
		wi, f, pdf, ok := g.Sample(wo, surf, FromCamera, constSampler{u})
		if !ok {
			t.Fatalf("expected a valid glass sample at u=%f", u)
		}
		if pdf != 0 {
			t.Fatalf("expected pdf == 0 for a delta BSDF, got %f", pdf)
		}
		if !wi.IsFinite() {
			t.Fatalf("glass sample direction is not finite: %+v", wi)
		}
		if !f.IsFinite() || f.HasNegative() {
			t.Fatalf("glass sample weight is invalid: %+v", f)
		}
	}
}

func TestGlassSampleAllSumsToUnityWeight(t *testing.T) {
	g := NewGlass(1.5)
	surf := testHitSurface()
	wo := core.NewVec3(0.1, 1, 0).Normalize()

	branches := g.SampleAll(wo, surf, FromCamera, constSampler{0.5})
	if len(branches) == 0 {
		t.Fatal("expected at least one branch")
	}
	var total float64
	for _, b := range branches {
		total += b.F.X
	}
	if total < 0.999 || total > 1.001 {
		t.Fatalf("expected reflectance + transmittance weights to sum to 1, got %f", total)
	}
}
