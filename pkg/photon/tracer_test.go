package photon

import (
	"testing"

	"github.com/mkbrown/photonmap/pkg/scene"
)

func TestTracePassNoLightsReturnsEmpty(t *testing.T) {
	preset, err := scene.Builtin("empty")
	if err != nil {
		t.Fatal(err)
	}
	tracer := NewTracer(preset.Scene, 5, 1, 2, nil)
	if photons := tracer.TracePass(Global, 100); photons != nil {
		t.Fatalf("expected nil photons for a lightless scene, got %d", len(photons))
	}
}

func TestTracePassGlobalDepositsHaveNonNegativePower(t *testing.T) {
	preset, err := scene.Builtin("lambertian-box")
	if err != nil {
		t.Fatal(err)
	}
	tracer := NewTracer(preset.Scene, 8, 7, 4, nil)
	photons := tracer.TracePass(Global, 2000)

	if len(photons) == 0 {
		t.Fatal("expected at least one deposit in an all-diffuse lit box")
	}
	for _, p := range photons {
		if p.Power.HasNegative() {
			t.Fatalf("photon power has a negative channel: %+v", p.Power)
		}
		if !p.Power.IsFinite() {
			t.Fatalf("photon power is not finite: %+v", p.Power)
		}
	}
}

func TestTracePassCausticOnAllDiffuseSceneIsEmpty(t *testing.T) {
	preset, err := scene.Builtin("lambertian-box")
	if err != nil {
		t.Fatal(err)
	}
	tracer := NewTracer(preset.Scene, 8, 3, 4, nil)
	photons := tracer.TracePass(Caustic, 2000)

	if len(photons) != 0 {
		t.Fatalf("expected no caustic deposits in a scene with no specular surfaces, got %d", len(photons))
	}
}

func TestTracePassCausticOnGlassSceneDeposits(t *testing.T) {
	preset, err := scene.Builtin("glass-caustic")
	if err != nil {
		t.Fatal(err)
	}
	tracer := NewTracer(preset.Scene, 8, 11, 4, nil)
	photons := tracer.TracePass(Caustic, 20000)

	if len(photons) == 0 {
		t.Fatal("expected at least one caustic deposit through the glass sphere")
	}
	for _, p := range photons {
		if p.Power.HasNegative() || !p.Power.IsFinite() {
			t.Fatalf("degenerate caustic photon power: %+v", p.Power)
		}
	}
}
