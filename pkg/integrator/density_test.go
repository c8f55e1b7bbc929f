package integrator

import (
	"math"
	"testing"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/material"
	"github.com/mkbrown/photonmap/pkg/photon"
)

func TestDensityEstimateNormalization(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.5, 0.5)
	mat := material.NewLambertian(albedo)
	hit := &material.SurfaceInteraction{
		Point:           core.NewVec3(0, 0, 0),
		ShadingNormal:   core.NewVec3(0, 1, 0),
		GeometricNormal: core.NewVec3(0, 1, 0),
		Material:        mat,
	}
	wo := core.NewVec3(0, 1, 0)
	wi := core.NewVec3(0, 1, 0)

	power := core.NewVec3(1, 1, 1)
	positions := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(-1, 0, 0),
	}
	photons := make([]photon.Photon, len(positions))
	for i, p := range positions {
		photons[i] = photon.Photon{Position: p, Power: power, Wi: wi}
	}
	store := photon.NewStore()
	store.SetPhotons(photons)
	store.Build()

	nPass := 10
	got := densityEstimate(wo, hit, store, 3, nPass)

	f := mat.Evaluate(wo, wi, hit, material.FromCamera)
	rSquared := 1.0
	want := f.Multiply(3).Multiply(1.0 / (float64(nPass) * math.Pi * rSquared))

	if diff := got.Subtract(want); math.Abs(diff.X) > 1e-9 || math.Abs(diff.Y) > 1e-9 || math.Abs(diff.Z) > 1e-9 {
		t.Fatalf("densityEstimate = %+v, want %+v", got, want)
	}
}

func TestDensityEstimateZeroOnEmptyStore(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := &material.SurfaceInteraction{
		Point:           core.NewVec3(0, 0, 0),
		ShadingNormal:   core.NewVec3(0, 1, 0),
		GeometricNormal: core.NewVec3(0, 1, 0),
		Material:        mat,
	}
	store := photon.NewStore()
	store.Build()

	got := densityEstimate(core.NewVec3(0, 1, 0), hit, store, 8, 100)
	if got != (core.Vec3{}) {
		t.Fatalf("expected zero density estimate on an empty store, got %+v", got)
	}
}

func TestDensityEstimateZeroOnZeroPassCount(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := &material.SurfaceInteraction{
		Point:           core.NewVec3(0, 0, 0),
		ShadingNormal:   core.NewVec3(0, 1, 0),
		GeometricNormal: core.NewVec3(0, 1, 0),
		Material:        mat,
	}
	store := photon.NewStore()
	store.SetPhotons([]photon.Photon{{Position: core.NewVec3(1, 0, 0), Power: core.NewVec3(1, 1, 1)}})
	store.Build()

	got := densityEstimate(core.NewVec3(0, 1, 0), hit, store, 1, 0)
	if got != (core.Vec3{}) {
		t.Fatalf("expected zero density estimate when nPass <= 0, got %+v", got)
	}
}
