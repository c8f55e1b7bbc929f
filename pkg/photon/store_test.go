package photon

import (
	"testing"

	"github.com/mkbrown/photonmap/pkg/core"
)

func TestStoreQueryBeforeBuildIsSafe(t *testing.T) {
	s := NewStore()
	s.SetPhotons([]Photon{{Position: core.NewVec3(0, 0, 0)}})

	indices, rSquared := s.QueryKNearestPhotons(core.NewVec3(0, 0, 0), 5)
	if indices != nil || rSquared != 0 {
		t.Fatalf("expected empty result before Build, got %v %f", indices, rSquared)
	}
}

func TestStoreQueryAfterBuild(t *testing.T) {
	s := NewStore()
	s.SetPhotons([]Photon{
		{Position: core.NewVec3(0, 0, 0), Power: core.NewVec3(1, 1, 1)},
		{Position: core.NewVec3(1, 0, 0), Power: core.NewVec3(1, 1, 1)},
		{Position: core.NewVec3(5, 0, 0), Power: core.NewVec3(1, 1, 1)},
	})
	s.Build()

	indices, _ := s.QueryKNearestPhotons(core.NewVec3(0, 0, 0), 2)
	if len(indices) != 2 {
		t.Fatalf("expected 2 nearest photons, got %d", len(indices))
	}
	for _, idx := range indices {
		if idx == 2 {
			t.Fatalf("expected the far photon (index 2) excluded from k=2 query")
		}
	}
}

func TestStoreSizeAndGet(t *testing.T) {
	s := NewStore()
	photons := []Photon{
		{Position: core.NewVec3(0, 0, 0), Power: core.NewVec3(2, 2, 2)},
	}
	s.SetPhotons(photons)
	if s.Size() != 1 {
		t.Fatalf("expected size 1, got %d", s.Size())
	}
	if got := s.GetIthPhoton(0); got.Power != photons[0].Power {
		t.Fatalf("GetIthPhoton returned wrong photon: %+v", got)
	}
}
