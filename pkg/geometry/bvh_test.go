package geometry

import (
	"testing"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/material"
)

func TestBVHFindsClosestOfOverlappingSpheres(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, 5), 1, material.NewLambertian(core.NewVec3(1, 0, 0)))
	far := NewSphere(core.NewVec3(0, 0, 10), 1, material.NewLambertian(core.NewVec3(0, 1, 0)))

	bvh := NewBVH([]Shape{far, near})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, ok := bvh.Hit(ray, 0.001, 1000)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.T > 5 {
		t.Fatalf("expected the near sphere's hit (t~=4), got t=%f", hit.T)
	}
}

func TestBVHMissEmpty(t *testing.T) {
	bvh := NewBVH(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	if _, ok := bvh.Hit(ray, 0.001, 1000); ok {
		t.Fatal("expected no hit on an empty BVH")
	}
}

func TestBVHManyShapesSplitsIntoInnerNodes(t *testing.T) {
	shapes := make([]Shape, 0, 40)
	for i := 0; i < 40; i++ {
		shapes = append(shapes, NewSphere(core.NewVec3(float64(i)*3, 0, 0), 1, material.NewLambertian(core.NewVec3(1, 1, 1))))
	}
	bvh := NewBVH(shapes)
	if bvh.Root.Shapes != nil {
		t.Fatal("expected the root to be an inner node for 40 shapes")
	}

	ray := core.NewRay(core.NewVec3(39*3, -5, 0), core.NewVec3(0, 1, 0))
	hit, ok := bvh.Hit(ray, 0.001, 1000)
	if !ok || hit.T > 5 {
		t.Fatalf("expected a hit near t=4 on the last sphere, got ok=%v hit=%+v", ok, hit)
	}
}
