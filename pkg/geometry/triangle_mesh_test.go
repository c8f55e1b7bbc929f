package geometry

import (
	"testing"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/material"
)

func TestNewTriangleMeshRejectsBadFaceCount(t *testing.T) {
	verts := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)}
	_, err := NewTriangleMesh(verts, []int{0, 1}, material.NewLambertian(core.Vec3{}))
	if err == nil {
		t.Fatal("expected an error for a face index count not a multiple of 3")
	}
}

func TestNewTriangleMeshRejectsOutOfRangeVertex(t *testing.T) {
	verts := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)}
	_, err := NewTriangleMesh(verts, []int{0, 1, 5}, material.NewLambertian(core.Vec3{}))
	if err == nil {
		t.Fatal("expected an error for an out-of-range vertex index")
	}
}

func TestTriangleMeshHitsThroughBVH(t *testing.T) {
	verts := []core.Vec3{
		core.NewVec3(-1, -1, 5),
		core.NewVec3(1, -1, 5),
		core.NewVec3(0, 1, 5),
	}
	mesh, err := NewTriangleMesh(verts, []int{0, 1, 2}, material.NewLambertian(core.NewVec3(1, 1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if mesh.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
	}

	ray := core.NewRay(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 0, 1))
	hit, ok := mesh.Hit(ray, 0.001, 1000)
	if !ok {
		t.Fatal("expected a hit through the mesh's triangle")
	}
	if hit.T < 4.9 || hit.T > 5.1 {
		t.Fatalf("expected hit near t=5, got %f", hit.T)
	}
}

func TestTriangleMeshMissesEmptyRay(t *testing.T) {
	verts := []core.Vec3{
		core.NewVec3(-1, -1, 5),
		core.NewVec3(1, -1, 5),
		core.NewVec3(0, 1, 5),
	}
	mesh, err := NewTriangleMesh(verts, []int{0, 1, 2}, material.NewLambertian(core.Vec3{}))
	if err != nil {
		t.Fatal(err)
	}
	ray := core.NewRay(core.NewVec3(10, 10, 0), core.NewVec3(0, 0, 1))
	if _, ok := mesh.Hit(ray, 0.001, 1000); ok {
		t.Fatal("expected no hit")
	}
}
