package geometry

import (
	"fmt"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/material"
)

// TriangleMesh is a collection of triangles with its own internal BVH,
// the "triangulated primitives" scene input spec.md describes.
type TriangleMesh struct {
	triangles []Shape
	bvh       *BVH
	bbox      AABB
}

// NewTriangleMesh builds a mesh from a flat vertex array and a
// face-index array (each run of 3 indices is one triangle).
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.Material) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("photonmap: face index count %d is not a multiple of 3", len(faces))
	}

	numTriangles := len(faces) / 3
	triangles := make([]Shape, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= len(vertices) || i1 >= len(vertices) || i2 >= len(vertices) {
			return nil, fmt.Errorf("photonmap: face %d references out-of-range vertex", i)
		}
		triangles[i] = NewTriangle(vertices[i0], vertices[i1], vertices[i2], mat)
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("photonmap: mesh has no triangles")
	}

	bbox := triangles[0].BoundingBox()
	for _, t := range triangles[1:] {
		bbox = bbox.Union(t.BoundingBox())
	}

	return &TriangleMesh{
		triangles: triangles,
		bvh:       NewBVH(triangles),
		bbox:      bbox,
	}, nil
}

// Hit implements Shape by delegating to the mesh's internal BVH.
func (m *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	return m.bvh.Hit(ray, tMin, tMax)
}

// BoundingBox implements Shape.
func (m *TriangleMesh) BoundingBox() AABB {
	return m.bbox
}

// TriangleCount returns the number of triangles in the mesh.
func (m *TriangleMesh) TriangleCount() int {
	return len(m.triangles)
}

// Triangles exposes the individual triangles, e.g. so a caller can
// flatten a mesh into the scene's shape list.
func (m *TriangleMesh) Triangles() []Shape {
	return m.triangles
}
