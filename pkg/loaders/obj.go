// Package loaders provides scene-input collaborators: reading a
// triangulated mesh off disk into the geometry types the renderer
// intersects against. Scene loading is an external collaborator to
// the estimator itself; this package exists to make the CLI runnable
// end to end.
package loaders

import (
	"fmt"

	"github.com/g3n/engine/loader/obj"
	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/geometry"
	"github.com/mkbrown/photonmap/pkg/material"
)

// LoadOBJ reads a Wavefront OBJ file and builds a single triangle mesh
// from it, uniformly scaled by scale and assigned mat as its material.
// Per-face OBJ materials are not modeled; the scene author supplies the
// material this renderer should use for the whole mesh.
func LoadOBJ(path string, mat material.Material, scale float64) (*geometry.TriangleMesh, error) {
	decoder, err := obj.Decode(path, "")
	if err != nil {
		return nil, fmt.Errorf("photonmap: reading obj file %q: %w", path, err)
	}

	vertices := make([]core.Vec3, 0, len(decoder.Vertices)/3)
	for i := 0; i+2 < len(decoder.Vertices); i += 3 {
		vertices = append(vertices, core.NewVec3(
			float64(decoder.Vertices[i])*scale,
			float64(decoder.Vertices[i+1])*scale,
			float64(decoder.Vertices[i+2])*scale,
		))
	}

	var faces []int
	for _, o := range decoder.Objects {
		for _, face := range o.Faces {
			if len(face.Vertices) != 3 {
				return nil, fmt.Errorf("photonmap: obj file %q has a non-triangular face", path)
			}
			faces = append(faces, face.Vertices...)
		}
	}

	mesh, err := geometry.NewTriangleMesh(vertices, faces, mat)
	if err != nil {
		return nil, fmt.Errorf("photonmap: building mesh from %q: %w", path, err)
	}
	return mesh, nil
}
