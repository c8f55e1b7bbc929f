package scene

import (
	"fmt"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/geometry"
	"github.com/mkbrown/photonmap/pkg/lights"
	"github.com/mkbrown/photonmap/pkg/material"
)

// Preset bundles a built-in Scene with the camera parameters it was
// designed to be viewed from.
type Preset struct {
	Scene      *Scene
	LookFrom   core.Vec3
	LookAt     core.Vec3
	Up         core.Vec3
	VFov       float64
}

// Builtin returns one of the named literal test scenarios, used both
// by the test suite and by the CLI when no mesh file is given.
func Builtin(name string) (*Preset, error) {
	switch name {
	case "empty":
		return newEmptyScene(), nil
	case "emissive-quad":
		return newEmissiveQuadScene(), nil
	case "lambertian-box":
		return newLambertianBoxScene(), nil
	case "glass-caustic":
		return newGlassCausticScene(), nil
	case "mirror-box":
		return newMirrorBoxScene(), nil
	default:
		return nil, fmt.Errorf("photonmap: unknown built-in scene %q", name)
	}
}

// newEmptyScene is scenario S1: a scene with no geometry and no
// lights. Every camera ray must miss and return black.
func newEmptyScene() *Preset {
	return &Preset{
		Scene:    New(nil, nil),
		LookFrom: core.NewVec3(0, 0, -5),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40,
	}
}

// newEmissiveQuadScene is scenario S2: a single emissive quad facing
// the camera, close enough that a centered ray hits it directly.
func newEmissiveQuadScene() *Preset {
	emission := core.NewVec3(4, 4, 4)
	light := lights.NewQuadLight(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		material.NewEmissiveLambertian(core.Vec3{}, emission),
	)

	shapes := []geometry.Shape{light.Quad}
	lightList := []lights.Light{light}

	return &Preset{
		Scene:    New(shapes, lightList),
		LookFrom: core.NewVec3(0, 0, -5),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40,
	}
}

// boxWalls builds a Cornell-box-style enclosure of the given size out
// of five quads (floor, ceiling, back, left, right), returned as
// shapes. It is shared by the box-based presets below.
func boxWalls(boxSize float64, floorMat, wallMat, leftMat, rightMat material.Material) []geometry.Shape {
	floor := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), floorMat)
	ceiling := geometry.NewQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), wallMat)
	back := geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), wallMat)
	left := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), leftMat)
	right := geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), rightMat)
	return []geometry.Shape{floor, ceiling, back, left, right}
}

// topLight adds a small emissive quad centered in the ceiling of a
// boxSize-sided box, returning it as both a shape and a Light.
func topLight(boxSize, lightSize float64, emission core.Vec3) *lights.QuadLight {
	offset := (boxSize - lightSize) / 2.0
	return lights.NewQuadLight(
		core.NewVec3(offset, boxSize-1, offset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		material.NewEmissiveLambertian(core.Vec3{}, emission),
	)
}

// newLambertianBoxScene is scenario S3: an all-Lambertian box with a
// ceiling light, used to test the global-map density estimate in
// isolation (finalGatheringDepth is expected to be set to 0 by the
// caller so every diffuse hit uses the global map directly).
func newLambertianBoxScene() *Preset {
	boxSize := 555.0
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	shapes := boxWalls(boxSize, white, white, red, green)
	light := topLight(boxSize, 130, core.NewVec3(15, 15, 15))
	shapes = append(shapes, light.Quad)

	return &Preset{
		Scene:    New(shapes, []lights.Light{light}),
		LookFrom: core.NewVec3(boxSize/2, boxSize/2, -800),
		LookAt:   core.NewVec3(boxSize/2, boxSize/2, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40,
	}
}

// newGlassCausticScene is scenario S4: a Cornell-box-like enclosure
// with a glass sphere suspended over the floor, so caustic photons
// focused through the sphere land on the floor beneath it.
func newGlassCausticScene() *Preset {
	boxSize := 555.0
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	shapes := boxWalls(boxSize, white, white, red, green)
	light := topLight(boxSize, 130, core.NewVec3(15, 15, 15))
	shapes = append(shapes, light.Quad)

	glassSphere := geometry.NewSphere(core.NewVec3(boxSize/2, 100, boxSize/2), 90, material.NewGlass(1.5))
	shapes = append(shapes, glassSphere)

	return &Preset{
		Scene:    New(shapes, []lights.Light{light}),
		LookFrom: core.NewVec3(boxSize/2, boxSize/2, -800),
		LookAt:   core.NewVec3(boxSize/2, boxSize/2, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40,
	}
}

// newMirrorBoxScene is scenario S5: a box with mirrored walls and a
// diffuse floor, exercising the specular-branch recursion at a range
// of maxDepth values.
func newMirrorBoxScene() *Preset {
	boxSize := 555.0
	mirror := material.NewMirror(core.NewVec3(0.95, 0.95, 0.95))
	floorMat := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	shapes := boxWalls(boxSize, floorMat, mirror, mirror, mirror)
	light := topLight(boxSize, 130, core.NewVec3(15, 15, 15))
	shapes = append(shapes, light.Quad)

	return &Preset{
		Scene:    New(shapes, []lights.Light{light}),
		LookFrom: core.NewVec3(boxSize/2, boxSize/2, -800),
		LookAt:   core.NewVec3(boxSize/2, boxSize/2, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40,
	}
}
