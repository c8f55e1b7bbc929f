package lights

import (
	"math"

	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/geometry"
	"github.com/mkbrown/photonmap/pkg/material"
)

// QuadLight is a rectangular area light backed by an emissive
// Lambertian quad: the quad doubles as scene geometry (so camera and
// photon rays can hit it directly) and as the light-sampling surface.
type QuadLight struct {
	*geometry.Quad
	area float64
}

// NewQuadLight creates an area light spanning corner+u, corner+v with
// the given emissive material.
func NewQuadLight(corner, u, v core.Vec3, mat material.Material) *QuadLight {
	quad := geometry.NewQuad(corner, u, v, mat)
	return &QuadLight{Quad: quad, area: quad.Area()}
}

// Area implements Light.
func (ql *QuadLight) Area() float64 { return ql.area }

// SamplePoint implements Light via uniform sampling over the
// parallelogram spanned by U and V.
func (ql *QuadLight) SamplePoint(sample core.Vec2) (core.Vec3, core.Vec3, float64) {
	point := ql.Corner.Add(ql.U.Multiply(sample.X)).Add(ql.V.Multiply(sample.Y))
	pdfArea := 1.0
	if ql.area > 0 {
		pdfArea = 1.0 / ql.area
	}
	return point, ql.Normal, pdfArea
}

// SampleDirection implements Light via cosine-weighted hemisphere
// sampling about the light's shading normal (diffuse emission).
func (ql *QuadLight) SampleDirection(normal core.Vec3, sample core.Vec2) (core.Vec3, float64) {
	dir := core.SampleCosineHemisphere(normal, sample)
	cosTheta := dir.Dot(normal)
	if cosTheta <= 0 {
		return core.Vec3{}, 0
	}
	return dir, cosTheta / math.Pi
}

// Le implements Light by delegating to the quad's material.
func (ql *QuadLight) Le(surface *material.SurfaceInteraction, dir core.Vec3) core.Vec3 {
	return ql.Material.Emitted(surface, dir)
}
