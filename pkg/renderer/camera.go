package renderer

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/mkbrown/photonmap/pkg/core"
)

// Camera is a pinhole camera with a fixed position, look-at direction,
// and vertical field of view.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera builds a pinhole camera looking from lookFrom toward
// lookAt, oriented by up, with the given vertical field of view in
// degrees and the image's aspect ratio (width/height).
func NewCamera(lookFrom, lookAt, up core.Vec3, vfovDegrees, aspectRatio float64) *Camera {
	vfovRad := float32(vfovDegrees * math.Pi / 180.0)
	halfHeight := float64(math32.Tan(vfovRad / 2))
	halfWidth := aspectRatio * halfHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeftCorner := lookFrom.
		Subtract(u.Multiply(halfWidth)).
		Subtract(v.Multiply(halfHeight)).
		Subtract(w)

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth),
		vertical:        v.Multiply(2 * halfHeight),
	}
}

// GetRay generates a camera ray for normalized screen coordinates
// (s, t) in [0,1]x[0,1], with (0,0) at the lower-left of the image.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)
	return core.NewRay(c.origin, direction)
}
