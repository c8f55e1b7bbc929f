package renderer

import (
	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/integrator"
	"github.com/mkbrown/photonmap/pkg/log"
)

// Renderer owns the camera-pass pixel buffer and drives the recursive
// estimator per pixel. Tiles are non-overlapping, so multiple workers
// can call RenderTile concurrently on the same Renderer without any
// locking: each writes only into the pixels its own tile covers.
type Renderer struct {
	Camera          *Camera
	Estimator       *integrator.Estimator
	Width, Height   int
	SamplesPerPixel int
	Logger          log.Logger

	pixels []core.Vec3
}

// NewRenderer creates a renderer with a zeroed pixel buffer.
func NewRenderer(camera *Camera, estimator *integrator.Estimator, width, height, samplesPerPixel int, logger log.Logger) *Renderer {
	return &Renderer{
		Camera:          camera,
		Estimator:       estimator,
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		Logger:          logger,
		pixels:          make([]core.Vec3, width*height),
	}
}

// RenderTile renders every pixel in tile using sampler, averaging
// SamplesPerPixel jittered camera rays per pixel. A sample whose
// radiance comes back non-finite or negative is a numerical-
// degeneracy diagnostic (per the error taxonomy): it contributes zero
// and is logged, but the pixel is still divided by the fixed
// SamplesPerPixel count, not by however many samples survived.
func (r *Renderer) RenderTile(tile Tile, sampler core.Sampler) {
	for y := tile.Bounds.MinY; y < tile.Bounds.MaxY; y++ {
		for x := tile.Bounds.MinX; x < tile.Bounds.MaxX; x++ {
			var accum core.Vec3

			for s := 0; s < r.SamplesPerPixel; s++ {
				u := (float64(x) + sampler.Get1D()) / float64(r.Width)
				v := (float64(r.Height-1-y) + sampler.Get1D()) / float64(r.Height)
				ray := r.Camera.GetRay(u, v)

				radiance := r.Estimator.L(ray, 0, sampler)
				if !radiance.IsFinite() || radiance.HasNegative() {
					if r.Logger != nil {
						r.Logger.Warningf("renderer: degenerate radiance at pixel (%d,%d), discarding sample", x, y)
					}
					continue
				}
				accum = accum.Add(radiance)
			}

			r.pixels[y*r.Width+x] = accum.Multiply(1.0 / float64(r.SamplesPerPixel))
		}
	}
}

// Pixels returns the rendered linear-radiance framebuffer, row-major
// with row 0 at the top of the image.
func (r *Renderer) Pixels() []core.Vec3 { return r.pixels }
