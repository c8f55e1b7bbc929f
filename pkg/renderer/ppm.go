package renderer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mkbrown/photonmap/pkg/core"
)

// WritePPM writes pixels (row-major, row 0 at the top, linear
// radiance) as a raw 8-bit binary PPM (P6), gamma-corrected at
// exponent 2.2.
func WritePPM(w io.Writer, pixels []core.Vec3, width, height int) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixels[y*width+x].GammaCorrect(2.2).Clamp(0, 1)
			row[x*3+0] = byte(255*c.X + 0.5)
			row[x*3+1] = byte(255*c.Y + 0.5)
			row[x*3+2] = byte(255*c.Z + 0.5)
		}
		if _, err := buf.Write(row); err != nil {
			return err
		}
	}

	return buf.Flush()
}
