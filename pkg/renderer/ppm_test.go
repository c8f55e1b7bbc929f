package renderer

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/mkbrown/photonmap/pkg/core"
)

func TestWritePPMHeaderAndSize(t *testing.T) {
	width, height := 2, 1
	pixels := []core.Vec3{core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)}

	var buf bytes.Buffer
	if err := WritePPM(&buf, pixels, width, height); err != nil {
		t.Fatal(err)
	}

	wantHeader := fmt.Sprintf("P6\n%d %d\n255\n", width, height)
	got := buf.Bytes()
	if !bytes.HasPrefix(got, []byte(wantHeader)) {
		t.Fatalf("expected header %q, got %q", wantHeader, got[:len(wantHeader)])
	}

	body := got[len(wantHeader):]
	if len(body) != width*height*3 {
		t.Fatalf("expected %d body bytes, got %d", width*height*3, len(body))
	}
	// pure red at full radiance should saturate the red channel after
	// gamma correction and clamp the others to zero.
	if body[0] != 255 || body[1] != 0 || body[2] != 0 {
		t.Fatalf("unexpected pixel 0 bytes: %v", body[0:3])
	}
}

func TestWritePPMClampsOutOfRangeRadiance(t *testing.T) {
	pixels := []core.Vec3{core.NewVec3(5, -1, 0.5)}
	var buf bytes.Buffer
	if err := WritePPM(&buf, pixels, 1, 1); err != nil {
		t.Fatal(err)
	}
	body := buf.Bytes()[len("P6\n1 1\n255\n"):]
	if body[0] != 255 {
		t.Fatalf("expected radiance > 1 to clamp to 255, got %d", body[0])
	}
	if body[1] != 0 {
		t.Fatalf("expected negative radiance to clamp to 0, got %d", body[1])
	}
}
