package renderer

import "testing"

func TestMakeTilesCoversEveryPixelExactlyOnce(t *testing.T) {
	width, height, tileSize := 70, 50, 32
	tiles := MakeTiles(width, height, tileSize)

	covered := make([][]bool, height)
	for y := range covered {
		covered[y] = make([]bool, width)
	}
	for _, tile := range tiles {
		b := tile.Bounds
		if b.MinX < 0 || b.MinY < 0 || b.MaxX > width || b.MaxY > height {
			t.Fatalf("tile %+v out of image bounds", b)
		}
		for y := b.MinY; y < b.MaxY; y++ {
			for x := b.MinX; x < b.MaxX; x++ {
				if covered[y][x] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", x, y)
				}
				covered[y][x] = true
			}
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !covered[y][x] {
				t.Fatalf("pixel (%d,%d) not covered by any tile", x, y)
			}
		}
	}
}

func TestMakeTilesSmallerThanOneTile(t *testing.T) {
	tiles := MakeTiles(10, 10, 32)
	if len(tiles) != 1 {
		t.Fatalf("expected a single tile for an image smaller than tileSize, got %d", len(tiles))
	}
	if tiles[0].Bounds != (Bounds{0, 0, 10, 10}) {
		t.Fatalf("unexpected bounds: %+v", tiles[0].Bounds)
	}
}
