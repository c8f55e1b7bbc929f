package renderer

// Bounds is a half-open pixel rectangle [MinX,MaxX) x [MinY,MaxY).
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Tile is one unit of camera-pass work: a rectangular, non-overlapping
// region of the image a single worker renders without needing to
// coordinate with any other worker. Index is assigned at creation time,
// in scan order, and is fixed for the life of the tile regardless of
// which worker goroutine later dequeues it: the tile's RNG stream is
// derived from Index rather than from the goroutine that renders it, so
// a run's output does not depend on scheduling order.
type Tile struct {
	Bounds Bounds
	Index  int
}

// MakeTiles partitions a width x height image into tileSize x tileSize
// tiles (the final row/column may be smaller), numbering them in scan
// order.
func MakeTiles(width, height, tileSize int) []Tile {
	var tiles []Tile
	index := 0
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			maxX := x + tileSize
			if maxX > width {
				maxX = width
			}
			maxY := y + tileSize
			if maxY > height {
				maxY = height
			}
			tiles = append(tiles, Tile{Bounds: Bounds{MinX: x, MinY: y, MaxX: maxX, MaxY: maxY}, Index: index})
			index++
		}
	}
	return tiles
}
