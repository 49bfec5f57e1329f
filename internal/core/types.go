package core

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}

// GridSize derives the grid dimensions for a surface of the given pixel size.
// Partial cells at the right and bottom edges are dropped.
func GridSize(surfaceW, surfaceH, cellSize int) Size {
	if cellSize <= 0 || surfaceW <= 0 || surfaceH <= 0 {
		return Size{}
	}
	return Size{W: surfaceW / cellSize, H: surfaceH / cellSize}
}
