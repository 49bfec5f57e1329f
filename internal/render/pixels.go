package render

import (
	"image"
	"image/color"

	"github.com/fandiandrian/Cellular-Automata/internal/core"
)

var (
	// On is the color of a live cell.
	On = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Off is the color of a dead cell.
	Off = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// RenderGeneration paints gen as cellSize×cellSize blocks into a new image of
// Cols*cellSize by Rows*cellSize pixels. An empty generation or a
// non-positive cell size yields an empty image.
func RenderGeneration(gen core.Generation, cellSize int) *image.RGBA {
	if gen.Empty() || cellSize <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	img := image.NewRGBA(image.Rect(0, 0, gen.Cols()*cellSize, gen.Rows()*cellSize))
	Fill(img, gen, cellSize)
	return img
}

// Fill paints gen into dst, which must be exactly Cols*cellSize by
// Rows*cellSize pixels; otherwise dst is left untouched and Fill reports false.
func Fill(dst *image.RGBA, gen core.Generation, cellSize int) bool {
	if dst == nil || gen.Empty() || cellSize <= 0 {
		return false
	}
	b := dst.Bounds()
	if b.Dx() != gen.Cols()*cellSize || b.Dy() != gen.Rows()*cellSize {
		return false
	}
	fillBlockRGBA(dst.Pix, dst.Stride, gen.Cells(), gen.Cols(), cellSize, On, Off)
	return true
}

// fillBlockRGBA converts binary cell data (0/1) into cellSize×cellSize blocks
// of RGBA pixels in buf. The first pixel row of each block is written
// directly; the remaining rows are copies of it.
func fillBlockRGBA(buf []byte, stride int, cells []uint8, cols, cellSize int, on, off color.RGBA) {
	rowBytes := cols * cellSize * 4
	for i, c := range cells {
		x, y := i%cols, i/cols
		col := off
		if c != 0 {
			col = on
		}
		base := y*cellSize*stride + x*cellSize*4
		for j := 0; j < cellSize; j++ {
			p := base + j*4
			buf[p+0] = col.R
			buf[p+1] = col.G
			buf[p+2] = col.B
			buf[p+3] = col.A
		}
	}
	for y := 0; y < len(cells)/cols; y++ {
		top := y * cellSize * stride
		for j := 1; j < cellSize; j++ {
			start := top + j*stride
			copy(buf[start:start+rowBytes], buf[top:top+rowBytes])
		}
	}
}
