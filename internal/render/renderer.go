//go:build ebiten

package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the drawing surface backing the window: an offscreen image that
// receives each presented frame and is blitted to the screen on Draw.
type Surface struct {
	w, h int
	img  *ebiten.Image
}

// NewSurface allocates a surface of w×h pixels.
func NewSurface(w, h int) *Surface {
	s := &Surface{w: w, h: h}
	if w > 0 && h > 0 {
		s.img = ebiten.NewImage(w, h)
	}
	return s
}

// Present uploads frame into the surface image. Empty frames are ignored.
func (s *Surface) Present(frame *image.RGBA) error {
	if s.img == nil || frame == nil || frame.Bounds().Empty() {
		return nil
	}
	b := frame.Bounds()
	if b.Dx() != s.w || b.Dy() != s.h {
		return fmt.Errorf("frame is %dx%d, surface is %dx%d", b.Dx(), b.Dy(), s.w, s.h)
	}
	s.img.WritePixels(frame.Pix)
	return nil
}

// Draw copies the last presented frame onto dst.
func (s *Surface) Draw(dst *ebiten.Image) {
	if s.img == nil {
		return
	}
	dst.DrawImage(s.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (s *Surface) Size() (int, int) { return s.w, s.h }
