//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/fandiandrian/Cellular-Automata/internal/core"
)

const (
	panelPadding = 8
	lineHeight   = 16
	charWidth    = 7
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a translucent statistics panel in the top-left corner.
type HUD struct {
	src   parameterProvider
	lines []string
	panel *ebiten.Image
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src parameterProvider) *HUD {
	return &HUD{src: src}
}

// Update refreshes the cached text from the source.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.lines = Lines(h.src.Parameters())
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	width := 0
	for _, l := range h.lines {
		if len(l) > width {
			width = len(l)
		}
	}
	pw := width*charWidth + 2*panelPadding
	ph := len(h.lines)*lineHeight + 2*panelPadding
	if h.panel == nil || h.panel.Bounds().Dx() != pw || h.panel.Bounds().Dy() != ph {
		h.panel = ebiten.NewImage(pw, ph)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, l := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 4
		text.Draw(h.panel, l, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
