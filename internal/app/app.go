//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/fandiandrian/Cellular-Automata/internal/render"
	"github.com/fandiandrian/Cellular-Automata/internal/ui"
)

// Game adapts a Loop to the ebiten.Game interface. ebiten calls Update once
// per tick, which stands in for the refresh-synchronized frame callback.
type Game struct {
	loop    *Loop
	surface *render.Surface
	hud     *ui.HUD
}

// NewGame wires loop to an ebiten-backed surface. hud may be nil.
func NewGame(loop *Loop, surface *render.Surface, hud *ui.HUD) *Game {
	return &Game{loop: loop, surface: surface, hud: hud}
}

// Update runs one cycle.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.loop.Close()
		return ebiten.Termination
	}
	if err := g.loop.Cycle(); err != nil {
		g.loop.Close()
		return err
	}
	g.hud.Update()
	return nil
}

// Draw renders the most recently presented generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.surface.Size()
	if w <= 0 || h <= 0 {
		return outsideWidth, outsideHeight
	}
	return w, h
}
