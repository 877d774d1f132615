//go:build ebiten

package ui

import (
	"image/color"

	"github.com/cruzec/conways-game-of-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const panelPadding = 4

// HUD renders the status bar below the simulation view.
type HUD struct {
	sim   core.Sim
	count int
	auto  bool
	panel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim, count int) *HUD {
	return &HUD{sim: sim, count: count}
}

// SetAuto records whether the game is stepping automatically.
func (h *HUD) SetAuto(auto bool) { h.auto = auto }

// Draw paints the status bar starting at pixel row top.
func (h *HUD) Draw(screen *ebiten.Image, top int) {
	width := screen.Bounds().Dx()
	if width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, Height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	status := StatusLine(h.sim.Generation(), h.sim.Board().Population(), h.count, h.auto)
	text.Draw(h.panel, status, face, panelPadding, 13, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	text.Draw(h.panel, helpLine, face, panelPadding, 28, color.RGBA{R: 160, G: 160, B: 170, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(top))
	screen.DrawImage(h.panel, op)
}
