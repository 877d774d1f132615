//go:build ebiten

package app

import (
	"image/color"

	"github.com/cruzec/conways-game-of-life/internal/core"
	"github.com/cruzec/conways-game-of-life/internal/render"
	"github.com/cruzec/conways-game-of-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	count int
	scale int
	auto  bool
}

// New constructs a Game for a simulation already seeded with count.
func New(sim core.Sim, count, scale, tps int) *Game {
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(),
		hud:      ui.NewHUD(sim, count),
		pacer:    core.NewFixedStep(tps),
		onColor:  color.White,
		offColor: color.Black,
		count:    count,
		scale:    scale,
	}
}

// Update handles key presses and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.auto = !g.auto
		g.pacer.Reset()
		g.hud.SetAuto(g.auto)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sim.Seed(g.count); err != nil {
			return err
		}
	}

	step := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyN)
	if g.auto && g.pacer.ShouldStep() {
		step = true
	}
	if step {
		g.sim.Step()
	}
	return nil
}

// Draw renders the board and the status bar beneath it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Board(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, core.Rows*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

// ScreenSize returns the window size needed for the board plus HUD.
func (g *Game) ScreenSize() (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + ui.Height
}
