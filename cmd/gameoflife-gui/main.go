//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/cruzec/conways-game-of-life/internal/app"
	"github.com/cruzec/conways-game-of-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Count = 10
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Count == 0 {
		log.Fatal("the GUI needs -count between 1 and 100")
	}

	sim := life.New()
	if err := sim.Seed(cfg.Count); err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Count, cfg.Scale, cfg.TPS)
	w, h := game.ScreenSize()

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
