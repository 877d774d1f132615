package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/cruzec/conways-game-of-life/internal/app"
	"github.com/cruzec/conways-game-of-life/internal/console"
	"github.com/cruzec/conways-game-of-life/internal/sims/life"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gameoflife: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := console.NewSession(life.New(), os.Stdin, os.Stdout)
	var err error
	if cfg.Auto > 0 {
		err = session.Autoplay(ctx, cfg.Count, cfg.Auto, time.Second/time.Duration(cfg.TPS))
	} else {
		err = session.Run(cfg.Count)
	}
	if err != nil {
		log.Fatal(err)
	}
}
