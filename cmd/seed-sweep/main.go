package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/cruzec/conways-game-of-life/internal/sweep"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("seed-sweep: ")

	opts := sweep.DefaultOptions()
	flag.IntVar(&opts.MinCount, "min", opts.MinCount, "first seed count")
	flag.IntVar(&opts.MaxCount, "max", opts.MaxCount, "last seed count")
	flag.IntVar(&opts.Generations, "generations", opts.Generations, "generations to simulate per count")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "number of concurrent simulations")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping seed counts %d-%d (%d workers, %d generations)\n",
		opts.MinCount, opts.MaxCount, opts.Workers, opts.Generations)

	start := time.Now()
	results, err := sweep.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}

	best := results[0]
	for _, res := range results {
		fmt.Println(res)
		if res.Final > best.Final {
			best = res
		}
	}
	fmt.Printf("\nLargest final population (elapsed %s): %s\n", time.Since(start).Round(time.Millisecond), best)
}
