// Package sweep surveys how each seed count evolves over a fixed number of
// generations.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"github.com/cruzec/conways-game-of-life/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

// Options bounds a sweep.
type Options struct {
	MinCount    int
	MaxCount    int
	Generations int
	Workers     int
}

// DefaultOptions covers every accepted seed count.
func DefaultOptions() Options {
	return Options{
		MinCount:    life.MinSeedCount,
		MaxCount:    life.MaxSeedCount,
		Generations: 100,
		Workers:     runtime.NumCPU(),
	}
}

// Result summarises one seed count.
type Result struct {
	Count   int
	Placed  life.Placement
	Initial int
	Final   int
	// StableAt is the first generation whose successor is identical, or -1.
	StableAt int
}

func (r Result) String() string {
	stable := "-"
	if r.StableAt >= 0 {
		stable = fmt.Sprint(r.StableAt)
	}
	return fmt.Sprintf("count=%3d gliders=%2d blocks=%2d initial=%4d final=%4d stable=%s",
		r.Count, r.Placed.Gliders, r.Placed.Blocks, r.Initial, r.Final, stable)
}

// Run simulates every count in [MinCount, MaxCount] independently and returns
// the results ordered by count.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.MinCount < life.MinSeedCount || opts.MaxCount > life.MaxSeedCount || opts.MinCount > opts.MaxCount {
		return nil, fmt.Errorf("%w: range [%d,%d]", life.ErrSeedCount, opts.MinCount, opts.MaxCount)
	}
	if opts.Generations < 0 {
		return nil, fmt.Errorf("sweep: negative generation count %d", opts.Generations)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, opts.MaxCount-opts.MinCount+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range results {
		count := opts.MinCount + i
		slot := &results[i]
		g.Go(func() error {
			res, err := simulate(ctx, count, opts.Generations)
			if err != nil {
				return err
			}
			*slot = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func simulate(ctx context.Context, count, generations int) (Result, error) {
	sim := life.New()
	if err := sim.Seed(count); err != nil {
		return Result{}, err
	}
	res := Result{
		Count:    count,
		Placed:   sim.Placed(),
		Initial:  sim.Board().Population(),
		StableAt: -1,
	}
	for gen := 0; gen < generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if sim.Stable() {
			res.StableAt = sim.Generation()
			break
		}
		sim.Step()
	}
	res.Final = sim.Board().Population()
	return res, nil
}
