package console

import (
	"context"
	"fmt"
	"time"

	"github.com/cruzec/conways-game-of-life/internal/render"

	"github.com/gosuri/uilive"
)

// Autoplay seeds the simulation like Run, then redraws generations in place
// without waiting for input. It stops after the given number of frames or
// when ctx is cancelled.
func (s *Session) Autoplay(ctx context.Context, count, generations int, interval time.Duration) error {
	if err := s.start(count); err != nil {
		return err
	}

	w := uilive.New()
	w.Out = s.out

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

frames:
	for frame := 0; frame < generations; frame++ {
		board := s.sim.Board()
		fmt.Fprintf(w, "Generation %d  Population %d\n", s.sim.Generation(), board.Population())
		if err := render.WriteText(w, board); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if frame == generations-1 {
			break
		}
		s.sim.Step()

		if tick == nil {
			if err := ctx.Err(); err != nil {
				break
			}
			continue
		}
		select {
		case <-ctx.Done():
			break frames
		case <-tick:
		}
	}

	_, err := fmt.Fprintln(s.out, exitMessage)
	return err
}
