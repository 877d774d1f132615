package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cruzec/conways-game-of-life/internal/core"
	"github.com/cruzec/conways-game-of-life/internal/render"
)

// Session drives a simulation from line-oriented input.
type Session struct {
	sim core.Sim
	in  *bufio.Reader
	out io.Writer
}

// NewSession wires a simulation to the given input and output streams.
func NewSession(sim core.Sim, in io.Reader, out io.Writer) *Session {
	return &Session{sim: sim, in: bufio.NewReader(in), out: out}
}

// start prints the banner and seeds the simulation. A zero count is read
// from input.
func (s *Session) start(count int) error {
	if _, err := fmt.Fprintln(s.out, banner); err != nil {
		return err
	}
	if count == 0 {
		n, err := ReadSeedCount(s.in, s.out)
		if err != nil {
			return err
		}
		count = n
	}
	return s.sim.Seed(count)
}

// Run shows one generation per line of input until a line starting with q
// or Q, or the end of input. The generation computed before the quitting
// prompt is never shown.
func (s *Session) Run(count int) error {
	if err := s.start(count); err != nil {
		return err
	}
	for {
		if err := render.WriteText(s.out, s.sim.Board()); err != nil {
			return err
		}
		s.sim.Step()
		if _, err := fmt.Fprintln(s.out, nextPrompt); err != nil {
			return err
		}
		line, err := s.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read response: %w", err)
		}
		if wantsQuit(line) || err == io.EOF {
			break
		}
	}
	_, err := fmt.Fprintln(s.out, exitMessage)
	return err
}
