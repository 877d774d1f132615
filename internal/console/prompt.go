package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/cruzec/conways-game-of-life/internal/sims/life"
)

// ErrNoSeedCount is returned when input ends before a valid seed count.
var ErrNoSeedCount = errors.New("no valid seed count before end of input")

const (
	banner        = "This is an implementation of Conway's Game of Life!"
	seedPrompt    = "Enter a starting amount between 1 and 100: "
	invalidPrompt = "Invalid input. Enter a starting amount between 1 and 100: "
	nextPrompt    = "Press ENTER for next generation. (Enter Q to quit)"
	exitMessage   = "Exiting game"
)

// nextToken skips leading whitespace and returns the next run of
// non-whitespace runes. The delimiter is left unread.
func nextToken(in *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if sb.Len() == 0 {
				continue
			}
			return sb.String(), in.UnreadRune()
		}
		sb.WriteRune(r)
	}
}

// discardLine drops everything up to and including the next newline.
func discardLine(in *bufio.Reader) error {
	_, err := in.ReadString('\n')
	if err == io.EOF {
		return nil
	}
	return err
}

// ReadSeedCount prompts until a whole-number token in [1,100] is entered.
// Non-numeric and out-of-range tokens are rejected identically. The rest of
// the line holding the accepted token is discarded.
func ReadSeedCount(in *bufio.Reader, out io.Writer) (int, error) {
	if _, err := fmt.Fprint(out, seedPrompt); err != nil {
		return 0, err
	}
	for {
		tok, err := nextToken(in)
		if err == io.EOF {
			return 0, ErrNoSeedCount
		}
		if err != nil {
			return 0, fmt.Errorf("read seed count: %w", err)
		}
		n, convErr := strconv.Atoi(tok)
		if convErr == nil && n >= life.MinSeedCount && n <= life.MaxSeedCount {
			if err := discardLine(in); err != nil {
				return 0, fmt.Errorf("read seed count: %w", err)
			}
			return n, nil
		}
		if _, err := fmt.Fprintln(out, invalidPrompt); err != nil {
			return 0, err
		}
	}
}

// wantsQuit reports whether a continue/quit response asks to stop.
func wantsQuit(line string) bool {
	return line != "" && (line[0] == 'q' || line[0] == 'Q')
}
