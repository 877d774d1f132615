package ui

import "fmt"

// Height is the pixel height of the status bar drawn below the board.
const Height = 32

const helpLine = "ENTER/N step  SPACE auto  R reseed  Q quit"

// StatusLine formats the first HUD line.
func StatusLine(generation, population, count int, auto bool) string {
	mode := "manual"
	if auto {
		mode = "auto"
	}
	return fmt.Sprintf("gen %d  pop %d  seed %d  [%s]", generation, population, count, mode)
}
