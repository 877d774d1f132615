//go:build !ebiten

package ui

import "github.com/cruzec/conways-game-of-life/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// SetAuto is a no-op in the headless build.
func (h *HUD) SetAuto(bool) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
