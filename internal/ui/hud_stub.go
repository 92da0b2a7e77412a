//go:build !ebiten

package ui

import (
	"mad-life/internal/control"
	"mad-life/internal/input"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*control.Controller, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) []input.Action { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}

// MinHeight is zero in the headless build.
func (h *HUD) MinHeight() int { return 0 }
