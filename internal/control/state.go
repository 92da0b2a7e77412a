package control

import (
	"fmt"
	"strconv"

	"mad-life/internal/core"
	"mad-life/internal/input"
)

// State is the run-mode, draw-mode and timing state of a session.
type State struct {
	Paused bool
	Mode   input.Mode
	Clock  core.Clock
}

// NewState returns the initial state: paused, drawing, at the given period.
func NewState(period float64) State {
	return State{Paused: true, Mode: input.ModeDraw, Clock: *core.NewClock(period)}
}

// Status formats the three-line status summary for s.
func Status(s State) string {
	game := "Live"
	if s.Paused {
		game = "Paused"
	}
	return fmt.Sprintf("Mode: %s\nGame: %s\nPeriod: %ss", s.Mode, game, FormatPeriod(s.Clock.Period()))
}

// FormatPeriod renders a period with the fewest digits needed, e.g. "0.25" or "1".
func FormatPeriod(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
