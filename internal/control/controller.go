// Package control owns the session state and translates commands and input
// into board edits and simulation steps.
package control

import (
	"fmt"

	"mad-life/internal/core"
	"mad-life/internal/input"
	"mad-life/internal/sims/life"
)

// Options configures a Controller.
type Options struct {
	Period  float64
	Seed    int64
	Density float64
}

// DefaultOptions returns the settings a fresh session starts with.
func DefaultOptions() Options {
	return Options{Period: core.DefaultPeriod, Seed: 42, Density: 0.25}
}

// Controller drives one Life board from discrete commands and per-frame input.
// It is not safe for concurrent use; frontends call it from their update loop.
type Controller struct {
	life   *life.Life
	mapper *input.Mapper
	state  State
	status string

	seed    int64
	density float64

	// OnStatus, when set, receives the refreshed status after every command.
	OnStatus func(status string)
}

// New returns a paused Controller for the provided board and mapper.
func New(l *life.Life, m *input.Mapper, opts Options) *Controller {
	if opts.Density < 0 {
		opts.Density = 0
	}
	if opts.Density > 1 {
		opts.Density = 1
	}
	c := &Controller{
		life:    l,
		mapper:  m,
		state:   NewState(opts.Period),
		seed:    opts.Seed,
		density: opts.Density,
	}
	c.status = Status(c.state)
	return c
}

// Life returns the board being driven.
func (c *Controller) Life() *life.Life { return c.life }

// Mapper returns the pointer mapper.
func (c *Controller) Mapper() *input.Mapper { return c.mapper }

// State returns a copy of the current session state.
func (c *Controller) State() State { return c.state }

// Status returns the most recently computed status text.
func (c *Controller) Status() string { return c.status }

// Summary returns a one-line generation and population counter.
func (c *Controller) Summary() string {
	return fmt.Sprintf("Gen: %d  Pop: %d", c.life.Generation(), c.life.Population())
}

// TogglePause switches between paused and running.
func (c *Controller) TogglePause() string {
	c.state.Paused = !c.state.Paused
	return c.refresh()
}

// ToggleDrawMode switches between draw and erase.
func (c *Controller) ToggleDrawMode() string {
	c.state.Mode = c.state.Mode.Toggle()
	return c.refresh()
}

// IncreaseSpeed handles speed_up by adding one PeriodStep to the update period.
func (c *Controller) IncreaseSpeed() string {
	c.state.Clock.AdjustPeriod(core.PeriodStep)
	return c.refresh()
}

// DecreaseSpeed handles speed_down by removing one PeriodStep from the update
// period, never going below core.MinPeriod.
func (c *Controller) DecreaseSpeed() string {
	c.state.Clock.AdjustPeriod(-core.PeriodStep)
	return c.refresh()
}

// Clear empties the board. Like drawing it only applies while paused.
func (c *Controller) Clear() bool {
	if !c.state.Paused {
		return false
	}
	c.life.Clear()
	return true
}

// Randomize fills the board with a seeded soup while paused. Each call uses
// the next seed so repeated presses give different boards.
func (c *Controller) Randomize() bool {
	if !c.state.Paused {
		return false
	}
	c.life.Randomize(c.seed, c.density)
	c.seed++
	return true
}

// StepOnce advances exactly one generation while paused.
func (c *Controller) StepOnce() bool {
	if !c.state.Paused {
		return false
	}
	c.life.Step()
	return true
}

// Paint applies the current mode to the cell under the pointer.
func (c *Controller) Paint() bool {
	return c.mapper.Paint(c.life.Grid(), c.state.Paused, c.state.Mode)
}

// Advance feeds elapsed time to the clock while running and returns the
// number of generations stepped.
func (c *Controller) Advance(deltaSeconds float64) int {
	if c.state.Paused {
		return 0
	}
	return c.state.Clock.Advance(deltaSeconds, c.life.Step)
}

// Update runs one frame: pointer tracking, edge commands, manual painting,
// then clock advancement. It returns the number of generations stepped.
func (c *Controller) Update(src input.Source, deltaSeconds float64) int {
	if px, py, ok := src.Pointer(); ok {
		c.mapper.OnPointerMove(px, py)
	}

	if src.JustPressed(input.Start) {
		c.TogglePause()
	}
	if src.JustPressed(input.ToggleErase) {
		c.ToggleDrawMode()
	}
	if src.JustPressed(input.SpeedUp) {
		c.IncreaseSpeed()
	}
	if src.JustPressed(input.SpeedDown) {
		c.DecreaseSpeed()
	}
	if src.JustPressed(input.Clear) {
		c.Clear()
	}
	if src.JustPressed(input.Randomize) {
		c.Randomize()
	}

	stepped := 0
	if src.JustPressed(input.StepOnce) && c.StepOnce() {
		stepped++
	}
	if src.Pressed(input.Draw) {
		c.Paint()
	}
	return stepped + c.Advance(deltaSeconds)
}

func (c *Controller) refresh() string {
	c.status = Status(c.state)
	if c.OnStatus != nil {
		c.OnStatus(c.status)
	}
	return c.status
}
