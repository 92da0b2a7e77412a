package life

import (
	"errors"
	"fmt"

	"mad-life/internal/core"
)

var (
	// ErrSizeMismatch is returned when the two generation buffers differ in size.
	ErrSizeMismatch = errors.New("life: buffer sizes differ")
	// ErrAliased is returned when current and next are the same grid.
	ErrAliased = errors.New("life: current and next share a buffer")
)

// Rule returns the next state of a cell with n live neighbors.
// Two neighbors keep the current state, three always produce a live cell.
func Rule(current core.Cell, n int) core.Cell {
	switch n {
	case 2:
		return current
	case 3:
		return core.Alive
	default:
		return core.Dead
	}
}

// Step writes the generation following current into next. Reads touch only
// current and writes touch only next, so iteration order does not matter.
func Step(current, next *core.Grid) error {
	if current == next {
		return ErrAliased
	}
	if current.W != next.W || current.H != next.H {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, current.W, current.H, next.W, next.H)
	}
	step(current, next)
	return nil
}

func step(current, next *core.Grid) {
	src, dst := current.Cells(), next.Cells()
	for y := 0; y < current.H; y++ {
		for x := 0; x < current.W; x++ {
			idx := current.Index(x, y)
			n := current.CountAliveNeighbors(x, y)
			dst[idx] = uint8(Rule(core.Cell(src[idx]), n))
		}
	}
}

var _ core.Sim = (*Life)(nil)

// Life implements Conway's Game of Life on a closed, non-wrapping board.
// It owns a pair of preallocated grids whose roles swap after every step.
type Life struct {
	cur, nxt   *core.Grid
	generation uint64
}

// New returns an all-dead Life board with the provided dimensions.
func New(w, h int) *Life {
	cur := core.NewGrid(w, h)
	return &Life{cur: cur, nxt: core.NewGrid(cur.W, cur.H)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current generation's values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid returns the current generation. The pointer is only valid until the
// next Step.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns the number of steps taken since the last reset.
func (l *Life) Generation() uint64 { return l.generation }

// Population returns the number of live cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
}

// Randomize fills the board with live cells at the given density.
func (l *Life) Randomize(seed int64, density float64) {
	core.NewRNG(seed).FillDensity(l.cur, density)
	l.generation = 0
}

// Step advances the simulation by one generation. The swap happens only after
// next is fully written, so readers never observe a partial generation.
func (l *Life) Step() {
	step(l.cur, l.nxt)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}
