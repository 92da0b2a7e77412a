package input

import (
	"math"

	"mad-life/internal/core"
)

// CellAt converts a pixel position into a grid coordinate. Cell 0 covers
// pixels [0, cellSize); a pixel exactly on a multiple of cellSize belongs to
// the following cell.
func CellAt(px, py float64, cellSize int) (int, int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	s := float64(cellSize)
	return int(math.Floor(px / s)), int(math.Floor(py / s))
}

// Mapper tracks the cell under the pointer and applies manual edits.
type Mapper struct {
	cellSize int

	x, y  int
	known bool
}

// NewMapper returns a Mapper for cells cellSize pixels wide.
func NewMapper(cellSize int) *Mapper {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Mapper{cellSize: cellSize}
}

// CellSize returns the pixel size of one cell.
func (m *Mapper) CellSize() int { return m.cellSize }

// OnPointerMove records the cell under the pixel position (px, py).
func (m *Mapper) OnPointerMove(px, py float64) {
	if math.IsNaN(px) || math.IsNaN(py) {
		return
	}
	m.x, m.y = CellAt(px, py, m.cellSize)
	m.known = true
}

// Pointer returns the last recorded cell and whether the pointer has moved yet.
func (m *Mapper) Pointer() (x, y int, ok bool) { return m.x, m.y, m.known }

// Paint writes the mode's state into the cell under the pointer. It does
// nothing while the simulation is running, before the pointer has been seen,
// or when the pointer is off the board. It reports whether a cell changed.
func (m *Mapper) Paint(g *core.Grid, paused bool, mode Mode) bool {
	if !paused || !m.known || !g.InBounds(m.x, m.y) {
		return false
	}
	want := core.Alive
	if mode == ModeErase {
		want = core.Dead
	}
	if prev, _ := g.Get(m.x, m.y); prev == want {
		return false
	}
	g.Cells()[g.Index(m.x, m.y)] = uint8(want)
	return true
}
