package core

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a coordinate falls outside the grid extent.
var ErrOutOfRange = errors.New("coordinate out of range")

// Grid stores a fixed-size 2D field of binary cells in row-major order.
// Anything outside [0,W)x[0,H) is treated as dead and never wraps.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice (0 dead, 1 alive) for renderers.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the state at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Dead, g.rangeErr(x, y)
	}
	return Cell(g.data[g.Index(x, y)]), nil
}

// Set overwrites the single cell at (x, y). Any non-dead state is stored as Alive.
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return g.rangeErr(x, y)
	}
	v := uint8(0)
	if c != Dead {
		v = 1
	}
	g.data[g.Index(x, y)] = v
	return nil
}

// Alive reports whether (x, y) holds a live cell, treating out-of-range as dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[g.Index(x, y)] != 0
}

// CountAliveNeighbors counts live cells among the eight surrounding (x, y).
// The center cell is never counted.
func (g *Grid) CountAliveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

func (g *Grid) rangeErr(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, g.W, g.H)
}
