package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cell is the binary state of a single grid cell.
type Cell uint8

const (
	// Dead is the zero state every cell starts in.
	Dead Cell = 0
	// Alive marks a populated cell.
	Alive Cell = 1
)

// String returns "alive" or "dead".
func (c Cell) String() string {
	if c == Dead {
		return "dead"
	}
	return "alive"
}

// Sim defines what a frontend needs from a running automaton.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Cells() []uint8
}
