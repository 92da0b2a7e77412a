// Package input maps pointer positions and named actions onto grid edits.
package input

// Action names a discrete control delivered by a frontend.
type Action string

const (
	// Start toggles between paused and running. Edge-triggered.
	Start Action = "start"
	// ToggleErase flips between draw and erase mode. Edge-triggered.
	ToggleErase Action = "toggle_erase"
	// SpeedUp lengthens the update period by one step. Edge-triggered.
	SpeedUp Action = "speed_up"
	// SpeedDown shortens the update period by one step. Edge-triggered.
	SpeedDown Action = "speed_down"
	// Draw paints or erases under the pointer while held. Level-triggered.
	Draw Action = "draw"
	// Clear empties the board. Edge-triggered.
	Clear Action = "clear"
	// Randomize fills the board with a random soup. Edge-triggered.
	Randomize Action = "randomize"
	// StepOnce advances a single generation while paused. Edge-triggered.
	StepOnce Action = "step"
)

// Source is the per-tick view of an input device. JustPressed must report an
// edge action at most once per press; Pressed reports level state every tick
// the action is held.
type Source interface {
	// Pointer returns the pointer position in pixels and whether it is known.
	Pointer() (x, y float64, ok bool)
	JustPressed(a Action) bool
	Pressed(a Action) bool
}

// Mode selects what a draw action writes.
type Mode uint8

const (
	// ModeDraw sets cells alive.
	ModeDraw Mode = iota
	// ModeErase sets cells dead.
	ModeErase
)

// String returns the label shown in the status text.
func (m Mode) String() string {
	if m == ModeErase {
		return "Erase"
	}
	return "Draw"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeErase {
		return ModeDraw
	}
	return ModeErase
}
