// Package term runs the board in a terminal using tcell. Each terminal cell
// is one board cell.
package term

import (
	"github.com/gdamore/tcell/v2"

	"mad-life/internal/input"
)

var runeBindings = map[rune]input.Action{
	' ': input.Start,
	'e': input.ToggleErase,
	'E': input.ToggleErase,
	'+': input.SpeedUp,
	'=': input.SpeedUp,
	'-': input.SpeedDown,
	'c': input.Clear,
	'r': input.Randomize,
	'n': input.StepOnce,
}

var keyBindings = map[tcell.Key]input.Action{
	tcell.KeyEnter: input.Start,
	tcell.KeyUp:    input.SpeedUp,
	tcell.KeyDown:  input.SpeedDown,
}

// Source collects tcell events between ticks and presents them as an
// input.Source. Terminals deliver no key releases, so every key is an edge;
// the mouse button is the only level action.
type Source struct {
	x, y  int
	known bool
	held  bool

	edges map[input.Action]bool
}

// NewSource returns an empty Source.
func NewSource() *Source {
	return &Source{edges: map[input.Action]bool{}}
}

// Handle records ev and reports whether it asks to quit.
func (s *Source) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return true
			}
			if a, ok := runeBindings[ev.Rune()]; ok {
				s.edges[a] = true
			}
		default:
			if a, ok := keyBindings[ev.Key()]; ok {
				s.edges[a] = true
			}
		}
	case *tcell.EventMouse:
		s.x, s.y = ev.Position()
		s.known = true
		s.held = ev.Buttons()&tcell.Button1 != 0
	}
	return false
}

// EndTick drops edge actions once a tick has consumed them.
func (s *Source) EndTick() {
	for a := range s.edges {
		delete(s.edges, a)
	}
}

// Pointer returns the last mouse position in terminal cells.
func (s *Source) Pointer() (float64, float64, bool) {
	return float64(s.x), float64(s.y), s.known
}

// JustPressed reports whether a was pressed since the last tick.
func (s *Source) JustPressed(a input.Action) bool { return s.edges[a] }

// Pressed reports whether a is held. Only input.Draw has level state.
func (s *Source) Pressed(a input.Action) bool { return a == input.Draw && s.held }
