package ui

import "mad-life/internal/input"

// modeButtonLabel names the mode a click on the mode button switches to.
func modeButtonLabel(current input.Mode) string {
	return "Switch to " + current.Toggle().String()
}
