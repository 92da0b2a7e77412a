package life

import "bytes"

// RunUntilSettled steps at most maxSteps generations and stops early once the
// board repeats with period 1 or 2. It returns the generation at which the
// repeat was first seen and whether the board settled.
func (l *Life) RunUntilSettled(maxSteps int) (uint64, bool) {
	prev := append([]uint8(nil), l.Cells()...)
	var older []uint8
	for i := 0; i < maxSteps; i++ {
		l.Step()
		cur := l.Cells()
		if bytes.Equal(cur, prev) || (older != nil && bytes.Equal(cur, older)) {
			return l.generation, true
		}
		older, prev = prev, append(older[:0], cur...)
	}
	return l.generation, false
}
