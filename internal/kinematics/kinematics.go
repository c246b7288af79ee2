// Package kinematics computes the per-frame vertical displacement of a jump or
// fall arc. The same delta scrolls the whole world, so the player appears fixed
// while platforms move.
package kinematics

import "github.com/vovakirdan/dungeon-jump/internal/core"

// Mode selects which arc equation applies.
type Mode int

const (
	Rising  Mode = iota // dy = v_y·t − ½·g·t²
	Falling             // dy = −½·g·t²
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// Model holds the launch speed, gravity and time step of an arc.
type Model struct {
	VY       float64 // Launch speed
	G        float64 // Gravity
	DT       float64 // Time added per airborne frame
	Terminal int     // Displacement used once the fall gets steeper than 1.6·v_y
}

// Displacement returns the rounded pixel delta for elapsed time t.
// Positive values move the world down (the player rises).
func (m Model) Displacement(t float64, mode Mode) int {
	var raw float64
	switch mode {
	case Rising:
		raw = m.VY*t - 0.5*m.G*t*t
	case Falling:
		raw = -0.5 * m.G * t * t
	}

	dy := core.Round(raw)
	if float64(dy) < -1.6*m.VY {
		return m.Terminal
	}
	return dy
}

// Advance adds one time step to t and returns the new time and the
// displacement for it.
func (m Model) Advance(t float64, mode Mode) (float64, int) {
	t += m.DT
	return t, m.Displacement(t, mode)
}
