package entity

import "github.com/vovakirdan/dungeon-jump/internal/core"

// Enemy walks back and forth across the screen on behalf of its platform.
type Enemy struct {
	Rect   core.Rect
	Speed  int
	Facing Facing
	Frame  int
}

// NewEnemy stands a w×h enemy on top of the platform rect, centered on it.
func NewEnemy(on core.Rect, w, h, speed int, facing Facing) *Enemy {
	return &Enemy{
		Rect:   core.NewRectBottomCenter(on.CenterX(), on.Y, w, h),
		Speed:  speed,
		Facing: facing,
	}
}

// Move advances the enemy one frame and turns it around once it has walked
// past a screen edge.
func (e *Enemy) Move(screenW int) {
	e.Frame++
	if e.Facing == FacingRight {
		e.Rect.Translate(e.Speed, 0)
		if e.Rect.Right() > screenW {
			e.Facing = FacingLeft
		}
		return
	}
	e.Rect.Translate(-e.Speed, 0)
	if e.Rect.X < 0 {
		e.Facing = FacingRight
	}
}

// AnimFrame returns the index into the enemy's run cycle.
func (e *Enemy) AnimFrame() int {
	return e.Frame / 4 % 4
}
