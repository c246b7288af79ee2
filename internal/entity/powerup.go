package entity

import "github.com/vovakirdan/dungeon-jump/internal/core"

// Powerup waits on its platform until the player touches it.
type Powerup struct {
	Rect core.Rect
	Kind PowerupKind
}

// NewPowerup stands a w×h powerup on top of the platform rect, centered on it.
func NewPowerup(on core.Rect, w, h int, kind PowerupKind) *Powerup {
	return &Powerup{
		Rect: core.NewRectBottomCenter(on.CenterX(), on.Y, w, h),
		Kind: kind,
	}
}

// Origin is where the player stood when the run began. It scrolls with the
// world, so its distance to the player is the height climbed.
type Origin struct {
	X, Y int
}

// NewOrigin marks the player's starting center.
func NewOrigin(x, y int) Origin {
	return Origin{X: x, Y: y}
}

// Climbed returns how far above the origin a point at y is.
func (o Origin) Climbed(y int) int {
	return o.Y - y
}
