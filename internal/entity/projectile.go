package entity

import (
	"math"

	"github.com/vovakirdan/dungeon-jump/internal/core"
)

// Projectile is a fireball. Player fireballs are aimed; enemy fireballs drop
// straight down.
type Projectile struct {
	Rect   core.Rect
	VX, VY int
	Fresh  bool // Not yet seen inside the screen
}

// NewProjectile creates a w×h projectile centered on (cx, cy).
func NewProjectile(cx, cy, w, h, vx, vy int) *Projectile {
	return &Projectile{
		Rect:  core.NewRectCentered(cx, cy, w, h),
		VX:    vx,
		VY:    vy,
		Fresh: true,
	}
}

// Aim returns the velocity of a fireball fired from (fromX, fromY) toward
// (toX, toY). The offset is divided by divisor and, when slower than
// minSpeed, scaled up to it. A zero offset fires straight up.
func Aim(fromX, fromY, toX, toY int, divisor, minSpeed float64) (int, int) {
	vx := float64(toX-fromX) / divisor
	vy := float64(toY-fromY) / divisor

	norm := math.Hypot(vx, vy)
	switch {
	case norm == 0:
		vx, vy = 0, -minSpeed
	case norm < minSpeed:
		vx *= minSpeed / norm
		vy *= minSpeed / norm
	}
	return core.Round(vx), core.Round(vy)
}

// Move advances the projectile by its velocity.
func (p *Projectile) Move() {
	p.Rect.Translate(p.VX, p.VY)
}

// Hits reports whether the projectile overlaps r.
func (p *Projectile) Hits(r core.Rect) bool {
	return p.Rect.Intersects(r)
}

// OutOfBounds reports whether the projectile has left a w×h screen. A fresh
// projectile still above the screen is kept, so enemies on platforms above
// the visible area can fire down into it.
func (p *Projectile) OutOfBounds(w, h int) bool {
	if p.Fresh && p.Rect.Bottom() <= 0 {
		return false
	}
	p.Fresh = false

	return p.Rect.X >= w || p.Rect.Right() <= 0 ||
		p.Rect.Y >= h || p.Rect.Bottom() <= 0
}
