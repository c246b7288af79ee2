package entity

import "github.com/vovakirdan/dungeon-jump/internal/core"

// Platform is a ledge the player can stand on.
type Platform struct {
	Rect       core.Rect
	LastTop    int // Top edge at the end of the previous frame
	Enemy      *Enemy
	Powerup    *Powerup
	Projectile *Projectile // Fired by Enemy
}

// NewPlatform creates a platform of the given size centered on (cx, cy).
func NewPlatform(cx, cy, w, h int) *Platform {
	r := core.NewRectCentered(cx, cy, w, h)
	return &Platform{Rect: r, LastTop: r.Y}
}

// Shift moves the platform and everything it owns vertically.
func (p *Platform) Shift(dy int) {
	p.Rect.Translate(0, dy)
	if p.Enemy != nil {
		p.Enemy.Rect.Translate(0, dy)
	}
	if p.Powerup != nil {
		p.Powerup.Rect.Translate(0, dy)
	}
	if p.Projectile != nil {
		p.Projectile.Rect.Translate(0, dy)
	}
}

// Clear drops everything the platform owns.
func (p *Platform) Clear() {
	p.Enemy = nil
	p.Powerup = nil
	p.Projectile = nil
}
