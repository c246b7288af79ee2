// Package entity defines the simulation's entities and their runtime state.
// Ownership is a tree: the world owns the player and the platforms, a
// platform owns at most one enemy, powerup and projectile, and the player owns
// at most one projectile.
package entity

import (
	"github.com/vovakirdan/dungeon-jump/internal/assets"
	"github.com/vovakirdan/dungeon-jump/internal/core"
	"github.com/vovakirdan/dungeon-jump/internal/kinematics"
)

// VerticalState is the player's vertical motion state. Exactly one value
// drives vertical motion at a time.
type VerticalState int

const (
	Grounded VerticalState = iota
	Jumping
	Falling
	Dead
)

// String returns the state name.
func (s VerticalState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Facing is a horizontal direction. Its value indexes two-frame poses.
type Facing int

const (
	FacingRight Facing = assets.FaceRight
	FacingLeft  Facing = assets.FaceLeft
)

// Player is the controlled character. The player never moves vertically on
// its own; vertical motion scrolls the rest of the world instead.
type Player struct {
	Rect       core.Rect
	VX         int              // Horizontal speed per frame
	Arc        kinematics.Model // Jump and fall arc
	T          float64          // Time since the current arc began; 0 while grounded
	State      VerticalState
	Stationary bool
	Facing     Facing
	Frame      int // Run animation counter; reset while stationary
	Inventory  Inventory
	Projectile *Projectile // Live fireball, if any
	Character  *assets.Character
}

// NewPlayer places a w×h player with its bottom edge at bottom
// and its center at cx. The player starts grounded, facing right, with one
// life.
func NewPlayer(cx, bottom, w, h, vx int, arc kinematics.Model, character *assets.Character) *Player {
	return &Player{
		Rect:       core.NewRectBottomCenter(cx, bottom, w, h),
		VX:         vx,
		Arc:        arc,
		State:      Grounded,
		Stationary: true,
		Facing:     FacingRight,
		Inventory:  Inventory{Lives: 1},
		Character:  character,
	}
}

// Airborne reports whether the player is jumping or falling.
func (p *Player) Airborne() bool {
	return p.State == Jumping || p.State == Falling
}

// Alive reports whether the player is not dead.
func (p *Player) Alive() bool {
	return p.State != Dead
}

// Ground puts the player on a platform.
func (p *Player) Ground() {
	p.State = Grounded
	p.T = 0
}

// Jump starts a new arc. From the ground it always succeeds; in the air it
// spends a double jump charge. jumped is false when nothing happened; spent
// reports whether a charge was used.
func (p *Player) Jump() (jumped, spent bool) {
	switch p.State {
	case Grounded:
		p.State = Jumping
		p.T = 0
		return true, false
	case Jumping, Falling:
		if p.Inventory.DoubleJump <= 0 {
			return false, false
		}
		p.Inventory.DoubleJump--
		p.State = Jumping
		p.T = 0
		return true, true
	default:
		return false, false
	}
}

// Displacement advances the arc by one time step and returns the world
// scroll for this frame. A grounded or dead player does not scroll.
func (p *Player) Displacement() int {
	var dy int
	switch p.State {
	case Jumping:
		p.T, dy = p.Arc.Advance(p.T, kinematics.Rising)
	case Falling:
		p.T, dy = p.Arc.Advance(p.T, kinematics.Falling)
	}
	return dy
}

// Walk moves the player horizontally by dir·VX (dir is -1, 0 or 1),
// wrapping around the screen edges instead of stopping at them.
func (p *Player) Walk(dir, screenW int) {
	if dir == 0 {
		p.Frame = 0
		p.Stationary = true
		return
	}

	p.Rect.Translate(dir*p.VX, 0)
	p.Frame++
	p.Stationary = false

	if dir < 0 {
		p.Facing = FacingLeft
		if p.Rect.CenterX() < 0 {
			p.Rect.SetRight(screenW + p.Rect.W/2)
		}
	} else {
		p.Facing = FacingRight
		if p.Rect.CenterX() > screenW {
			p.Rect.X = -p.Rect.W / 2
		}
	}
}

// Sprite returns the animation frame to draw.
func (p *Player) Sprite() assets.Frame {
	c := p.Character
	if c == nil {
		return ""
	}
	switch {
	case p.Airborne():
		return c.Jump[p.Facing]
	case p.Stationary:
		return c.Idle[p.Facing]
	case p.Facing == FacingRight:
		return c.RunRight[p.Frame/5%4]
	default:
		return c.RunLeft[p.Frame/5%4]
	}
}
