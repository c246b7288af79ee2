package world

import (
	"github.com/vovakirdan/dungeon-jump/internal/assets"
	"github.com/vovakirdan/dungeon-jump/internal/core"
	"github.com/vovakirdan/dungeon-jump/internal/entity"
)

// Kind is the kind of a drawable entity.
type Kind int

const (
	KindPlatform Kind = iota
	KindPowerup
	KindEnemy
	KindProjectile
	KindPlayer
)

// Sprite is a read-only view of one entity for drawing.
type Sprite struct {
	Kind    Kind
	Rect    core.Rect
	Facing  entity.Facing
	Frame   assets.Frame       // Player and enemy animation frame
	Powerup entity.PowerupKind // KindPowerup only
	Hostile bool               // KindProjectile fired by an enemy
}

// Snapshot is a copy of everything a renderer needs after a step.
type Snapshot struct {
	Width, Height int
	Tick          int
	Score         int
	Scroll        int // How far the world has scrolled down since the start
	State         entity.VerticalState
	Cause         DeathCause
	Paused        bool
	Inventory     entity.Inventory
	Character     *assets.Character
	Player        Sprite
	Sprites       []Sprite // Back to front: platforms, powerups, enemies, projectiles
}

// Snapshot copies the drawable state of the world.
func (w *World) Snapshot() Snapshot {
	p := w.player
	s := Snapshot{
		Width:     w.cfg.World.Width,
		Height:    w.cfg.World.Height,
		Tick:      w.tick,
		Score:     w.score,
		Scroll:    w.origin.Y - w.startY,
		State:     p.State,
		Cause:     w.cause,
		Paused:    w.paused,
		Inventory: p.Inventory,
		Character: p.Character,
		Player: Sprite{
			Kind:   KindPlayer,
			Rect:   p.Rect,
			Facing: p.Facing,
			Frame:  p.Sprite(),
		},
	}

	var powerups, enemies, projectiles []Sprite
	s.Sprites = make([]Sprite, 0, len(w.platforms))
	for _, pl := range w.platforms {
		s.Sprites = append(s.Sprites, Sprite{Kind: KindPlatform, Rect: pl.Rect})
		if pu := pl.Powerup; pu != nil {
			powerups = append(powerups, Sprite{Kind: KindPowerup, Rect: pu.Rect, Powerup: pu.Kind})
		}
		if e := pl.Enemy; e != nil {
			enemies = append(enemies, Sprite{
				Kind:   KindEnemy,
				Rect:   e.Rect,
				Facing: e.Facing,
				Frame:  assets.SpriteOf(assets.SpriteDemon).Frames[e.Facing][e.AnimFrame()],
			})
		}
		if f := pl.Projectile; f != nil {
			projectiles = append(projectiles, Sprite{Kind: KindProjectile, Rect: f.Rect, Hostile: true})
		}
	}
	if f := p.Projectile; f != nil {
		projectiles = append(projectiles, Sprite{Kind: KindProjectile, Rect: f.Rect})
	}

	s.Sprites = append(s.Sprites, powerups...)
	s.Sprites = append(s.Sprites, enemies...)
	s.Sprites = append(s.Sprites, projectiles...)
	return s
}
