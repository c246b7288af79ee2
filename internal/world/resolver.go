package world

import "github.com/vovakirdan/dungeon-jump/internal/entity"

// resolve runs the landing scan and the per-platform interactions, lowest
// platform first. The landing scan stops at the first platform that reports a
// fall-off or a landing, so no platform can register both in one frame.
func (w *World) resolve() {
	scanning := true
	for _, pl := range w.platforms {
		if scanning {
			if w.FallsOff(pl) || w.LandsOn(pl, pl.LastTop) {
				scanning = false
			}
		}
		pl.LastTop = pl.Rect.Y

		w.collect(pl)
		w.updateEnemy(pl)
		w.updateEnemyFire(pl)
	}
}

// FallsOff reports whether the player just walked off pl: the horizontal
// extents no longer touch while the player's feet are exactly at pl's top.
// A grounded player starts falling; a jumping player keeps its arc. The check
// is exact because landings snap the player onto the platform top and a
// grounded player never scrolls.
func (w *World) FallsOff(pl *entity.Platform) bool {
	p := w.player
	if !p.Alive() || p.Rect.OverlapsHorizontally(pl.Rect) || p.Rect.Bottom() != pl.Rect.Y {
		return false
	}
	if p.State == entity.Grounded {
		p.State = entity.Falling
		p.T = 0
		w.emit(Event{Kind: EventFallOff})
	}
	return true
}

// LandsOn reports whether the airborne player's feet crossed pl's top between
// the previous frame (lastTop) and this one. On landing every other entity
// is shifted so that the player stands exactly on the platform, cancelling
// the rounding of the arc.
func (w *World) LandsOn(pl *entity.Platform, lastTop int) bool {
	p := w.player
	if !p.Airborne() || !p.Rect.OverlapsHorizontally(pl.Rect) {
		return false
	}
	bottom := p.Rect.Bottom()
	if bottom < pl.Rect.Y || bottom > lastTop {
		return false
	}

	if dy := pl.Rect.Y - bottom; dy != 0 {
		w.shift(-dy)
	}
	p.Ground()
	w.emit(Event{Kind: EventLand})
	return true
}

// FallsBelow sinks the player once it is below the lowest platform and
// reports whether it has left the screen.
func (w *World) FallsBelow(lowest *entity.Platform) bool {
	p := w.player
	if p.Rect.Y <= lowest.Rect.Bottom() {
		return false
	}
	p.Rect.Translate(0, w.cfg.World.FallNudge)
	return p.Rect.Y >= w.cfg.World.Height
}

func (w *World) collect(pl *entity.Platform) {
	pu := pl.Powerup
	if pu == nil || !w.player.Rect.Intersects(pu.Rect) {
		return
	}
	w.player.Inventory.Add(pu.Kind)
	pl.Powerup = nil
	w.emit(Event{Kind: EventPowerup, Powerup: pu.Kind})
}

func (w *World) updateEnemy(pl *entity.Platform) {
	e := pl.Enemy
	if e == nil {
		return
	}
	e.Move(w.cfg.World.Width)

	if f := w.player.Projectile; f != nil && f.Hits(e.Rect) {
		pl.Enemy = nil
		w.score += w.cfg.Physics.KillScore
		w.emit(Event{Kind: EventEnemyKilled, Score: w.score})
		return
	}
	if w.player.Rect.Intersects(e.Rect) {
		w.die(CauseEnemy)
	}
}

func (w *World) updateEnemyFire(pl *entity.Platform) {
	f := pl.Projectile
	if f == nil {
		if pl.Enemy != nil && w.rng.Intn(w.params.ProjectileChance) == 0 {
			w.enemyFire(pl)
		}
		return
	}

	f.Move()
	switch {
	case f.Hits(w.player.Rect):
		if w.player.Inventory.Lives > 1 {
			w.player.Inventory.Lives--
			pl.Projectile = nil
			w.emit(Event{Kind: EventLifeLost})
			return
		}
		w.die(CauseProjectile)
	case f.OutOfBounds(w.cfg.World.Width, w.cfg.World.Height):
		pl.Projectile = nil
	}
}
