package world

import "github.com/vovakirdan/dungeon-jump/internal/entity"

func (w *World) newPlatform(cx, cy int) *entity.Platform {
	s := w.cfg.Sprites.Platform
	return entity.NewPlatform(cx, cy, s.W, s.H)
}

// recycle replaces the lowest platform once it has scrolled past the bottom
// of the screen by the recycle margin. The new platform is generated above
// the highest one and may carry an enemy and a powerup.
func (w *World) recycle() {
	lowest := w.platforms[0]
	if lowest.Rect.Y <= w.cfg.World.Height+w.cfg.World.RecycleMargin {
		return
	}

	lowest.Clear()
	copy(w.platforms, w.platforms[1:])
	w.platforms[len(w.platforms)-1] = nil

	highest := w.platforms[len(w.platforms)-2]
	pl := w.newPlatform(w.gen.Next(highest.Rect.Center()))

	if w.rng.Intn(w.params.EnemyChance) == 0 {
		facing := entity.FacingLeft
		if w.rng.Intn(2) == 1 {
			facing = entity.FacingRight
		}
		s := w.cfg.Sprites.Enemy
		pl.Enemy = entity.NewEnemy(pl.Rect, s.W, s.H, w.params.EnemySpeed, facing)
	}
	if w.rng.Intn(w.params.PowerupChance) == 0 {
		kind := entity.KindFromRoll(w.rng.Intn(w.cfg.World.PowerupKindMax + 1))
		s := w.cfg.Sprites.Powerup
		pl.Powerup = entity.NewPowerup(pl.Rect, s.W, s.H, kind)
	}

	w.platforms[len(w.platforms)-1] = pl
	w.emit(Event{Kind: EventPlatformRecycled})
}

// fire launches the player's fireball toward (x, y). It needs a fireball
// charge and no fireball already in flight.
func (w *World) fire(x, y int) {
	p := w.player
	if p.Inventory.Fireball <= 0 || p.Projectile != nil {
		return
	}
	p.Inventory.Fireball--

	cx, cy := p.Rect.Center()
	vx, vy := entity.Aim(cx, cy, x, y, w.cfg.Physics.FireballDivisor, w.cfg.Physics.FireballSpeed)
	s := w.cfg.Sprites.Projectile
	p.Projectile = entity.NewProjectile(cx, cy, s.W, s.H, vx, vy)
	w.emit(Event{Kind: EventFireball})
}

// enemyFire drops a fireball straight down from the platform's enemy.
func (w *World) enemyFire(pl *entity.Platform) {
	cx, cy := pl.Enemy.Rect.Center()
	s := w.cfg.Sprites.Projectile
	pl.Projectile = entity.NewProjectile(cx, cy, s.W, s.H, 0, w.params.ProjectileSpeed)
	w.emit(Event{Kind: EventEnemyFire})
}
