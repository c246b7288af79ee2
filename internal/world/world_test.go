package world

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/dungeon-jump/internal/assets"
	"github.com/vovakirdan/dungeon-jump/internal/config"
	"github.com/vovakirdan/dungeon-jump/internal/entity"
	"github.com/vovakirdan/dungeon-jump/internal/platformgen"
)

func newTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	cfg := config.DefaultConfig()
	params, err := cfg.Preset(config.DifficultyMedium)
	if err != nil {
		t.Fatalf("Preset() failed: %v", err)
	}
	w, err := New(cfg, params, assets.MustLookup(assets.DefaultCharacter), seed)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return w
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewLevel(t *testing.T) {
	w := newTestWorld(t, 1)
	cfg := config.DefaultConfig()

	if len(w.platforms) != cfg.World.Platforms {
		t.Fatalf("platforms = %d, expected %d", len(w.platforms), cfg.World.Platforms)
	}
	for i := 1; i < len(w.platforms); i++ {
		if w.platforms[i].Rect.Y >= w.platforms[i-1].Rect.Y {
			t.Errorf("platform %d is not above platform %d", i, i-1)
		}
	}
	for i, pl := range w.platforms {
		if pl.Enemy != nil || pl.Powerup != nil || pl.Projectile != nil {
			t.Errorf("opening platform %d should be empty", i)
		}
	}

	start := w.platforms[cfg.World.StartPlatform]
	p := w.Player()
	if p.Rect.Bottom() != start.Rect.Y || p.Rect.CenterX() != start.Rect.CenterX() {
		t.Errorf("player %+v should stand centered on platform %+v", p.Rect, start.Rect)
	}
	if p.State != entity.Grounded {
		t.Errorf("player state = %v, expected grounded", p.State)
	}
	cx, cy := p.Rect.Center()
	if w.Origin() != (entity.Origin{X: cx, Y: cy}) {
		t.Errorf("origin = %+v, expected player center (%d, %d)", w.Origin(), cx, cy)
	}
}

func TestNewFailsFast(t *testing.T) {
	cfg := config.DefaultConfig()
	params, _ := cfg.Preset(config.DifficultyEasy)
	knight := assets.MustLookup("knight_m")

	narrow := cfg
	narrow.World.Width = 2 * cfg.Sprites.Platform.W
	narrow.World.FirstMargin = 10
	if _, err := New(narrow, params, knight, 1); !errors.Is(err, platformgen.ErrDegenerateGeometry) {
		t.Errorf("narrow screen: error = %v, expected ErrDegenerateGeometry", err)
	}

	bad := params
	bad.EnemyChance = 0
	if _, err := New(cfg, bad, knight, 1); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("zero enemy chance: error = %v, expected ErrInvalidConfig", err)
	}

	if _, err := New(cfg, params, nil, 1); err == nil {
		t.Error("nil character should be rejected")
	}
}

func TestGroundedJumpStep(t *testing.T) {
	w := newTestWorld(t, 2)
	before := w.platforms[0].Rect.Y

	res := w.Step(Input{Jump: true})
	p := w.Player()

	if !hasEvent(res.Events, EventJump) {
		t.Error("expected a jump event")
	}
	if p.State != entity.Jumping {
		t.Fatalf("state = %v, expected jumping", p.State)
	}
	if p.T != 0.135 {
		t.Errorf("T = %v, expected 0.135", p.T)
	}
	if got := w.platforms[0].Rect.Y - before; got != 1 {
		t.Errorf("world scrolled %d, expected 1", got)
	}
}

func TestJumpLandsExactly(t *testing.T) {
	w := newTestWorld(t, 3)
	w.Step(Input{Jump: true})

	landed := false
	for range 300 {
		res := w.Step(Input{})
		if hasEvent(res.Events, EventLand) {
			landed = true
			break
		}
		if res.Dead {
			t.Fatal("player died jumping in place")
		}
	}
	if !landed {
		t.Fatal("player never landed")
	}

	p := w.Player()
	if p.State != entity.Grounded || p.T != 0 {
		t.Errorf("after landing: state %v t=%v", p.State, p.T)
	}
	onTop := false
	for _, pl := range w.platforms {
		if p.Rect.Bottom() == pl.Rect.Y && p.Rect.OverlapsHorizontally(pl.Rect) {
			onTop = true
		}
	}
	if !onTop {
		t.Error("player bottom should equal a platform top after landing")
	}
	if w.Score() <= 0 {
		t.Errorf("score after climbing = %d, expected positive", w.Score())
	}
}

func TestLandingCorrection(t *testing.T) {
	w := newTestWorld(t, 4)
	p := w.Player()
	pl := w.platforms[3]
	other := w.platforms[6]
	other.Enemy = entity.NewEnemy(other.Rect, 40, 44, 0, entity.FacingLeft)
	other.Powerup = entity.NewPowerup(other.Rect, 20, 24, entity.Fireball)
	p.Projectile = entity.NewProjectile(100, 100, 16, 16, 1, -1)

	// The arc overshoots the platform top by three pixels.
	lastTop := pl.Rect.Y
	w.shift(-3)
	p.State = entity.Falling
	p.T = 2.5

	playerBefore := p.Rect
	otherBefore := other.Rect
	enemyBefore := other.Enemy.Rect
	powerupBefore := other.Powerup.Rect
	fireballBefore := p.Projectile.Rect
	originBefore := w.Origin()

	if !w.LandsOn(pl, lastTop) {
		t.Fatal("LandsOn() = false, expected a landing")
	}

	if p.Rect.Bottom() != pl.Rect.Y {
		t.Errorf("player bottom %d != platform top %d", p.Rect.Bottom(), pl.Rect.Y)
	}
	if p.Rect != playerBefore {
		t.Error("landing must not move the player")
	}
	if p.State != entity.Grounded || p.T != 0 {
		t.Errorf("after landing: state %v t=%v", p.State, p.T)
	}

	const shift = 3
	checks := []struct {
		name          string
		before, after int
	}{
		{"platform", otherBefore.Y, other.Rect.Y},
		{"enemy", enemyBefore.Y, other.Enemy.Rect.Y},
		{"powerup", powerupBefore.Y, other.Powerup.Rect.Y},
		{"fireball", fireballBefore.Y, p.Projectile.Rect.Y},
		{"origin", originBefore.Y, w.Origin().Y},
	}
	for _, c := range checks {
		if c.after-c.before != shift {
			t.Errorf("%s moved %d, expected %d", c.name, c.after-c.before, shift)
		}
	}
}

func TestFallsOffAndLandsOnAreIdempotentWhenNotAdjacent(t *testing.T) {
	for _, state := range []entity.VerticalState{entity.Grounded, entity.Jumping, entity.Falling} {
		t.Run(state.String(), func(t *testing.T) {
			w := newTestWorld(t, 5)
			w.player.State = state
			far := w.platforms[10]

			before := w.Snapshot()
			if w.FallsOff(far) {
				t.Error("FallsOff() = true for a distant platform")
			}
			if w.LandsOn(far, far.LastTop) {
				t.Error("LandsOn() = true for a distant platform")
			}
			if !reflect.DeepEqual(before, w.Snapshot()) {
				t.Error("checks against a distant platform mutated the world")
			}
			if len(w.events) != 0 {
				t.Errorf("unexpected events: %v", w.events)
			}
		})
	}
}

func TestFallsOff(t *testing.T) {
	w := newTestWorld(t, 6)
	p := w.Player()
	pl := w.platforms[3]

	p.Rect.X = pl.Rect.Right() + 1
	if !w.FallsOff(pl) {
		t.Fatal("FallsOff() = false after walking off the edge")
	}
	if p.State != entity.Falling || p.T != 0 {
		t.Errorf("state = %v t=%v, expected falling from t=0", p.State, p.T)
	}

	// A jumping player crossing a platform top keeps its arc.
	p.State = entity.Jumping
	p.T = 1
	if !w.FallsOff(pl) {
		t.Error("FallsOff() should still stop the scan while jumping")
	}
	if p.State != entity.Jumping || p.T != 1 {
		t.Errorf("jump arc changed: state %v t=%v", p.State, p.T)
	}

	// Touching edges still count as standing on the platform.
	p.State = entity.Grounded
	p.Rect.X = pl.Rect.Right()
	if w.FallsOff(pl) {
		t.Error("FallsOff() = true while the edges still touch")
	}
}

func TestWalkingOffStartsFall(t *testing.T) {
	w := newTestWorld(t, 7)

	var res StepResult
	for range 200 {
		res = w.Step(Input{Dir: 1})
		if hasEvent(res.Events, EventFallOff) {
			break
		}
	}
	if !hasEvent(res.Events, EventFallOff) {
		t.Fatal("walking right never fell off the platform")
	}
	if w.Player().State != entity.Falling {
		t.Errorf("state = %v, expected falling", w.Player().State)
	}
}

func TestDoubleJumpGatedByInventory(t *testing.T) {
	w := newTestWorld(t, 8)
	p := w.Player()
	w.Step(Input{Jump: true})
	w.Step(Input{})

	res := w.Step(Input{Jump: true})
	if hasEvent(res.Events, EventDoubleJump) || hasEvent(res.Events, EventJump) {
		t.Error("airborne jump without a charge should have no effect")
	}
	if p.T < 3*0.135-1e-9 {
		t.Errorf("T = %v, the arc should have continued", p.T)
	}

	p.Inventory.DoubleJump = 1
	res = w.Step(Input{Jump: true})
	if !hasEvent(res.Events, EventDoubleJump) {
		t.Error("expected a double jump event")
	}
	if p.Inventory.DoubleJump != 0 {
		t.Errorf("double jump charges = %d, expected 0", p.Inventory.DoubleJump)
	}
	if p.T != 0.135 {
		t.Errorf("T = %v, expected the arc to restart", p.T)
	}
}

func TestEnemyFireballHit(t *testing.T) {
	tests := []struct {
		name      string
		lives     int
		wantDead  bool
		wantLives int
	}{
		{"last life", 1, true, 1},
		{"spare life", 2, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 9)
			p := w.Player()
			p.Inventory.Lives = tt.lives

			owner := w.platforms[5]
			cx, cy := p.Rect.Center()
			owner.Projectile = entity.NewProjectile(cx, cy, 16, 16, 0, 0)

			res := w.Step(Input{})

			if res.Dead != tt.wantDead {
				t.Errorf("Dead = %v, expected %v", res.Dead, tt.wantDead)
			}
			if got := countEvents(res.Events, EventPlayerDied); got != map[bool]int{true: 1}[tt.wantDead] {
				t.Errorf("died events = %d", got)
			}
			if p.Inventory.Lives != tt.wantLives {
				t.Errorf("lives = %d, expected %d", p.Inventory.Lives, tt.wantLives)
			}
			if !tt.wantDead {
				if owner.Projectile != nil {
					t.Error("the fireball should be consumed by the hit")
				}
				if !hasEvent(res.Events, EventLifeLost) {
					t.Error("expected a life lost event")
				}
			} else if w.Cause() != CauseProjectile {
				t.Errorf("cause = %v", w.Cause())
			}
		})
	}
}

func TestEnemyTouchKills(t *testing.T) {
	w := newTestWorld(t, 10)
	pl := w.platforms[3]
	pl.Enemy = entity.NewEnemy(pl.Rect, 40, 44, 0, entity.FacingRight)

	res := w.Step(Input{})
	if !res.Dead || w.Cause() != CauseEnemy {
		t.Errorf("dead = %v cause = %v, expected killed by the enemy", res.Dead, w.Cause())
	}

	after := w.Step(Input{Jump: true})
	if len(after.Events) != 0 || !after.Dead {
		t.Error("a dead world should not change")
	}
}

func TestFireballKillsEnemy(t *testing.T) {
	w := newTestWorld(t, 11)
	p := w.Player()
	pl := w.platforms[6]
	pl.Enemy = entity.NewEnemy(pl.Rect, 40, 44, 0, entity.FacingLeft)
	ex, ey := pl.Enemy.Rect.Center()
	p.Projectile = entity.NewProjectile(ex, ey, 16, 16, 0, 0)

	res := w.Step(Input{})

	if pl.Enemy != nil {
		t.Error("enemy should be removed")
	}
	if p.Projectile == nil {
		t.Error("the fireball keeps flying after a kill")
	}
	if w.Score() != 500 {
		t.Errorf("score = %d, expected 500", w.Score())
	}
	if !hasEvent(res.Events, EventEnemyKilled) || !hasEvent(res.Events, EventScoreChanged) {
		t.Errorf("events = %v", res.Events)
	}
}

func TestFireRequiresCharge(t *testing.T) {
	w := newTestWorld(t, 12)
	p := w.Player()
	cx, cy := p.Rect.Center()

	res := w.Step(Input{Fire: true, AimX: cx, AimY: cy - 400})
	if p.Projectile != nil || hasEvent(res.Events, EventFireball) {
		t.Fatal("fired without a charge")
	}

	p.Inventory.Fireball = 2
	res = w.Step(Input{Fire: true, AimX: cx, AimY: cy - 400})
	if p.Projectile == nil || !hasEvent(res.Events, EventFireball) {
		t.Fatal("expected a fireball")
	}
	if p.Projectile.VX != 0 || p.Projectile.VY != -10 {
		t.Errorf("velocity = (%d, %d), expected (0, -10)", p.Projectile.VX, p.Projectile.VY)
	}

	w.Step(Input{Fire: true, AimX: cx, AimY: cy - 400})
	if p.Inventory.Fireball != 1 {
		t.Errorf("second shot fired while the first is live: charges = %d", p.Inventory.Fireball)
	}
}

func TestPowerupPickup(t *testing.T) {
	w := newTestWorld(t, 13)
	pl := w.platforms[3]
	pl.Powerup = entity.NewPowerup(pl.Rect, 20, 24, entity.DoubleJump)

	res := w.Step(Input{})

	if pl.Powerup != nil {
		t.Error("powerup should be consumed")
	}
	if w.Player().Inventory.DoubleJump != 1 {
		t.Errorf("inventory = %+v", w.Player().Inventory)
	}
	if !hasEvent(res.Events, EventPowerup) {
		t.Error("expected a powerup event")
	}
}

func TestRecycle(t *testing.T) {
	w := newTestWorld(t, 14)
	cfg := config.DefaultConfig()
	limit := cfg.World.Height + cfg.World.RecycleMargin

	w.platforms[0].Rect.Y = limit
	res := w.Step(Input{})
	if hasEvent(res.Events, EventPlatformRecycled) {
		t.Fatal("platform at the margin should not be recycled yet")
	}

	second := w.platforms[1]
	last := w.platforms[len(w.platforms)-1]
	w.platforms[0].Rect.Y = limit + 1

	res = w.Step(Input{})
	if countEvents(res.Events, EventPlatformRecycled) != 1 {
		t.Fatal("expected exactly one recycled platform")
	}
	if len(w.platforms) != cfg.World.Platforms {
		t.Fatalf("platforms = %d, expected %d", len(w.platforms), cfg.World.Platforms)
	}
	if w.platforms[0] != second {
		t.Error("the second lowest platform should now be the lowest")
	}
	if w.platforms[len(w.platforms)-2] != last {
		t.Error("the previous highest platform should be second highest")
	}

	added := w.platforms[len(w.platforms)-1]
	climb := last.Rect.CenterY() - added.Rect.CenterY()
	if climb < 57 || climb > 73 {
		t.Errorf("new platform climbs %d pixels above the previous highest", climb)
	}
}

func TestFallsBelow(t *testing.T) {
	w := newTestWorld(t, 15)
	cfg := config.DefaultConfig()
	p := w.Player()
	lowest := w.platforms[0]

	p.Rect.Y = lowest.Rect.Bottom()
	if w.FallsBelow(lowest) {
		t.Error("player level with the lowest platform is not below it")
	}

	p.Rect.Y = lowest.Rect.Bottom() + 1
	y := p.Rect.Y
	if w.FallsBelow(lowest) && y+cfg.World.FallNudge < cfg.World.Height {
		t.Error("player still on screen should not die")
	}
	if p.Rect.Y != y+cfg.World.FallNudge {
		t.Errorf("player sank to %d, expected %d", p.Rect.Y, y+cfg.World.FallNudge)
	}

	p.Rect.Y = cfg.World.Height - 3
	if !w.FallsBelow(lowest) {
		t.Error("player leaving the screen should die")
	}
}

func TestFallingIntoTheDungeon(t *testing.T) {
	w := newTestWorld(t, 16)
	// Park the player far from every platform.
	p := w.Player()
	p.State = entity.Falling
	for _, pl := range w.platforms {
		pl.Shift(-2000)
		pl.LastTop = pl.Rect.Y
	}

	var res StepResult
	for range 500 {
		res = w.Step(Input{})
		if res.Dead {
			break
		}
	}
	if !res.Dead || w.Cause() != CauseFall {
		t.Fatalf("dead = %v cause = %v, expected a fatal fall", res.Dead, w.Cause())
	}
	if countEvents(res.Events, EventPlayerDied) != 1 {
		t.Error("death should be reported once")
	}
}

func TestPause(t *testing.T) {
	w := newTestWorld(t, 17)

	res := w.Step(Input{Pause: true})
	if !res.Paused || !hasEvent(res.Events, EventPaused) {
		t.Fatal("expected the world to pause")
	}

	before := w.Snapshot()
	w.Step(Input{Jump: true, Dir: 1})
	if !reflect.DeepEqual(before, w.Snapshot()) {
		t.Error("a paused world should not change")
	}

	res = w.Step(Input{Pause: true})
	if res.Paused || !hasEvent(res.Events, EventResumed) {
		t.Error("expected the world to resume")
	}
}

func scriptedInput(rng *rand.Rand) Input {
	in := Input{Dir: rng.Intn(3) - 1, Jump: rng.Intn(25) == 0}
	if rng.Intn(60) == 0 {
		in.Fire = true
		in.AimX = rng.Intn(512)
		in.AimY = rng.Intn(704)
	}
	return in
}

func TestDeterministic(t *testing.T) {
	a := newTestWorld(t, 42)
	b := newTestWorld(t, 42)
	ia := rand.New(rand.NewSource(7))
	ib := rand.New(rand.NewSource(7))

	for i := range 3000 {
		ra := a.Step(scriptedInput(ia))
		rb := b.Step(scriptedInput(ib))
		if !reflect.DeepEqual(ra, rb) {
			t.Fatalf("step %d diverged: %+v vs %+v", i, ra, rb)
		}
		if ra.Dead {
			break
		}
	}
	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("worlds with the same seed and input should match")
	}
}

func TestInvariantsHoldDuringPlay(t *testing.T) {
	cfg := config.DefaultConfig()
	for seed := int64(1); seed <= 20; seed++ {
		w := newTestWorld(t, seed)
		input := rand.New(rand.NewSource(seed))
		// Charges keep the run going long enough to exercise recycling.
		w.player.Inventory.DoubleJump = 1000
		w.player.Inventory.Fireball = 50

		for i := range 4000 {
			res := w.Step(scriptedInput(input))
			p := w.Player()

			if len(w.platforms) != cfg.World.Platforms {
				t.Fatalf("seed %d step %d: %d platforms", seed, i, len(w.platforms))
			}
			for j := 1; j < len(w.platforms); j++ {
				if w.platforms[j].Rect.CenterY() >= w.platforms[j-1].Rect.CenterY() {
					t.Fatalf("seed %d step %d: platforms out of order", seed, i)
				}
			}
			if p.Inventory.Lives < 1 || p.Inventory.DoubleJump < 0 || p.Inventory.Fireball < 0 {
				t.Fatalf("seed %d step %d: inventory %+v", seed, i, p.Inventory)
			}
			if p.State == entity.Grounded && p.T != 0 {
				t.Fatalf("seed %d step %d: grounded with t=%v", seed, i, p.T)
			}
			if hasEvent(res.Events, EventLand) && !res.Dead {
				stands := false
				for _, pl := range w.platforms {
					if p.Rect.Bottom() == pl.Rect.Y {
						stands = true
					}
				}
				if !stands {
					t.Fatalf("seed %d step %d: landed off any platform top", seed, i)
				}
			}
			if countEvents(res.Events, EventPlayerDied) > 1 {
				t.Fatalf("seed %d step %d: death reported twice", seed, i)
			}
			if res.Dead {
				break
			}
		}
	}
}

func TestSnapshot(t *testing.T) {
	w := newTestWorld(t, 18)
	pl := w.platforms[4]
	pl.Enemy = entity.NewEnemy(pl.Rect, 40, 44, 3, entity.FacingRight)
	pl.Powerup = entity.NewPowerup(pl.Rect, 20, 24, entity.Lives)
	pl.Projectile = entity.NewProjectile(10, 10, 16, 16, 0, 4)

	s := w.Snapshot()
	if s.Width != 512 || s.Height != 704 {
		t.Errorf("size = %dx%d", s.Width, s.Height)
	}
	if s.Player.Kind != KindPlayer || s.Player.Frame == "" {
		t.Errorf("player sprite = %+v", s.Player)
	}

	counts := map[Kind]int{}
	last := KindPlatform
	for _, sp := range s.Sprites {
		counts[sp.Kind]++
		if sp.Kind < last {
			t.Errorf("sprite %v drawn after %v", sp.Kind, last)
		}
		last = sp.Kind
	}
	if counts[KindPlatform] != 15 || counts[KindPowerup] != 1 || counts[KindEnemy] != 1 || counts[KindProjectile] != 1 {
		t.Errorf("sprite counts = %v", counts)
	}
}
