// Package world runs the endless-jumper simulation: one Step per frame moves
// the player horizontally, scrolls every other entity by the player's jump
// arc, recycles platforms, resolves landings and collisions, and updates the
// score. The world is single-threaded; callers render from Snapshot between
// steps.
package world

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/dungeon-jump/internal/assets"
	"github.com/vovakirdan/dungeon-jump/internal/config"
	"github.com/vovakirdan/dungeon-jump/internal/entity"
	"github.com/vovakirdan/dungeon-jump/internal/kinematics"
	"github.com/vovakirdan/dungeon-jump/internal/platformgen"
)

// Input is the player's input for one frame.
type Input struct {
	Dir        int  // Held horizontal direction: -1 left, 1 right, 0 none
	Jump       bool // Jump key went down this frame
	Fire       bool // Mouse click this frame
	AimX, AimY int  // Click position in world pixels
	Pause      bool // Toggle pause
}

// StepResult reports the world after a step.
type StepResult struct {
	Score  int
	Dead   bool
	Paused bool
	Events []Event
}

// World is one run of the game.
type World struct {
	cfg    config.Config
	params config.DifficultyParams
	rng    *rand.Rand
	gen    *platformgen.Generator

	player    *entity.Player
	platforms []*entity.Platform // Lowest first
	origin    entity.Origin
	startY    int // Origin Y at the start of the run

	score  int
	tick   int
	paused bool
	cause  DeathCause
	events []Event
}

// New builds the opening level: a column of platforms climbing from the
// bottom of the screen with the player standing on one of them.
func New(cfg config.Config, params config.DifficultyParams, character *assets.Character, seed int64) (*World, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w: %w", config.ErrInvalidConfig, err)
	}
	if character == nil {
		return nil, errors.New("world: nil character")
	}

	rng := rand.New(rand.NewSource(seed))
	gen, err := platformgen.New(cfg.World.Width, cfg.Sprites.Platform.W,
		float64(cfg.Physics.VX), cfg.Physics.VY, rng)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	w := &World{
		cfg:    cfg,
		params: params,
		rng:    rng,
		gen:    gen,
	}

	// The lowest platform is generated from an anchor near the bottom of the
	// screen, like every later platform is generated from its predecessor.
	margin := float64(cfg.World.FirstMargin)
	anchorX := margin + rng.Float64()*(float64(cfg.World.Width)-2*margin)
	x, y := int(anchorX), cfg.World.Height-cfg.World.FirstOffset

	w.platforms = make([]*entity.Platform, 0, cfg.World.Platforms)
	for range cfg.World.Platforms {
		x, y = gen.Next(x, y)
		w.platforms = append(w.platforms, w.newPlatform(x, y))
	}

	start := w.platforms[cfg.World.StartPlatform]
	w.player = entity.NewPlayer(
		start.Rect.CenterX(), start.Rect.Y,
		cfg.Sprites.Player.W, cfg.Sprites.Player.H,
		cfg.Physics.VX,
		kinematics.Model{
			VY:       cfg.Physics.VY,
			G:        cfg.Physics.Gravity,
			DT:       cfg.Physics.DT,
			Terminal: cfg.Physics.TerminalDY,
		},
		character,
	)

	cx, cy := w.player.Rect.Center()
	w.origin = entity.NewOrigin(cx, cy)
	w.startY = cy

	return w, nil
}

// Step advances the world by one frame. Once the player is dead or while the
// world is paused, Step changes nothing.
func (w *World) Step(in Input) StepResult {
	w.events = nil

	if in.Pause && w.player.Alive() {
		w.paused = !w.paused
		if w.paused {
			w.emit(Event{Kind: EventPaused})
		} else {
			w.emit(Event{Kind: EventResumed})
		}
	}
	if w.paused || !w.player.Alive() {
		return w.result()
	}

	w.tick++
	before := w.score
	p := w.player

	if in.Jump {
		w.jump()
	}
	if in.Fire {
		w.fire(in.AimX, in.AimY)
	}

	p.Walk(in.Dir, w.cfg.World.Width)
	if dy := p.Displacement(); dy != 0 {
		w.shift(dy)
	}

	if f := p.Projectile; f != nil {
		f.Move()
		if f.OutOfBounds(w.cfg.World.Width, w.cfg.World.Height) {
			p.Projectile = nil
		}
	}

	w.recycle()
	w.resolve()

	if w.FallsBelow(w.platforms[0]) {
		w.die(CauseFall)
	}

	if climbed := w.origin.Climbed(p.Rect.CenterY()); climbed > w.score {
		w.score = climbed
	}
	if w.score != before {
		w.emit(Event{Kind: EventScoreChanged, Score: w.score})
	}

	return w.result()
}

// shift moves every entity except the player vertically.
func (w *World) shift(dy int) {
	for _, pl := range w.platforms {
		pl.Shift(dy)
	}
	if f := w.player.Projectile; f != nil {
		f.Rect.Translate(0, dy)
	}
	w.origin.Y += dy
}

func (w *World) jump() {
	jumped, spent := w.player.Jump()
	switch {
	case spent:
		w.emit(Event{Kind: EventDoubleJump})
	case jumped:
		w.emit(Event{Kind: EventJump})
	}
}

func (w *World) die(cause DeathCause) {
	if !w.player.Alive() {
		return
	}
	w.player.State = entity.Dead
	w.cause = cause
	w.emit(Event{Kind: EventPlayerDied, Cause: cause})
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) result() StepResult {
	return StepResult{
		Score:  w.score,
		Dead:   !w.player.Alive(),
		Paused: w.paused,
		Events: slices.Clone(w.events),
	}
}

// Player returns the player.
func (w *World) Player() *entity.Player {
	return w.player
}

// Platforms returns the live platforms, lowest first. The slice must not be
// modified.
func (w *World) Platforms() []*entity.Platform {
	return w.platforms
}

// Origin returns the scoring reference point.
func (w *World) Origin() entity.Origin {
	return w.origin
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Dead reports whether the run is over.
func (w *World) Dead() bool {
	return !w.player.Alive()
}

// Cause returns how the player died, or CauseNone.
func (w *World) Cause() DeathCause {
	return w.cause
}

// Paused reports whether the world is paused.
func (w *World) Paused() bool {
	return w.paused
}

// Tick returns the number of simulated frames.
func (w *World) Tick() int {
	return w.tick
}
