// Package jumper adapts the world simulation to the terminal front end: it
// maps input frames to world input, keeps the run's settings for restarts,
// and draws snapshots into a core.Screen.
package jumper

import (
	"fmt"

	"github.com/vovakirdan/dungeon-jump/internal/assets"
	"github.com/vovakirdan/dungeon-jump/internal/config"
	"github.com/vovakirdan/dungeon-jump/internal/core"
	"github.com/vovakirdan/dungeon-jump/internal/world"
)

// ID is the game identifier used in score storage and logs.
const ID = "jumper"

// Game is one player's session: a world plus the settings to rebuild it.
type Game struct {
	cfg        config.Config
	difficulty config.Difficulty
	params     config.DifficultyParams
	character  *assets.Character
	rt         core.RuntimeConfig
	world      *world.World
	events     []world.Event
}

// New prepares a game. Call Reset to start a run.
func New(cfg config.Config, difficulty config.Difficulty, characterID string) (*Game, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	params, err := cfg.Preset(difficulty)
	if err != nil {
		return nil, err
	}
	character, err := assets.Lookup(characterID)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:        cfg,
		difficulty: difficulty,
		params:     params,
		character:  character,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Dungeon Jump"
}

// Difficulty returns the preset the game runs with.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// Character returns the player's character.
func (g *Game) Character() *assets.Character {
	return g.character
}

// Reset starts a new run seeded from rt.Seed.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	w, err := world.New(g.cfg, g.params, g.character, rt.Seed)
	if err != nil {
		return fmt.Errorf("jumper: reset: %w", err)
	}
	g.rt = rt
	g.world = w
	g.events = nil
	return nil
}

// Resize changes the terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}

	wi := world.Input{
		Jump:  in.Has(core.ActionJump),
		Pause: in.Has(core.ActionPause),
	}
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		wi.Dir = -1
	case right && !left:
		wi.Dir = 1
	}
	if in.Has(core.ActionFire) {
		wi.Fire = true
		wi.AimX, wi.AimY = g.viewport().World(in.AimX, in.AimY)
	}

	res := g.world.Step(wi)
	g.events = res.Events
	return core.StepResult{State: g.State()}
}

// Events returns the events of the last step.
func (g *Game) Events() []world.Event {
	return g.events
}

// Cause returns how the player died, or world.CauseNone.
func (g *Game) Cause() world.DeathCause {
	if g.world == nil {
		return world.CauseNone
	}
	return g.world.Cause()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Dead(),
		Paused:   g.world.Paused(),
	}
}

func (g *Game) viewport() Viewport {
	return NewViewport(g.rt.ScreenW, g.rt.ScreenH, g.cfg.World.Width, g.cfg.World.Height)
}
