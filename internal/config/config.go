// Package config provides YAML-based game configuration loading and
// difficulty presets for Dungeon Jump.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration for a run.
type Config struct {
	World      WorldConfig                     `yaml:"world"`
	Physics    PhysicsConfig                   `yaml:"physics"`
	Sprites    SpriteConfig                    `yaml:"sprites"`
	Difficulty map[Difficulty]DifficultyParams `yaml:"difficulty"`
}

// WorldConfig defines the playfield in world pixels.
type WorldConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	Platforms      int `yaml:"platforms"`        // Platforms alive at any time
	StartPlatform  int `yaml:"start_platform"`   // Index of the platform the player starts on
	FirstMargin    int `yaml:"first_margin"`     // Lowest platform spawns in [margin, width-margin]
	FirstOffset    int `yaml:"first_offset"`     // Lowest platform center sits this far above the bottom
	RecycleMargin  int `yaml:"recycle_margin"`   // Lowest platform is recycled once its top passes height+margin
	FallNudge      int `yaml:"fall_nudge"`       // Pixels per frame the player sinks below the lowest platform
	PowerupKindMax int `yaml:"powerup_kind_max"` // Powerup kinds are drawn from [0, max]
}

// PhysicsConfig defines kinematic constants.
type PhysicsConfig struct {
	VX              int     `yaml:"v_x"`                // Horizontal speed, pixels per frame
	VY              float64 `yaml:"v_y"`                // Launch speed
	Gravity         float64 `yaml:"gravity"`            // g
	DT              float64 `yaml:"dt"`                 // Time added per airborne frame
	TerminalDY      int     `yaml:"terminal_dy"`        // Clamp for the steepest fall per frame
	FireballDivisor float64 `yaml:"fireball_divisor"`   // Aim vector is divided by this
	FireballSpeed   float64 `yaml:"fireball_min_speed"` // Slower aims are scaled up to this speed
	KillScore       int     `yaml:"kill_score"`         // Bonus for shooting an enemy
}

// Size is a sprite's collision box size.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// SpriteConfig defines collision boxes for every entity kind.
type SpriteConfig struct {
	Player     Size `yaml:"player"`
	Platform   Size `yaml:"platform"`
	Enemy      Size `yaml:"enemy"`
	Powerup    Size `yaml:"powerup"`
	Projectile Size `yaml:"projectile"`
}

// Preset returns the parameters bound to a difficulty.
func (c Config) Preset(d Difficulty) (DifficultyParams, error) {
	p, ok := c.Difficulty[d]
	if !ok {
		return DifficultyParams{}, fmt.Errorf("%w: no preset for difficulty %q", ErrInvalidConfig, d)
	}
	return p, nil
}

// Validate rejects configurations the simulation cannot run with.
// It is called at load time so that the core never sees bad values.
func Validate(c Config) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %dx%d", c.World.Width, c.World.Height)
	check(c.World.Platforms > 1, "world.platforms must be at least 2, got %d", c.World.Platforms)
	check(c.World.StartPlatform >= 0 && c.World.StartPlatform < c.World.Platforms,
		"world.start_platform %d out of range [0, %d)", c.World.StartPlatform, c.World.Platforms)
	check(c.World.FirstMargin >= 0 && 2*c.World.FirstMargin < c.World.Width,
		"world.first_margin %d leaves no room in width %d", c.World.FirstMargin, c.World.Width)
	check(c.World.RecycleMargin >= 0, "world.recycle_margin must not be negative")
	check(c.World.FallNudge > 0, "world.fall_nudge must be positive")
	check(c.World.PowerupKindMax >= 0, "world.powerup_kind_max must not be negative")

	check(c.Physics.VX > 0, "physics.v_x must be positive")
	check(c.Physics.VY > 0, "physics.v_y must be positive")
	check(c.Physics.Gravity > 0, "physics.gravity must be positive")
	check(c.Physics.DT > 0, "physics.dt must be positive")
	check(c.Physics.TerminalDY < 0, "physics.terminal_dy must be negative")
	check(c.Physics.FireballDivisor > 0, "physics.fireball_divisor must be positive")
	check(c.Physics.FireballSpeed > 0, "physics.fireball_min_speed must be positive")
	check(c.Physics.KillScore >= 0, "physics.kill_score must not be negative")

	for name, s := range map[string]Size{
		"player":     c.Sprites.Player,
		"platform":   c.Sprites.Platform,
		"enemy":      c.Sprites.Enemy,
		"powerup":    c.Sprites.Powerup,
		"projectile": c.Sprites.Projectile,
	} {
		check(s.W > 0 && s.H > 0, "sprites.%s size must be positive, got %dx%d", name, s.W, s.H)
	}

	for _, d := range Difficulties() {
		p, ok := c.Difficulty[d]
		if !ok {
			errs = append(errs, fmt.Errorf("difficulty.%s preset missing", d))
			continue
		}
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("difficulty.%s: %w", d, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
