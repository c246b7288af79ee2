package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:          512,
			Height:         704,
			Platforms:      15,
			StartPlatform:  3,
			FirstMargin:    100,
			FirstOffset:    25,
			RecycleMargin:  50,
			FallNudge:      5,
			PowerupKindMax: 6,
		},
		Physics: PhysicsConfig{
			VX:              5,
			VY:              8.5,
			Gravity:         6,
			DT:              0.135,
			TerminalDY:      -14,
			FireballDivisor: 40,
			FireballSpeed:   6,
			KillScore:       500,
		},
		Sprites: SpriteConfig{
			Player:     Size{W: 32, H: 44},
			Platform:   Size{W: 80, H: 16},
			Enemy:      Size{W: 40, H: 44},
			Powerup:    Size{W: 20, H: 24},
			Projectile: Size{W: 16, H: 16},
		},
		Difficulty: map[Difficulty]DifficultyParams{
			DifficultyEasy: {
				EnemyChance:      20, // 1 in 20 platforms gets an enemy
				ProjectileChance: 200,
				ProjectileSpeed:  4,
				PowerupChance:    5,
				EnemySpeed:       3,
			},
			DifficultyMedium: {
				EnemyChance:      10,
				ProjectileChance: 100,
				ProjectileSpeed:  6,
				PowerupChance:    10,
				EnemySpeed:       5,
			},
			DifficultyHard: {
				EnemyChance:      5,
				ProjectileChance: 50,
				ProjectileSpeed:  8,
				PowerupChance:    20,
				EnemySpeed:       7,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `jumper config` style dumps.
func DefaultYAML() []byte {
	return defaultYAML
}
