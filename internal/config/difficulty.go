package config

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty is a named parameter preset.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all presets in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty maps a CLI string to a preset. Matching is case-insensitive.
// "normal" is accepted as an alias for medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// DifficultyParams binds the five tunable knobs of a preset.
// Chances are one-in-N odds: 20 means a 1 in 20 chance per roll.
type DifficultyParams struct {
	EnemyChance      int `yaml:"enemy_chance"`      // Rolled once per new platform
	ProjectileChance int `yaml:"projectile_chance"` // Rolled every frame per armed enemy
	ProjectileSpeed  int `yaml:"projectile_speed"`  // Enemy fireball speed, pixels per frame
	PowerupChance    int `yaml:"powerup_chance"`    // Rolled once per new platform
	EnemySpeed       int `yaml:"enemy_speed"`       // Enemy walk speed, pixels per frame
}

// Validate rejects knobs that would break spawn rolls or movement.
func (p DifficultyParams) Validate() error {
	var errs []error
	if p.EnemyChance < 1 {
		errs = append(errs, fmt.Errorf("enemy_chance must be at least 1, got %d", p.EnemyChance))
	}
	if p.ProjectileChance < 1 {
		errs = append(errs, fmt.Errorf("projectile_chance must be at least 1, got %d", p.ProjectileChance))
	}
	if p.PowerupChance < 1 {
		errs = append(errs, fmt.Errorf("powerup_chance must be at least 1, got %d", p.PowerupChance))
	}
	if p.ProjectileSpeed < 0 {
		errs = append(errs, fmt.Errorf("projectile_speed must not be negative, got %d", p.ProjectileSpeed))
	}
	if p.EnemySpeed < 0 {
		errs = append(errs, fmt.Errorf("enemy_speed must not be negative, got %d", p.EnemySpeed))
	}
	return errors.Join(errs...)
}
