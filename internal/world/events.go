package world

import "github.com/vovakirdan/dungeon-jump/internal/entity"

// EventKind identifies something that happened during a step. Front ends
// use events for sound cues and HUD flashes; the simulation never depends on
// them being consumed.
type EventKind int

const (
	EventJump EventKind = iota
	EventDoubleJump
	EventLand
	EventFallOff
	EventFireball
	EventEnemyFire
	EventEnemyKilled
	EventPowerup
	EventLifeLost
	EventPlayerDied
	EventScoreChanged
	EventPlatformRecycled
	EventPaused
	EventResumed
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventDoubleJump:
		return "double_jump"
	case EventLand:
		return "land"
	case EventFallOff:
		return "fall_off"
	case EventFireball:
		return "fireball"
	case EventEnemyFire:
		return "enemy_fire"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPowerup:
		return "powerup"
	case EventLifeLost:
		return "life_lost"
	case EventPlayerDied:
		return "player_died"
	case EventScoreChanged:
		return "score_changed"
	case EventPlatformRecycled:
		return "platform_recycled"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// DeathCause tells how the player died.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseEnemy
	CauseProjectile
	CauseFall
)

// String returns a short description for the death screen.
func (c DeathCause) String() string {
	switch c {
	case CauseEnemy:
		return "caught by a demon"
	case CauseProjectile:
		return "burned by a fireball"
	case CauseFall:
		return "fell into the dungeon"
	default:
		return "alive"
	}
}

// Event is a discrete occurrence during one step.
type Event struct {
	Kind    EventKind
	Score   int                // EventScoreChanged, EventEnemyKilled: score after the event
	Powerup entity.PowerupKind // EventPowerup
	Cause   DeathCause         // EventPlayerDied
}
