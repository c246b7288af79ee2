package entity

// PowerupKind is what a powerup adds to the inventory.
type PowerupKind int

const (
	Lives PowerupKind = iota
	DoubleJump
	Fireball
)

// String returns the kind name as used by the HUD.
func (k PowerupKind) String() string {
	switch k {
	case Lives:
		return "lives"
	case DoubleJump:
		return "double_jump"
	case Fireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// KindFromRoll maps a roll in [0, 6] to a powerup kind: 0 is an extra life,
// 1 to 3 a double jump, anything higher a fireball.
func KindFromRoll(n int) PowerupKind {
	switch {
	case n <= 0:
		return Lives
	case n <= 3:
		return DoubleJump
	default:
		return Fireball
	}
}

// Inventory counts the player's collected powerups. Counts never go negative.
type Inventory struct {
	Lives      int
	DoubleJump int
	Fireball   int
}

// Add adds one of kind.
func (inv *Inventory) Add(kind PowerupKind) {
	switch kind {
	case Lives:
		inv.Lives++
	case DoubleJump:
		inv.DoubleJump++
	case Fireball:
		inv.Fireball++
	}
}

// Count returns how many of kind the inventory holds.
func (inv Inventory) Count(kind PowerupKind) int {
	switch kind {
	case Lives:
		return inv.Lives
	case DoubleJump:
		return inv.DoubleJump
	case Fireball:
		return inv.Fireball
	default:
		return 0
	}
}
