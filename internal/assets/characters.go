package assets

import "github.com/vovakirdan/dungeon-jump/internal/core"

// DefaultCharacter is used when no character was chosen.
const DefaultCharacter = "knight_m"

// Sprite is the frame set of a non-playable kind.
type Sprite struct {
	Glyph  rune
	Color  core.Color
	Frames [2][4]Frame // Run cycle indexed by facing
}

// SpriteKind names one of the shared sprites of the world's non-player
// entities.
type SpriteKind int

const (
	SpriteDemon SpriteKind = iota
	SpriteLedge
	SpriteFire
	SpriteHeart
	SpriteBlueFlask
	SpriteRedFlask
	SpriteBackground
)

var sprites = [...]Sprite{
	SpriteDemon:      {Glyph: '▓', Color: core.ColorRed, Frames: [2][4]Frame{runCycle('D', true), runCycle('D', false)}},
	SpriteLedge:      {Glyph: '▀', Color: core.ColorGray},
	SpriteFire:       {Glyph: '✹', Color: core.ColorOrange},
	SpriteHeart:      {Glyph: '♥', Color: core.ColorBrightRed},
	SpriteBlueFlask:  {Glyph: '⚗', Color: core.ColorBrightBlue},
	SpriteRedFlask:   {Glyph: '⚗', Color: core.ColorBrightRed},
	SpriteBackground: {Glyph: '·', Color: core.ColorGray},
}

// SpriteOf returns a copy of the shared sprite k. Unknown kinds get the
// zero Sprite.
func SpriteOf(k SpriteKind) Sprite {
	if k < 0 || int(k) >= len(sprites) {
		return Sprite{}
	}
	return sprites[k]
}

// runCycle builds a four-frame run cycle for a glyph.
func runCycle(g rune, right bool) [4]Frame {
	if right {
		return [4]Frame{
			Frame([]rune{g, '>'}),
			Frame([]rune{g, '»'}),
			Frame([]rune{g, '>'}),
			Frame([]rune{g, '›'}),
		}
	}
	return [4]Frame{
		Frame([]rune{'<', g}),
		Frame([]rune{'«', g}),
		Frame([]rune{'<', g}),
		Frame([]rune{'‹', g}),
	}
}

// character builds the frame set for a glyph-based character.
func character(id, title string, glyph rune, color core.Color) Character {
	return Character{
		ID:       id,
		Title:    title,
		Color:    color,
		RunRight: runCycle(glyph, true),
		RunLeft:  runCycle(glyph, false),
		Jump:     [2]Frame{Frame([]rune{glyph, '^'}), Frame([]rune{'^', glyph})},
		Idle:     [2]Frame{Frame([]rune{glyph, ' '}), Frame([]rune{' ', glyph})},
	}
}

func init() {
	Register(character("knight_m", "Knight (m)", 'K', core.ColorBrightWhite))
	Register(character("knight_f", "Knight (f)", 'k', core.ColorWhite))
	Register(character("elf_m", "Elf (m)", 'E', core.ColorBrightGreen))
	Register(character("elf_f", "Elf (f)", 'e', core.ColorGreen))
	Register(character("wizard_m", "Wizard (m)", 'W', core.ColorBrightMagenta))
	Register(character("wizard_f", "Wizard (f)", 'w', core.ColorMagenta))
	Register(character("dragon_m", "Dragon (m)", 'R', core.ColorBrightYellow))
	Register(character("dragon_f", "Dragon (f)", 'r', core.ColorYellow))
	Register(character("pumpkin", "Pumpkin", 'P', core.ColorOrange))
	Register(character("doc", "Doc", 'H', core.ColorBrightCyan))
}
