package jumper

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/dungeon-jump/internal/assets"
	"github.com/vovakirdan/dungeon-jump/internal/core"
	"github.com/vovakirdan/dungeon-jump/internal/entity"
	"github.com/vovakirdan/dungeon-jump/internal/world"
)

// Background dots repeat every bandHeight world pixels and scroll with the world.
const bandHeight = 96

const (
	wallChar  = '│'
	bodyChar  = '█'
	enemyFill = '▒'
)

// Render draws the current run into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	s := g.world.Snapshot()
	v := NewViewport(dst.Width(), dst.Height(), s.Width, s.Height)

	drawBackground(dst, v, s.Scroll)
	for _, sp := range s.Sprites {
		drawSprite(dst, v, sp)
	}
	drawPlayer(dst, v, s)
	g.drawHUD(dst, s)

	switch {
	case s.State == entity.Dead:
		drawCenteredMessage(dst, "YOU DIED", s.Cause.String(),
			fmt.Sprintf("Score: %d  |  R restart  |  Q quit", s.Score))
	case s.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawBackground(dst *core.Screen, v Viewport, scroll int) {
	step := v.PixelsPerRow()
	dot := assets.SpriteOf(assets.SpriteBackground)
	for row := range v.Rows {
		wy := row*step - scroll
		if floorMod(wy, bandHeight) >= step {
			continue
		}
		band := floorDiv(wy, bandHeight)
		for col := range v.Cols {
			if floorMod(col+band*3, 7) == 0 {
				dst.SetColored(v.X+col, v.Y+row, dot.Glyph, dot.Color)
			}
		}
	}

	for row := range v.Rows {
		if v.X > 0 {
			dst.SetColored(v.X-1, v.Y+row, wallChar, core.ColorGray)
		}
		if v.X+v.Cols < dst.Width() {
			dst.SetColored(v.X+v.Cols, v.Y+row, wallChar, core.ColorGray)
		}
	}
}

func drawSprite(dst *core.Screen, v Viewport, sp world.Sprite) {
	switch sp.Kind {
	case world.KindPlatform:
		ledge := assets.SpriteOf(assets.SpriteLedge)
		fill(dst, v, v.CellRect(sp.Rect), ledge.Glyph, ledge.Color)
	case world.KindPowerup:
		s := powerupSprite(sp.Powerup)
		fill(dst, v, v.CellRect(sp.Rect), s.Glyph, s.Color)
	case world.KindEnemy:
		r := v.CellRect(sp.Rect)
		demon := assets.SpriteOf(assets.SpriteDemon)
		fill(dst, v, r, enemyFill, demon.Color)
		label(dst, v, r, string(sp.Frame), demon.Color)
	case world.KindProjectile:
		fire := assets.SpriteOf(assets.SpriteFire)
		if sp.Hostile {
			fire.Color = core.ColorBrightRed
		}
		fill(dst, v, v.CellRect(sp.Rect), fire.Glyph, fire.Color)
	}
}

func drawPlayer(dst *core.Screen, v Viewport, s world.Snapshot) {
	color := core.ColorBrightWhite
	if s.Character != nil {
		color = s.Character.Color
	}
	r := v.CellRect(s.Player.Rect)
	fill(dst, v, r, bodyChar, color)
	label(dst, v, r, string(s.Player.Frame), color)
}

func powerupSprite(k entity.PowerupKind) assets.Sprite {
	switch k {
	case entity.Lives:
		return assets.SpriteOf(assets.SpriteHeart)
	case entity.DoubleJump:
		return assets.SpriteOf(assets.SpriteBlueFlask)
	default:
		return assets.SpriteOf(assets.SpriteRedFlask)
	}
}

// hudItems are the inventory counters, left to right.
var hudItems = [...]entity.PowerupKind{entity.Lives, entity.DoubleJump, entity.Fireball}

// fill paints the cells of r that lie inside the playfield.
func fill(dst *core.Screen, v Viewport, r core.Rect, glyph rune, color core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if v.Contains(x, y) {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

// label writes text centered on the top row of r, clipped to the playfield.
func label(dst *core.Screen, v Viewport, r core.Rect, text string, color core.Color) {
	x := r.X + (r.W-utf8.RuneCountInString(text))/2
	for _, ch := range text {
		if ch != ' ' && v.Contains(x, r.Y) {
			dst.SetColored(x, r.Y, ch, color)
		}
		x++
	}
}

func (g *Game) drawHUD(dst *core.Screen, s world.Snapshot) {
	inv := s.Inventory
	left := fmt.Sprintf(" Score: %d ", s.Score)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	x := utf8.RuneCountInString(left) + 1
	for _, kind := range hudItems {
		sprite := powerupSprite(kind)
		dst.SetColored(x, 0, sprite.Glyph, sprite.Color)
		text := fmt.Sprintf(" %d  ", inv.Count(kind))
		dst.DrawText(x+1, 0, text)
		x += 1 + len(text)
	}

	right := fmt.Sprintf("%s | %s ", g.character.Title, g.difficulty)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right), 0, right, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := 3 + 2*len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-utf8.RuneCountInString(l))/2, boxY+3+2*i, l)
	}
}
