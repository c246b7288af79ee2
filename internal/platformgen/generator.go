// Package platformgen places each new platform relative to the previous one so
// that every platform is reachable with a single jump.
package platformgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/dungeon-jump/internal/core"
)

// ErrDegenerateGeometry is returned when the screen cannot hold reachable
// platforms, for example when it is narrower than two platform widths.
var ErrDegenerateGeometry = errors.New("platformgen: degenerate geometry")

// Generator produces platform centers. It is not safe for concurrent use.
type Generator struct {
	rng       *rand.Rand
	screenW   int
	platformW int
	xMax      float64 // Widest horizontal hop, 4·v_x·v_y
	yMax      float64 // Highest climb, v_y²
}

// New creates a generator for a screen of width screenW holding platforms
// of width platformW. vx and vy are the player's horizontal and launch speeds;
// they bound the reachable jump envelope.
func New(screenW, platformW int, vx, vy float64, rng *rand.Rand) (*Generator, error) {
	if platformW <= 0 || vx <= 0 || vy <= 0 {
		return nil, fmt.Errorf("%w: platform width %d, v_x %v, v_y %v", ErrDegenerateGeometry, platformW, vx, vy)
	}
	// The edge zones of one platform width on each side must leave room
	// between them, otherwise every sample is pushed back and forth forever.
	if screenW <= 2*platformW {
		return nil, fmt.Errorf("%w: screen width %d must exceed twice the platform width %d",
			ErrDegenerateGeometry, screenW, platformW)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrDegenerateGeometry)
	}
	return &Generator{
		rng:       rng,
		screenW:   screenW,
		platformW: platformW,
		xMax:      4 * vx * vy,
		yMax:      vy * vy,
	}, nil
}

// MinX and MaxX bound every generated center.
func (g *Generator) MinX() int { return g.platformW / 2 }
func (g *Generator) MaxX() int { return g.screenW - g.platformW/2 }

// Next returns the center of the platform that follows one centered at
// (prevX, prevY). The new platform is always above the previous one.
func (g *Generator) Next(prevX, prevY int) (int, int) {
	xi, yi := float64(prevX), float64(prevY)
	w := float64(g.platformW)

	x := xi + g.uniform(-g.xMax, g.xMax)
	y := yi - g.uniform(0.8*g.yMax, g.yMax)

	// Push samples that landed in an edge zone back toward the middle.
	if x <= w {
		x = xi + g.far()
	} else if x >= float64(g.screenW)-w {
		x = xi - g.far()
	}

	// Hops shorter than half the range are stretched in the same direction.
	dx := x - xi
	switch {
	case dx > 0 && dx < 0.5*g.xMax:
		x = xi + g.far()
	case dx < 0 && dx > -0.5*g.xMax:
		x = xi - g.far()
	case dx == 0:
		if g.rng.Intn(2) == 0 {
			x = xi + g.far()
		} else {
			x = xi - g.far()
		}
	}

	return core.Clamp(core.Round(x), g.MinX(), g.MaxX()), core.Round(y)
}

// far samples a hop length from the upper half of the reachable range.
func (g *Generator) far() float64 {
	return g.uniform(0.5*g.xMax, g.xMax)
}

// uniform returns a float in [a, b].
func (g *Generator) uniform(a, b float64) float64 {
	return a + (b-a)*g.rng.Float64()
}
