// Package assets holds the read-only character registry. Characters register
// themselves once in init(); entities receive a *Character by reference and
// never mutate it.
package assets

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dungeon-jump/internal/core"
)

// ErrUnknownCharacter is returned by Lookup for unregistered IDs.
var ErrUnknownCharacter = errors.New("assets: unknown character")

// Frame is one animation frame: a short glyph string drawn on the sprite's
// top row.
type Frame string

// Facing indexes two-frame poses.
const (
	FaceRight = 0
	FaceLeft  = 1
)

// Character is the frame set of a playable character.
type Character struct {
	ID       string
	Title    string
	Color    core.Color
	RunRight [4]Frame
	RunLeft  [4]Frame
	Jump     [2]Frame // Indexed by FaceRight/FaceLeft
	Idle     [2]Frame // Indexed by FaceRight/FaceLeft
}

var (
	characters = make(map[string]*Character)
	mu         sync.RWMutex
)

// Register adds a character to the registry.
// Typically called from an init() function.
// Panics if a character with the same ID is already registered.
func Register(c Character) {
	mu.Lock()
	defer mu.Unlock()

	if c.ID == "" {
		panic("assets: character with empty ID")
	}
	if _, exists := characters[c.ID]; exists {
		panic(fmt.Sprintf("assets: character %q already registered", c.ID))
	}

	stored := c
	characters[c.ID] = &stored
}

// Lookup returns the character registered under id.
func Lookup(id string) (*Character, error) {
	mu.RLock()
	defer mu.RUnlock()

	c, ok := characters[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCharacter, id)
	}
	return c, nil
}

// MustLookup is Lookup for IDs known at compile time.
func MustLookup(id string) *Character {
	c, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns all registered characters, sorted by ID.
func List() []*Character {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]*Character, 0, len(characters))
	for _, c := range characters {
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}
