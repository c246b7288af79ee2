// Package prefs persists the player's last choices (character, difficulty,
// name) in the platform's per-user data directory via gdata.
package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// AppName is the gdata application name used by the CLI.
const AppName = "dungeon-jump"

const itemKey = "prefs"

// Prefs is the saved state between runs. Empty fields mean "not chosen yet".
type Prefs struct {
	Character  string `json:"character"`
	Difficulty string `json:"difficulty"`
	Name       string `json:"name"`
}

// Merge returns p with empty fields filled from fallback.
func (p Prefs) Merge(fallback Prefs) Prefs {
	if p.Character == "" {
		p.Character = fallback.Character
	}
	if p.Difficulty == "" {
		p.Difficulty = fallback.Difficulty
	}
	if p.Name == "" {
		p.Name = fallback.Name
	}
	return p
}

// Manager loads and saves Prefs. A nil *Manager is valid: it loads nothing
// and saves nowhere, so callers can keep going when storage is unavailable.
type Manager struct {
	data *gdata.Manager
}

// Open opens the data directory for appName, creating it if needed.
func Open(appName string) (*Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("prefs: open %q: %w", appName, err)
	}
	return &Manager{data: m}, nil
}

// Load returns the saved prefs, or zero Prefs when nothing was saved.
func (m *Manager) Load() (Prefs, error) {
	var p Prefs
	if m == nil {
		return p, nil
	}

	data, err := m.data.LoadItem(itemKey)
	if err != nil {
		return p, fmt.Errorf("prefs: load: %w", err)
	}
	if data == nil {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("prefs: parse: %w", err)
	}
	return p, nil
}

// Save stores p, replacing what was saved before.
func (m *Manager) Save(p Prefs) error {
	if m == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := m.data.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	return nil
}
