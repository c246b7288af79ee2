package prefs

import (
	"fmt"
	"testing"
	"time"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	m, err := Open(fmt.Sprintf("dungeon_jump_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("Cannot open gdata storage here: %v", err)
	}
	return m
}

func TestLoadWithoutSave(t *testing.T) {
	m := openTestManager(t)

	p, err := m.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if p != (Prefs{}) {
		t.Errorf("Load() = %+v, expected zero prefs", p)
	}
}

func TestSaveAndLoad(t *testing.T) {
	m := openTestManager(t)

	want := Prefs{Character: "wizard_f", Difficulty: "hard", Name: "merlin"}
	if err := m.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, expected %+v", got, want)
	}

	want.Name = "morgana"
	if err := m.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got, _ := m.Load(); got.Name != "morgana" {
		t.Errorf("second Save() not persisted: %+v", got)
	}
}

func TestNilManager(t *testing.T) {
	var m *Manager

	if err := m.Save(Prefs{Name: "x"}); err != nil {
		t.Errorf("nil Save() = %v", err)
	}
	p, err := m.Load()
	if err != nil || p != (Prefs{}) {
		t.Errorf("nil Load() = %+v, %v", p, err)
	}
}

func TestMerge(t *testing.T) {
	saved := Prefs{Character: "elf_m"}
	fallback := Prefs{Character: "knight_m", Difficulty: "medium", Name: "player"}

	got := saved.Merge(fallback)
	want := Prefs{Character: "elf_m", Difficulty: "medium", Name: "player"}
	if got != want {
		t.Errorf("Merge() = %+v, expected %+v", got, want)
	}
}
