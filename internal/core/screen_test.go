package core

import (
	"slices"
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		if row := s.Row(y); strings.TrimLeft(row, " ") != "" {
			t.Fatalf("new screen row %d = %q, expected blanks", y, row)
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are clipped, reads are blank
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.Set(p[0], p[1], 'A')
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d, %d) outside the screen should be a space", p[0], p[1])
		}
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out of bounds Set should not wrap into the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRectColored(NewRect(0, 0, 4, 3), 'X', ColorRed)

	s.Clear()

	if s.String() != "    \n    \n    " {
		t.Errorf("after Clear: %q", s.String())
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if row := s.Row(1); row[2:7] != "Hello" {
		t.Errorf("row 1 = %q", row)
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}

	// One cell per rune, not per byte
	s.DrawText(0, 3, "♥ 2")
	if s.Get(0, 3) != '♥' || s.Get(2, 3) != '2' {
		t.Errorf("row 3 = %q", s.Row(3))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	expected := "      \n      \n  ### \n  ### \n  ### \n      "
	if s.String() != expected {
		t.Errorf("DrawRect:\n%s\nexpected:\n%s", s.String(), expected)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 0, 5, 4))

	expected := []string{
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
		"       ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row0 := s.Row(0); row0 != "Hello   " {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	if row0 := s.Row(0); row0 != "Hello          " {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
	if row5 := s.Row(5); strings.TrimSpace(row5) != "" {
		t.Errorf("rows cut by the shrink should come back blank, row 5 = %q", row5)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	if row := s.Row(2); row != "Test      " {
		t.Errorf("Row(2) = %q", row)
	}
	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '@', ColorYellow)

	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected yellow '@'", cell)
	}

	s.DrawTextColored(0, 0, "Hi", ColorRed)
	if s.GetCell(1, 0).Color != ColorRed {
		t.Error("DrawTextColored should color every rune")
	}
}

func TestScreenSpans(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(1, 0, "ab", ColorRed)
	s.SetColored(3, 0, 'c', ColorGray)
	s.SetColored(7, 0, 'd', ColorRed)

	expected := []Span{
		{" ", ColorDefault},
		{"ab", ColorRed},
		{"c", ColorGray},
		{"   ", ColorDefault},
		{"d", ColorRed},
	}
	if got := s.Spans(0); !slices.Equal(got, expected) {
		t.Errorf("Spans(0) = %+v, expected %+v", got, expected)
	}

	if got := s.Spans(1); len(got) != 1 || got[0].Text != "        " {
		t.Errorf("blank row spans = %+v", got)
	}
	if s.Spans(5) != nil {
		t.Error("spans outside the screen should be nil")
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Error("default color should have no code")
	}
	if ColorOrange.ANSI() != "208" || ColorBrightWhite.ANSI() != "15" {
		t.Errorf("ANSI codes = %q, %q", ColorOrange.ANSI(), ColorBrightWhite.ANSI())
	}
}
