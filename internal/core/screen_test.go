package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with blank default cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
			if s.GetCell(x, y).Color != ColorDefault {
				t.Errorf("New screen should use the default color at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetCell(3, 3, 'G', ColorGreen)
	cell := s.GetCell(3, 3)
	if cell.Rune != 'G' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 3) = %+v, expected green 'G'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return a blank cell
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear() left %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, 'K', ColorCyan)

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("Size = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	cell := s.GetCell(2, 2)
	if cell.Rune != 'K' || cell.Color != ColorCyan {
		t.Errorf("Content not preserved across resize, got %+v", cell)
	}

	// Shrinking clips
	s.Resize(3, 3)
	if s.Get(2, 2) != 'K' {
		t.Error("Content within the new bounds should survive shrinking")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place the runes")
	}

	// Clipped at the right edge, no panic
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText should write the visible prefix")
	}

	s.DrawTextCentered(2, "mid")
	row := s.Row(2)
	if !strings.Contains(row, "mid") {
		t.Errorf("Row(2) = %q, expected centered text", row)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawHLine(0, 0, 4, '-')
	s.DrawVLine(1, 0, 2, '|')

	if s.Row(0) != "-|--" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "-|--")
	}
	if s.Get(1, 1) != '|' {
		t.Error("DrawVLine did not reach row 1")
	}

	// Out of bounds row is blank
	if s.Row(5) != "    " {
		t.Errorf("Row(5) = %q, expected all spaces", s.Row(5))
	}
}
