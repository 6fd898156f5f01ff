package core

import "testing"

func TestDeltaReverse(t *testing.T) {
	tests := []struct {
		name     string
		d        Delta
		expected Delta
	}{
		{"up", DirUp, DirDown},
		{"down", DirDown, DirUp},
		{"left", DirLeft, DirRight},
		{"right", DirRight, DirLeft},
		{"zero", Delta{}, Delta{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.Reverse(); got != tc.expected {
				t.Errorf("Reverse() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDeltaZero(t *testing.T) {
	if !(Delta{}).Zero() {
		t.Error("Zero delta should report Zero()")
	}
	for _, d := range Directions {
		if d.Zero() {
			t.Errorf("Direction %v should not report Zero()", d)
		}
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{Y: 3, X: 5}

	if got := p.Add(DirUp); got != (Point{Y: 2, X: 5}) {
		t.Errorf("Add(DirUp) = %v, expected (2,5)", got)
	}
	if got := p.Add(DirRight); got != (Point{Y: 3, X: 6}) {
		t.Errorf("Add(DirRight) = %v, expected (3,6)", got)
	}
	if got := p.Add(Delta{}); got != p {
		t.Errorf("Add(zero) = %v, expected unchanged %v", got, p)
	}
}

func TestDirectionsStableOrder(t *testing.T) {
	want := []Delta{DirUp, DirDown, DirLeft, DirRight}
	if len(Directions) != len(want) {
		t.Fatalf("Directions has %d entries, expected %d", len(Directions), len(want))
	}
	for i := range want {
		if Directions[i] != want[i] {
			t.Errorf("Directions[%d] = %v, expected %v", i, Directions[i], want[i])
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max int
		expected      int
	}{
		{"within range", 5, 0, 10, 5},
		{"below min", -5, 0, 10, 0},
		{"above max", 15, 0, 10, 10},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
					tc.val, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min is wrong")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max is wrong")
	}
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs is wrong")
	}
}
