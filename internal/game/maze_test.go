package game

import (
	"testing"

	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/core"
)

func TestParseMazeBasics(t *testing.T) {
	m := ParseMaze([]string{
		"#####",
		"#c.o#",
		"#.#n#",
		"#####",
	})

	if m.Height() != 4 || m.Width() != 5 {
		t.Fatalf("Expected 4x5 maze, got %dx%d", m.Height(), m.Width())
	}

	start, ok := m.PlayerStart()
	if !ok {
		t.Fatal("Expected a player start")
	}
	if start != (core.Point{Y: 1, X: 1}) {
		t.Errorf("Player start = %v, expected (1,1)", start)
	}

	ghosts := m.GhostStarts()
	if len(ghosts) != 1 || ghosts[0] != (core.Point{Y: 2, X: 3}) {
		t.Errorf("Ghost starts = %v, expected [(2,3)]", ghosts)
	}

	if len(m.InitialPellets()) != 2 {
		t.Errorf("Expected 2 pellets, got %d", len(m.InitialPellets()))
	}
	if len(m.InitialPowerPills()) != 1 {
		t.Errorf("Expected 1 power pill, got %d", len(m.InitialPowerPills()))
	}
	if m.CollectibleCount() != 3 {
		t.Errorf("CollectibleCount() = %d, expected 3", m.CollectibleCount())
	}
}

func TestParseMazeStripsEntityMarkers(t *testing.T) {
	m := ParseMaze([]string{
		"#####",
		"#cn@#",
		"#####",
	})

	// Marker cells must be walkable open tiles
	for _, p := range []core.Point{{Y: 1, X: 1}, {Y: 1, X: 2}, {Y: 1, X: 3}} {
		if !m.IsOpen(p) {
			t.Errorf("Expected marker cell %v to be open", p)
		}
	}
}

func TestParseMazePadsShortRows(t *testing.T) {
	m := ParseMaze([]string{
		"#####",
		"#c.",
		"#####",
	})

	if m.Width() != 5 {
		t.Fatalf("Width() = %d, expected 5", m.Width())
	}
	// Padded cells are open, not walls
	if !m.IsOpen(core.Point{Y: 1, X: 4}) {
		t.Error("Expected padded cell (1,4) to be open")
	}
}

func TestParseMazeEmptySource(t *testing.T) {
	m := ParseMaze(nil)

	if m.Height() != 0 || m.Width() != 0 {
		t.Errorf("Expected 0x0 maze, got %dx%d", m.Height(), m.Width())
	}
	if m.CollectibleCount() != 0 {
		t.Errorf("CollectibleCount() = %d, expected 0", m.CollectibleCount())
	}
	if m.IsOpen(core.Point{Y: 0, X: 0}) {
		t.Error("Nothing should be open in an empty maze")
	}
}

func TestMazeOutOfBoundsIsWall(t *testing.T) {
	m := ParseMaze([]string{
		"###",
		"#.#",
		"###",
	})

	outside := []core.Point{
		{Y: -1, X: 0},
		{Y: 0, X: -1},
		{Y: 3, X: 0},
		{Y: 0, X: 3},
	}
	for _, p := range outside {
		if !m.IsWall(p) {
			t.Errorf("Expected out-of-bounds %v to count as wall", p)
		}
		if m.IsOpen(p) {
			t.Errorf("Expected out-of-bounds %v to not be open", p)
		}
	}
}

func TestWarpPairRequired(t *testing.T) {
	both := ParseMaze([]string{
		"#####",
		"<...>",
		"#####",
	})
	left, right, ok := both.Warps()
	if !ok {
		t.Fatal("Expected warp pair to be active")
	}
	if left != (core.Point{Y: 1, X: 0}) || right != (core.Point{Y: 1, X: 4}) {
		t.Errorf("Warps = %v, %v, expected (1,0), (1,4)", left, right)
	}

	// A lone endpoint disables wrapping entirely
	lone := ParseMaze([]string{
		"#####",
		"<...#",
		"#####",
	})
	if _, _, ok := lone.Warps(); ok {
		t.Error("Expected lone warp endpoint to disable wrapping")
	}
}

func TestValidDirectionsAndJunction(t *testing.T) {
	m := ParseMaze([]string{
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	})

	// Corner: two exits, not a junction
	corner := core.Point{Y: 1, X: 1}
	if got := len(m.ValidDirections(corner)); got != 2 {
		t.Errorf("Corner exits = %d, expected 2", got)
	}
	if m.IsJunction(corner) {
		t.Error("Corner should not be a junction")
	}

	// Edge midpoint: three exits
	mid := core.Point{Y: 1, X: 2}
	if got := len(m.ValidDirections(mid)); got != 3 {
		t.Errorf("Edge midpoint exits = %d, expected 3", got)
	}
	if !m.IsJunction(mid) {
		t.Error("Edge midpoint should be a junction")
	}
}

func TestInitialLayoutCopiesAreFresh(t *testing.T) {
	m := ParseMaze([]string{
		"####",
		"#..#",
		"####",
	})

	first := m.InitialPellets()
	for p := range first {
		delete(first, p)
	}

	if len(m.InitialPellets()) != 2 {
		t.Error("Mutating a returned pellet set should not affect the maze")
	}
}
