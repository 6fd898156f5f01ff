package game

import (
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/core"
)

// Tile is the kind of a single maze cell.
type Tile uint8

const (
	TileOpen Tile = iota
	TileWall
)

// Maze legend characters accepted by ParseMaze.
const (
	legendWall      = '#'
	legendPlayer    = 'c'
	legendGhost     = 'n'
	legendFruit     = '@'
	legendWarpLeft  = '<'
	legendWarpRight = '>'
	legendPellet    = '.'
	legendPowerPill = 'o'
)

// Maze is the immutable world geometry plus the initial collectible layout.
// Entity markers are stripped at parse time, so the tile grid only ever
// contains walls and open cells.
type Maze struct {
	height int
	width  int
	tiles  [][]Tile

	warpLeft  core.Point
	warpRight core.Point
	hasWarp   bool

	playerStart    core.Point
	hasPlayerStart bool
	ghostStarts    []core.Point

	fruitHome    core.Point
	hasFruitHome bool

	initialPellets    map[core.Point]struct{}
	initialPowerPills map[core.Point]struct{}
}

// ParseMaze builds a maze from raw text rows. Shorter rows are right-padded
// with open cells so the grid is rectangular. A nil or empty source produces
// an empty 0x0 maze; callers must tolerate it rather than fault.
//
// The warp pair is only honored when both endpoints are present. A lone '<'
// or '>' disables tunnel wrapping entirely.
func ParseMaze(lines []string) *Maze {
	m := &Maze{
		initialPellets:    make(map[core.Point]struct{}),
		initialPowerPills: make(map[core.Point]struct{}),
	}

	m.height = len(lines)
	for _, line := range lines {
		if len([]rune(line)) > m.width {
			m.width = len([]rune(line))
		}
	}

	m.tiles = make([][]Tile, m.height)
	var sawWarpLeft, sawWarpRight bool

	for y, line := range lines {
		row := make([]Tile, m.width)
		for x, ch := range []rune(line) {
			pos := core.Point{Y: y, X: x}
			switch ch {
			case legendWall:
				row[x] = TileWall
			case legendPlayer:
				m.playerStart = pos
				m.hasPlayerStart = true
			case legendGhost:
				m.ghostStarts = append(m.ghostStarts, pos)
			case legendFruit:
				m.fruitHome = pos
				m.hasFruitHome = true
			case legendWarpLeft:
				m.warpLeft = pos
				sawWarpLeft = true
			case legendWarpRight:
				m.warpRight = pos
				sawWarpRight = true
			case legendPellet:
				m.initialPellets[pos] = struct{}{}
			case legendPowerPill:
				m.initialPowerPills[pos] = struct{}{}
			}
		}
		m.tiles[y] = row
	}

	m.hasWarp = sawWarpLeft && sawWarpRight
	return m
}

// Height returns the maze height in rows.
func (m *Maze) Height() int {
	return m.height
}

// Width returns the maze width in columns.
func (m *Maze) Width() int {
	return m.width
}

// InBounds reports whether the position lies inside the grid.
func (m *Maze) InBounds(p core.Point) bool {
	return p.Y >= 0 && p.Y < m.height && p.X >= 0 && p.X < m.width
}

// IsWall reports whether the position is blocked. Out-of-bounds positions
// count as walls; the boundary fails closed.
func (m *Maze) IsWall(p core.Point) bool {
	if !m.InBounds(p) {
		return true
	}
	return m.tiles[p.Y][p.X] == TileWall
}

// IsOpen reports whether the position is an in-bounds walkable cell.
// Out-of-bounds is not open.
func (m *Maze) IsOpen(p core.Point) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.tiles[p.Y][p.X] != TileWall
}

// ValidDirections enumerates the axis directions leading to an open,
// in-bounds neighbor, in the stable core.Directions order.
func (m *Maze) ValidDirections(p core.Point) []core.Delta {
	dirs := make([]core.Delta, 0, 4)
	for _, d := range core.Directions {
		if m.IsOpen(p.Add(d)) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// IsJunction reports whether the position has more than two exits, which is
// where ghosts get a chance to change direction.
func (m *Maze) IsJunction(p core.Point) bool {
	return len(m.ValidDirections(p)) > 2
}

// Warps returns the tunnel endpoints. ok is false when the maze defines
// fewer than both endpoints, in which case wrapping is disabled.
func (m *Maze) Warps() (left, right core.Point, ok bool) {
	return m.warpLeft, m.warpRight, m.hasWarp
}

// PlayerStart returns the player spawn cell, if the maze defines one.
func (m *Maze) PlayerStart() (core.Point, bool) {
	return m.playerStart, m.hasPlayerStart
}

// GhostStarts returns the ghost spawn cells in maze-source order.
// Callers must not mutate the returned slice.
func (m *Maze) GhostStarts() []core.Point {
	return m.ghostStarts
}

// FruitHome returns the bonus fruit cell, if the maze defines one.
func (m *Maze) FruitHome() (core.Point, bool) {
	return m.fruitHome, m.hasFruitHome
}

// InitialPellets returns a fresh copy of the pellet layout.
func (m *Maze) InitialPellets() map[core.Point]struct{} {
	res := make(map[core.Point]struct{}, len(m.initialPellets))
	for p := range m.initialPellets {
		res[p] = struct{}{}
	}
	return res
}

// InitialPowerPills returns a fresh copy of the power pill layout.
func (m *Maze) InitialPowerPills() map[core.Point]struct{} {
	res := make(map[core.Point]struct{}, len(m.initialPowerPills))
	for p := range m.initialPowerPills {
		res[p] = struct{}{}
	}
	return res
}

// CollectibleCount returns how many pellets plus power pills the maze
// starts with. A zero count marks a board where the win condition can
// never trigger.
func (m *Maze) CollectibleCount() int {
	return len(m.initialPellets) + len(m.initialPowerPills)
}
