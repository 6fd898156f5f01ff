package game

import (
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/core"
)

// Agent is the shared movement state for the player and the ghosts.
// Prev holds the position before the most recent step so the renderer can
// erase cleanly and the collision system can detect path crossings.
type Agent struct {
	Pos   core.Point
	Prev  core.Point
	Dir   core.Delta
	Start core.Point
	Glyph rune
}

// Player adds the buffered steering intent. Next is the most recently
// requested direction; it is adopted as the current velocity the first tick
// it points at an open cell, and preserved across blocked ticks otherwise.
type Player struct {
	Agent
	Next core.Delta
}

// NewPlayer spawns a player at the given cell.
func NewPlayer(start core.Point) *Player {
	return &Player{
		Agent: Agent{
			Pos:   start,
			Prev:  start,
			Start: start,
			Glyph: 'C',
		},
	}
}

// Ghost adds the frightened flag. A frightened ghost is edible instead of
// lethal until the power window closes.
type Ghost struct {
	Agent
	Frightened bool
}

// NewGhost spawns a ghost at the given cell.
func NewGhost(start core.Point) *Ghost {
	return &Ghost{
		Agent: Agent{
			Pos:   start,
			Prev:  start,
			Start: start,
			Glyph: 'W',
		},
	}
}
