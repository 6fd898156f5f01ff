package game

import (
	"sort"

	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/core"
)

// Phase labels the overall run state machine.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseWon      Phase = "won"
	PhaseGameOver Phase = "game_over"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick             uint64
	Score            int
	Level            int
	Lives            int
	DotsEaten        int
	PelletsRemaining int
	PlayerY          int
	PlayerX          int
	PlayerDir        core.Delta
	Ghosts           []GhostSnapshot
	FruitActive      bool
	Phase            Phase
}

// GhostSnapshot is one ghost's state inside a Snapshot.
type GhostSnapshot struct {
	Y, X       int
	Dir        core.Delta
	Frightened bool
}

// Snapshot returns the current state capture for determinism verification.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.gameOver:
		phase = PhaseGameOver
	case g.won:
		phase = PhaseWon
	case g.paused:
		phase = PhasePaused
	}

	snap := Snapshot{
		Tick:             g.tick,
		Score:            g.score,
		Level:            g.level,
		Lives:            g.lives,
		DotsEaten:        g.dotsEaten,
		PelletsRemaining: g.pelletsRemaining,
		FruitActive:      g.fruitActive,
		Phase:            phase,
	}
	if g.player != nil {
		snap.PlayerY = g.player.Pos.Y
		snap.PlayerX = g.player.Pos.X
		snap.PlayerDir = g.player.Dir
	}
	for _, gh := range g.ghosts {
		snap.Ghosts = append(snap.Ghosts, GhostSnapshot{
			Y:          gh.Pos.Y,
			X:          gh.Pos.X,
			Dir:        gh.Dir,
			Frightened: gh.Frightened,
		})
	}
	return snap
}

// AgentView is one agent's render state inside a Frame.
type AgentView struct {
	Pos        core.Point
	Glyph      rune
	Frightened bool
}

// Frame is the per-tick output contract for the rendering collaborator:
// every open collectible, the fruit, every agent, and the HUD scalars.
type Frame struct {
	Pellets     []core.Point
	PowerPills  []core.Point
	Fruit       core.Point
	FruitActive bool
	Player      *AgentView
	Ghosts      []AgentView
	HUD         core.GameState
}

// Frame builds the current render output. Collectible positions are sorted
// for stable iteration.
func (g *Game) Frame() Frame {
	f := Frame{
		Pellets:     sortedPoints(g.pellets),
		PowerPills:  sortedPoints(g.powerPills),
		Fruit:       g.fruit,
		FruitActive: g.hasFruit && g.fruitActive,
		HUD:         g.State(),
	}
	if g.player != nil {
		f.Player = &AgentView{Pos: g.player.Pos, Glyph: g.player.Glyph}
	}
	for _, gh := range g.ghosts {
		glyph := gh.Glyph
		if gh.Frightened {
			glyph = 'M'
		}
		f.Ghosts = append(f.Ghosts, AgentView{
			Pos:        gh.Pos,
			Glyph:      glyph,
			Frightened: gh.Frightened,
		})
	}
	return f
}

func sortedPoints(set map[core.Point]struct{}) []core.Point {
	points := make([]core.Point, 0, len(set))
	for p := range set {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}
