package game

import (
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/core"
)

// warpTarget returns the teleport destination when an agent standing at a
// tunnel endpoint moves out of the maze in the matching direction. Wrapping
// requires both endpoints; with either missing the tunnel is inert.
func (g *Game) warpTarget(pos core.Point, dir core.Delta) (core.Point, bool) {
	left, right, ok := g.maze.Warps()
	if !ok {
		return core.Point{}, false
	}
	if pos == left && dir.DX < 0 {
		return right, true
	}
	if pos == right && dir.DX > 0 {
		return left, true
	}
	return core.Point{}, false
}

// movePlayer applies one player tick: adopt the buffered direction when it
// points at an open cell, then warp or step, then collect whatever sits at
// the new position. The pre-move position is always recorded as Prev.
func (g *Game) movePlayer() {
	p := g.player
	if p == nil {
		return
	}

	old := p.Pos

	// Adopt the buffered direction only once it is legal; otherwise it
	// stays buffered for a later tick.
	if !p.Next.Zero() && g.maze.IsOpen(p.Pos.Add(p.Next)) {
		p.Dir = p.Next
		p.Next = core.Delta{}
	}

	if !p.Dir.Zero() {
		if target, ok := g.warpTarget(p.Pos, p.Dir); ok {
			// Tunnel wrap: velocity is kept, and the tick ends here
			// with no pickup at the destination cell.
			p.Pos = target
			p.Prev = old
			return
		}

		next := p.Pos.Add(p.Dir)
		if g.maze.IsOpen(next) {
			p.Pos = next
		} else {
			// Hit a wall: stop, but keep the buffered intent.
			p.Dir = core.Delta{}
		}
	}

	p.Prev = old
	g.collect()
}

// moveGhosts applies one tick for every ghost in roster order. Collision
// is checked immediately after each individual ghost move so a mid-tick
// hit resolves before later ghosts decide anything.
func (g *Game) moveGhosts() {
	for _, gh := range g.ghosts {
		old := gh.Pos

		// A stationary ghost picks a fresh direction.
		if gh.Dir.Zero() {
			if dirs := g.maze.ValidDirections(gh.Pos); len(dirs) > 0 {
				gh.Dir = g.choose(dirs)
			}
		}

		// At a junction, sometimes change course, but never straight
		// back the way it came unless reverse is the only exit.
		if g.maze.IsJunction(gh.Pos) && g.rng.Float64() < g.cfg.Gameplay.JunctionChance {
			dirs := g.maze.ValidDirections(gh.Pos)
			forward := dirs[:0]
			for _, d := range dirs {
				if d != gh.Dir.Reverse() {
					forward = append(forward, d)
				}
			}
			if len(forward) > 0 {
				gh.Dir = g.choose(forward)
			}
		}

		if target, ok := g.warpTarget(gh.Pos, gh.Dir); ok {
			gh.Pos = target
			gh.Prev = old
			if g.ghostHitsPlayer(gh, old) && g.handleCollision(gh) {
				// A life was lost; the rest of the roster sits this
				// tick out.
				return
			}
			continue
		}

		next := gh.Pos.Add(gh.Dir)
		if g.maze.IsOpen(next) {
			gh.Pos = next
			if g.ghostHitsPlayer(gh, old) && g.handleCollision(gh) {
				return
			}
		} else if dirs := g.maze.ValidDirections(gh.Pos); len(dirs) > 0 {
			// Blocked: re-pick and wait for the next tick instead of
			// stopping the way the player does.
			gh.Dir = g.choose(dirs)
		}

		gh.Prev = old
	}
}
