package game

import (
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/core"
)

// ghostHitsPlayer detects a collision for a ghost that just moved from
// oldPos. Two cases count: sharing a cell, and swapping cells with the
// player inside the same tick. The swap case is the one plain co-location
// misses when both move toward each other along one axis.
func (g *Game) ghostHitsPlayer(gh *Ghost, oldPos core.Point) bool {
	p := g.player
	if p == nil {
		return false
	}

	if gh.Pos == p.Pos {
		return true
	}

	playerOld := p.Pos.Add(p.Dir.Reverse())
	return playerOld == gh.Pos && oldPos == p.Pos
}

// handleCollision resolves a player-ghost contact. A frightened ghost is
// consumed: points are awarded and it respawns at its start with everything
// cleared, without ending the tick. Otherwise a life is lost; the board
// resets, or the game ends when no lives remain. The return value reports
// whether a life was lost, which stops ghost processing for the tick.
func (g *Game) handleCollision(gh *Ghost) bool {
	if gh.Frightened {
		g.score += g.cfg.Scoring.Ghost
		g.checkExtraLife()
		gh.Prev = gh.Pos
		gh.Pos = gh.Start
		gh.Dir = core.Delta{}
		gh.Frightened = false
		return false
	}

	if g.lives <= 0 {
		return false
	}
	g.lives--
	if g.lives <= 0 {
		g.gameOver = true
	} else {
		g.resetPositions()
	}
	return true
}

// sweepCollisions is the whole-board safety net run after every ghost has
// moved. Co-location only; crossings were already caught per ghost.
func (g *Game) sweepCollisions() {
	p := g.player
	if p == nil {
		return
	}
	for _, gh := range g.ghosts {
		if gh.Pos == p.Pos {
			g.handleCollision(gh)
			return
		}
	}
}

// collect resolves whatever sits at the player's post-move position:
// pellet, power pill, then fruit. Either edible pickup advances the
// dots-eaten counter and re-checks the extra-life and fruit triggers.
func (g *Game) collect() {
	p := g.player
	if p == nil {
		return
	}
	pos := p.Pos

	if _, ok := g.pellets[pos]; ok {
		delete(g.pellets, pos)
		g.score += g.cfg.Scoring.Pellet
		g.pelletsRemaining--
		g.registerDotEaten()
	}

	if _, ok := g.powerPills[pos]; ok {
		delete(g.powerPills, pos)
		g.score += g.cfg.Scoring.PowerPill
		g.pelletsRemaining--
		g.registerDotEaten()

		// Power window restarts from this pickup; it never stacks.
		g.powerStart = g.now()
		g.powerActive = true
		for _, gh := range g.ghosts {
			gh.Frightened = true
		}
	}

	if g.hasFruit && g.fruitActive && pos == g.fruit {
		g.score += g.cfg.Scoring.Fruit
		g.fruitActive = false
		g.checkExtraLife()
	}

	// An empty board only means a win when the maze had collectibles to
	// begin with; a failed maze load never wins.
	if g.pelletsRemaining == 0 && g.maze.CollectibleCount() > 0 {
		g.won = true
	}
}

// registerDotEaten advances the per-level eaten counter and fires the
// one-shot fruit triggers at their exact counts.
func (g *Game) registerDotEaten() {
	g.dotsEaten++
	g.checkExtraLife()

	switch {
	case g.dotsEaten == g.cfg.Fruit.FirstTrigger && !g.fruitTriggered70:
		g.spawnFruit()
		g.fruitTriggered70 = true
	case g.dotsEaten == g.cfg.Fruit.SecondTrigger && !g.fruitTriggered170:
		g.spawnFruit()
		g.fruitTriggered170 = true
	}
}
