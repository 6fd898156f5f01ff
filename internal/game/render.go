package game

import (
	"fmt"

	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/core"
)

// HUD occupies the rows above the maze.
const hudHeight = 2

// Render draws the current state into the screen buffer. Rendering is
// best-effort display output; it reads the Frame boundary and never mutates
// simulation state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	offX := core.Max(0, (dst.Width()-g.maze.Width())/2)
	offY := hudHeight

	g.renderHUD(dst)

	for y := 0; y < g.maze.Height(); y++ {
		for x := 0; x < g.maze.Width(); x++ {
			if g.maze.IsWall(core.Point{Y: y, X: x}) {
				dst.SetCell(offX+x, offY+y, '▒', core.ColorBlue)
			}
		}
	}

	frame := g.Frame()
	for _, p := range frame.Pellets {
		dst.SetCell(offX+p.X, offY+p.Y, '.', core.ColorWhite)
	}
	for _, p := range frame.PowerPills {
		dst.SetCell(offX+p.X, offY+p.Y, 'O', core.ColorGreen)
	}
	if frame.FruitActive {
		dst.SetCell(offX+frame.Fruit.X, offY+frame.Fruit.Y, '*', core.ColorMagenta)
	}
	for _, gh := range frame.Ghosts {
		color := core.ColorBrightRed
		if gh.Frightened {
			color = core.ColorCyan
		}
		dst.SetCell(offX+gh.Pos.X, offY+gh.Pos.Y, gh.Glyph, color)
	}
	if frame.Player != nil {
		dst.SetCell(offX+frame.Player.Pos.X, offY+frame.Player.Pos.Y, frame.Player.Glyph, core.ColorBrightYellow)
	}

	switch {
	case g.gameOver:
		g.renderBanner(dst, "GAME OVER - Hit R to restart, Q to quit")
	case g.won:
		g.renderBanner(dst, "LEVEL UP - Hit SPACE to continue, Q to quit")
	case g.paused:
		g.renderBanner(dst, "PAUSED - Hit P to continue")
	}
}

// renderHUD draws the score line centered above the maze.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("Score: %d - Level: %d - Lives: %d", g.score, g.level, g.lives)
	x := core.Max(0, (dst.Width()-len(hud))/2)
	dst.DrawTextColored(x, 0, hud, core.ColorBrightWhite)
}

// renderBanner draws a centered status message over the maze.
func (g *Game) renderBanner(dst *core.Screen, msg string) {
	y := hudHeight + g.maze.Height()/2
	if y >= dst.Height() {
		y = dst.Height() / 2
	}
	x := core.Max(0, (dst.Width()-len(msg))/2)
	dst.DrawTextColored(x, y, msg, core.ColorBrightWhite)
}
