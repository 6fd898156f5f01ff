// Package game implements the pacman simulation engine: maze geometry,
// entity movement, collision and scoring, and the timed mode transitions.
// The package is pure logic with no terminal or Bubble Tea dependencies;
// the platform handles input mapping, pacing, and display.
package game

import (
	"math/rand"
	"time"

	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/config"
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/core"
)

// DirectionChooser picks one of the candidate directions for a ghost.
// The default chooser draws uniformly from the game RNG; tests may install
// a scripted chooser for fully fixed ghost paths.
type DirectionChooser func(candidates []core.Delta) core.Delta

// Game owns every piece of mutable simulation state. A single goroutine
// drives it through Step; nothing in here is safe for concurrent use and
// nothing needs to be.
type Game struct {
	mazeID string
	source []string
	maze   *Maze
	cfg    config.PacmanConfig

	rng    *rand.Rand
	choose DirectionChooser
	now    func() time.Time
	tick   uint64

	player *Player
	ghosts []*Ghost

	pellets          map[core.Point]struct{}
	powerPills       map[core.Point]struct{}
	pelletsRemaining int

	fruit       core.Point
	hasFruit    bool
	fruitActive bool
	fruitSpawn  time.Time

	dotsEaten         int
	fruitTriggered70  bool
	fruitTriggered170 bool

	score            int
	lives            int
	level            int
	extraLifeAwarded bool

	gameOver bool
	won      bool
	paused   bool

	powerActive bool
	powerStart  time.Time

	interval time.Duration
}

// Package-level variables for config/difficulty, set by the CLI before the
// game instance is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the rules config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a game for the given maze source. The source is a rectangular
// character grid using the maze legend; a nil or empty source produces an
// empty world that plays as a no-op rather than faulting.
func New(mazeID string, source []string) *Game {
	return &Game{
		mazeID: mazeID,
		source: source,
		now:    time.Now,
	}
}

// ID returns the identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	return "pacman:" + g.mazeID
}

// MazeID returns the identifier of the maze being played.
func (g *Game) MazeID() string {
	return g.mazeID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset initializes or fully restarts the game: rules are (re)loaded, the
// RNG is reseeded, and score, lives, and level return to their initial
// values.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		cfg = config.DefaultPacmanConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPacmanPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(rc.Seed))
	if g.choose == nil {
		g.choose = g.randomChoice
	}
	if g.now == nil {
		g.now = time.Now
	}
	g.tick = 0

	g.maze = ParseMaze(g.source)
	g.resetGame()
}

// SetDirectionChooser replaces the ghost direction decision function.
// Passing nil restores the uniform random chooser.
func (g *Game) SetDirectionChooser(c DirectionChooser) {
	if c == nil {
		c = g.randomChoice
	}
	g.choose = c
}

// SetClock replaces the time source used for the power and fruit windows.
// Passing nil restores the wall clock.
func (g *Game) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	g.now = now
}

// randomChoice is the default DirectionChooser.
func (g *Game) randomChoice(candidates []core.Delta) core.Delta {
	return candidates[g.rng.Intn(len(candidates))]
}

// resetGame restores the full initial state: fresh collectibles from the
// immutable layout, starting positions, and zeroed score/lives/level.
func (g *Game) resetGame() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.extraLifeAwarded = false
	g.gameOver = false
	g.won = false
	g.paused = false

	g.interval = secondsToDuration(g.cfg.Timing.StartInterval)

	g.restoreCollectibles()
	g.resetFruitState()
	g.spawnAgents()
	g.resetPositions()
}

// nextLevel advances to the next level: same score and lives, fresh
// collectibles, and a shorter tick interval down to the configured floor.
func (g *Game) nextLevel() {
	g.level++
	g.won = false
	g.powerActive = false

	g.restoreCollectibles()
	g.resetFruitState()
	g.resetPositions()

	next := g.interval - secondsToDuration(g.cfg.Timing.IntervalStep)
	floor := secondsToDuration(g.cfg.Timing.MinInterval)
	if next < floor {
		next = floor
	}
	g.interval = next
}

// restoreCollectibles copies the immutable initial layout back into the
// mutable sets and recomputes the remaining count.
func (g *Game) restoreCollectibles() {
	g.pellets = g.maze.InitialPellets()
	g.powerPills = g.maze.InitialPowerPills()
	g.pelletsRemaining = len(g.pellets) + len(g.powerPills)
}

// resetFruitState clears the fruit and rearms both per-level triggers.
func (g *Game) resetFruitState() {
	g.fruit, g.hasFruit = g.maze.FruitHome()
	g.fruitActive = false
	g.dotsEaten = 0
	g.fruitTriggered70 = false
	g.fruitTriggered170 = false
}

// spawnAgents builds the player and ghost roster from the maze markers.
// A maze without a player marker yields a nil player; movement and
// collision treat that as "nothing to do".
func (g *Game) spawnAgents() {
	g.player = nil
	if start, ok := g.maze.PlayerStart(); ok {
		g.player = NewPlayer(start)
	}
	g.ghosts = g.ghosts[:0]
	for _, start := range g.maze.GhostStarts() {
		g.ghosts = append(g.ghosts, NewGhost(start))
	}
}

// resetPositions returns every agent to its start cell with cleared
// velocities, buffered intent, and frightened flags, and ends any power
// window. Used after a life loss and on level or game resets.
func (g *Game) resetPositions() {
	if g.player != nil {
		g.player.Prev = g.player.Pos
		g.player.Pos = g.player.Start
		g.player.Dir = core.Delta{}
		g.player.Next = core.Delta{}
	}
	for _, gh := range g.ghosts {
		gh.Prev = gh.Pos
		gh.Pos = gh.Start
		gh.Dir = core.Delta{}
		gh.Frightened = false
	}
	g.powerActive = false
}

// Step advances the simulation by one tick. The sequence is fixed:
// control input, player move with pickups, timer expiry, ghost moves with
// interleaved collision checks, then a final co-location sweep. Won and
// GameOver suspend everything except the Restart/Advance commands.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.resetGame()
		return core.StepResult{State: g.State()}
	}
	// Advance is meaningful only in the won state; ignored silently elsewhere.
	if in.Has(core.ActionAdvance) && g.won && !g.gameOver {
		g.nextLevel()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.gameOver || g.won || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.steer(in)
	g.movePlayer()
	g.updateTimers()
	g.moveGhosts()
	g.sweepCollisions()

	return core.StepResult{State: g.State()}
}

// steer buffers the most recent direction intent. The buffered direction is
// applied opportunistically by movePlayer once stepping that way is legal.
func (g *Game) steer(in core.InputFrame) {
	if g.player == nil {
		return
	}
	switch {
	case in.Has(core.ActionUp):
		g.player.Next = core.DirUp
	case in.Has(core.ActionDown):
		g.player.Next = core.DirDown
	case in.Has(core.ActionLeft):
		g.player.Next = core.DirLeft
	case in.Has(core.ActionRight):
		g.player.Next = core.DirRight
	}
}

// updateTimers polls the power and fruit windows against the clock.
// Re-picking a power pill restarts the window rather than stacking it.
func (g *Game) updateTimers() {
	now := g.now()
	if g.powerActive && now.Sub(g.powerStart) > secondsToDuration(g.cfg.Timing.PowerSeconds) {
		g.powerActive = false
		for _, gh := range g.ghosts {
			gh.Frightened = false
		}
	}
	if g.fruitActive && now.Sub(g.fruitSpawn) > secondsToDuration(g.cfg.Timing.FruitSeconds) {
		g.fruitActive = false
	}
}

// checkExtraLife grants the one-per-game bonus life the first time the
// score crosses the configured threshold.
func (g *Game) checkExtraLife() {
	if !g.extraLifeAwarded && g.score >= g.cfg.Scoring.ExtraLifeAt {
		g.lives++
		g.extraLifeAwarded = true
	}
}

// spawnFruit activates the fruit at its home cell and starts its window.
func (g *Game) spawnFruit() {
	if !g.hasFruit {
		return
	}
	g.fruitActive = true
	g.fruitSpawn = g.now()
}

// TickInterval returns the wall-clock pacing for the current level. The
// platform schedules the next tick this far in the future; ticks that would
// fire early are skipped, never queued.
func (g *Game) TickInterval() time.Duration {
	if g.interval <= 0 {
		return secondsToDuration(config.DefaultPacmanConfig().Timing.StartInterval)
	}
	return g.interval
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
