package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/core"
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/game"
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/maze"
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/platform/tui"
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMapFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [maze]",
	Short: "Play a maze",
	Long: `Start playing the given maze (default: classic).

Controls:
  W/A/S/D or arrows - Steer
  P                 - Pause
  Space             - Next level (after clearing a board)
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - More lives, slower ghosts
  normal - Standard rules
  hard   - Fewer lives, faster pace
  fixed  - No speedup between levels

Examples:
  pacman play
  pacman play compact
  pacman play classic --difficulty hard
  pacman play --map-file ./my-maze.txt
  pacman play classic --config ./my-pacman.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMapFile, "map-file", "", "Path to an external maze file (overrides the maze argument)")
}

func runPlay(cmd *cobra.Command, args []string) {
	mazeID := "classic"
	if len(args) > 0 {
		mazeID = args[0]
	}

	// Load the board, either from the catalog or an external file
	var source []string
	var err error
	if flagMapFile != "" {
		source, err = maze.LoadFile(flagMapFile)
		if err != nil {
			// Degrade to an empty world; the engine tolerates it
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			source = nil
		}
		mazeID = "custom"
	} else {
		if !maze.Exists(mazeID) {
			fmt.Fprintf(os.Stderr, "Error: unknown maze %q\n", mazeID)
			fmt.Fprintln(os.Stderr, "Run 'pacman maps' to see available mazes.")
			os.Exit(1)
		}
		source, err = maze.Load(mazeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading maze: %v\n", err)
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Apply config overrides before creation
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	g := game.New(mazeID, source)

	// Open score storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
