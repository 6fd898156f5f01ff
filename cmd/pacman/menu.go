package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/core"
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/game"
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/maze"
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/platform/tui"
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a maze picker menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a maze.
After a game ends, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select maze
  Tab          - View scoreboard
  Q            - Quit

Examples:
  pacman menu
  pacman menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Carry over any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		mazeID := menuResult.MazeID
		if mazeID == "" {
			break
		}

		source, err := maze.Load(mazeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading maze: %v\n", err)
			continue
		}

		g := game.New(mazeID, source)

		// Fresh seed for each run
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(g, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
