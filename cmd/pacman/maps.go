package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/maze"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List all available mazes",
	Long:  `Shows a list of all mazes shipped with the game.`,
	Run:   runMaps,
}

func runMaps(cmd *cobra.Command, args []string) {
	mazes := maze.List()

	if len(mazes) == 0 {
		fmt.Println("No mazes available.")
		return
	}

	fmt.Println("Available mazes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range mazes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, m := range mazes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pacman play <id>' to play a maze.")
}
