package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/maze"
	"github.com/aruk-1986/python3-2-k3-ncurses-pacman/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <maze>",
	Short: "Show high scores for a maze",
	Long: `Display the top 10 high scores for the specified maze.

Examples:
  pacman scores classic
  pacman scores compact`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	mazeID := args[0]

	if !maze.Exists(mazeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown maze %q\n", mazeID)
		fmt.Fprintln(os.Stderr, "Run 'pacman maps' to see available mazes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(mazeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", maze.Title(mazeID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pacman play %s' to set the first high score!\n", mazeID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetMazeStats(mazeID); err == nil {
		fmt.Printf("Games played: %d   Best: %d (level %d)   Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestLevel, stats.AvgScore)
	}
}
