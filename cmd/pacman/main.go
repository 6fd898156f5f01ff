// pacman is a terminal pacman clone with selectable mazes.
//
// Usage:
//
//	pacman play [maze]       - Play a maze directly
//	pacman maps              - List available mazes
//	pacman menu              - Start the interactive maze picker
//	pacman serve             - Start SSH server for remote play
//	pacman scores <maze>     - Show high scores for a maze
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible ghost movement
//	--db <path>     - Set database path (default: ~/.pacman/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pacman - Eat the dots, dodge the ghosts, in your terminal",
	Long: `Pacman is a terminal clone of the classic maze chase game.

Steer through the maze eating every dot while the ghosts hunt you down.
Power pills turn the tables for a few seconds; eat frightened ghosts for
bonus points, and grab the fruit when it appears.

Available commands:
  maps     - Show all available mazes
  play     - Play a maze directly
  menu     - Interactive maze picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  pacman maps
  pacman play classic
  pacman menu
  pacman serve --ssh :2222
  pacman scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pacman/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
