// sokoban is a terminal Sokoban game with built-in level packs, solve
// records and an SSH server for remote play.
//
// Usage:
//
//	sokoban list                      - List level packs
//	sokoban play [pack]               - Play a pack
//	sokoban menu                      - Pick packs and levels interactively
//	sokoban validate <file>...        - Check level files
//	sokoban scores [pack]             - Show best solves
//	sokoban replay <pack> <n> <moves> - Replay a move string headlessly
//	sokoban serve                     - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>          - Records database (default: ~/.sokoban/records.db)
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--levels-dir <path>  - Extra directory of level packs
//	--log-file <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

var (
	// Global flags
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push boxes onto targets in your terminal",
	Long: `Sokoban is the classic warehouse puzzle: walk the keeper around the
grid and push every box onto a target. Boxes can be pushed, never pulled,
and only one at a time.

Available commands:
  list      - Show level packs
  play      - Play a pack directly
  menu      - Interactive pack and level picker
  validate  - Check level files
  scores    - View best solves
  replay    - Apply a move string to a level
  serve     - Start SSH server for remote play

Examples:
  sokoban list
  sokoban play tutorial
  sokoban play classic --level 3
  sokoban menu --difficulty hard
  sokoban validate ./packs/mine.xsb
  sokoban replay classic 2 llrrrr
  sokoban serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sokoban/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Extra directory of level packs (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
