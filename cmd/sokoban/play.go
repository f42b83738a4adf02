package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing a level pack. Without an argument the default pack
from the config is used.

Controls:
  Arrows/WASD/HJKL  - Move (walking into a box pushes it)
  U/Z/Backspace     - Undo
  R                 - Restart level
  ?                 - Toggle hint
  N/] and [         - Next / previous level
  Enter             - Continue after solving a level
  P                 - Pause
  Ctrl+S            - Save a screenshot to ~/.sokoban/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Full undo, move limits ignored
  normal - Full undo, move limits enforced
  hard   - 10 undo steps, move limits enforced
  fixed  - Use the config file as is

Examples:
  sokoban play
  sokoban play tutorial
  sokoban play classic --level 4 --difficulty hard
  sokoban play mypack --levels-dir ./packs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start on (1-based, 0 = first)")
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	packID := a.cfg.Levels.DefaultPack
	if len(args) == 1 {
		packID = args[0]
	}

	pack, err := levels.Resolve(a.cfg.Levels.Dir, packID, a.logger)
	if err != nil {
		return fmt.Errorf("%w\nRun 'sokoban list' to see available packs.", err)
	}

	if flagLevel < 0 || flagLevel > pack.Len() {
		return fmt.Errorf("level %d out of range, pack %q has %d levels", flagLevel, pack.ID, pack.Len())
	}

	sokoban.SetPack(pack)
	sokoban.SetStartLevel(flagLevel)

	game, err := registry.Create(sokoban.IDClassic)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
