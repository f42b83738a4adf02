package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick packs and levels from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. Choosing Sokoban
opens the pack and level selector; best solves are shown per level.
Press B or Esc in a game to come back to the menu, Tab for records.

Examples:
  sokoban menu
  sokoban menu --levels-dir ./packs
  sokoban menu --db ./records.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	packs, err := levels.All(a.cfg.Levels.Dir, a.logger)
	if err != nil {
		return err
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsRecords {
			goBack, recErr := tui.RunRecords(packs, store, cfg.ScreenW, cfg.ScreenH)
			if recErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", recErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == sokoban.IDClassic {
			selection, updatedCfg, selErr := tui.RunLevelSelector(packs, store, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				continue
			}

			sokoban.SetPack(selection.Pack)
			sokoban.SetStartLevel(selection.Level)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		goBack, runErr := tui.RunFromMenu(game, store, cfg)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			break
		}
		if !goBack {
			break
		}
	}
	return nil
}
