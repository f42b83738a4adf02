package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
)

var flagListLevels bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List level packs",
	Long: `Shows the built-in level packs and any packs found in the levels
directory. A directory pack with the same ID as a built-in one replaces it.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&flagListLevels, "levels", "l", false, "Also list the levels of each pack")
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	packs, err := levels.All(a.cfg.Levels.Dir, a.logger)
	if err != nil {
		return err
	}

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return nil
	}

	fmt.Println("Level packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %6s  %s\n", maxIDLen, "ID", "Levels", "Name")
	fmt.Printf("  %-*s  %6s  %s\n", maxIDLen, "--", "------", "----")

	for _, p := range packs {
		name := p.Title()
		if p.Source != "builtin" {
			name += " (" + p.Source + ")"
		}
		fmt.Printf("  %-*s  %6d  %s\n", maxIDLen, p.ID, p.Len(), name)

		if flagListLevels {
			for i, def := range p.Levels {
				limit := ""
				if def.MoveLimit > 0 {
					limit = fmt.Sprintf("  [limit %d]", def.MoveLimit)
				}
				fmt.Printf("  %-*s  %6d. %s%s\n", maxIDLen, "", i+1, def.Name, limit)
			}
		}
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <id>' to play a pack.")
	return nil
}
