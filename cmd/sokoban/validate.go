package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
	engine "github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files",
	Long: `Parse level files (.yaml, .yml, .xsb, .sok, .txt) and check that every
level is playable: exactly one player, at least one target and no fewer
boxes than targets. Prints per-level statistics and exits non-zero if
any file or level fails.

Examples:
  sokoban validate ./packs/mine.xsb
  sokoban validate ./packs/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	loader := levels.NewLoader("", a.logger)
	failed := 0

	for _, path := range args {
		pack, err := loader.LoadFile(path)
		if err != nil {
			fmt.Fprintf(out, "FAIL  %s\n      %v\n", path, err)
			failed++
			continue
		}

		fmt.Fprintf(out, "%s: %s (%d levels)\n", path, pack.Title(), pack.Len())
		for i, def := range pack.Levels {
			stats := engine.ComputeStats(def.Map)
			status := "ok  "
			detail := ""
			if err := engine.ValidateStrict(def); err != nil {
				status = "FAIL"
				detail = "\n        " + err.Error()
				failed++
			}
			fmt.Fprintf(out, "  %s %2d. %-20s %2dx%-2d boxes=%d targets=%d placed=%d%s\n",
				status, i+1, def.Name, stats.Width, stats.Height,
				stats.Boxes, stats.Targets, stats.Placed, detail)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d problem(s) found", failed)
	}
	return nil
}
