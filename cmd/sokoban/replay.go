package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/levels/formats"
	engine "github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

var replayCmd = &cobra.Command{
	Use:   "replay <pack> <level> <moves>",
	Short: "Apply a move string to a level",
	Long: `Load a level and apply a move string without opening the UI, then
print the final board and phase. Moves are u, d, l, r in either case;
whitespace is ignored. Exits non-zero if a move is rejected.

Examples:
  sokoban replay tutorial 1 rrr
  sokoban replay classic 2 "ll rrrr"`,
	Args: cobra.ExactArgs(3),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	pack, err := levels.Resolve(a.cfg.Levels.Dir, args[0], a.logger)
	if err != nil {
		return err
	}

	level, err := strconv.Atoi(args[1])
	if err != nil || level < 1 || level > pack.Len() {
		return fmt.Errorf("level must be between 1 and %d", pack.Len())
	}

	e := engine.New(pack.Levels,
		engine.WithLogger(a.logger),
		engine.WithHistoryDepth(a.cfg.Rules.HistoryDepth),
		engine.WithMoveLimits(a.cfg.Rules.EnforceMoveLimits),
	)
	e.Load(level - 1)

	applied, replayErr := e.Replay(args[2])

	out := cmd.OutOrStdout()
	pos := e.PlayerPos()
	fmt.Fprintf(out, "%s - level %d: %s\n\n", pack.Title(), level, e.LevelName())
	fmt.Fprintln(out, strings.Join(formats.FormatRows(e.Grid()), "\n"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Phase: %s  Moves: %d  Applied: %d  Player: %d,%d\n",
		e.Phase(), e.Moves(), applied, pos.X, pos.Y)

	return replayErr
}
