package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagClearScores bool
	flagScoresLevel int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show best solves",
	Long: `Display the best move count for every level of a pack, or of all
packs when no pack is given. With --level, list the top solves of one
level instead.

Examples:
  sokoban scores
  sokoban scores classic
  sokoban scores classic --level 3
  sokoban scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all records of the given pack")
	scoresCmd.Flags().IntVar(&flagScoresLevel, "level", 0, "Show the top solves of this level (1-based)")
}

func runScores(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) == 0 && (flagClearScores || flagScoresLevel != 0) {
		return errors.New("--clear and --level need a pack")
	}

	var packs []levels.Pack
	if len(args) == 1 {
		p, err := levels.Resolve(a.cfg.Levels.Dir, args[0], a.logger)
		if err != nil {
			return err
		}
		packs = []levels.Pack{p}
	} else {
		packs, err = levels.All(a.cfg.Levels.Dir, a.logger)
		if err != nil {
			return err
		}
	}

	if flagScoresLevel < 0 || (len(args) == 1 && flagScoresLevel > packs[0].Len()) {
		return fmt.Errorf("level must be between 1 and %d", packs[0].Len())
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening records database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.ClearSolves(packs[0].ID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Records of %s cleared.\n", packs[0].Title())
		return nil
	}

	if flagScoresLevel > 0 {
		return printLevelScores(out, store, packs[0], flagScoresLevel-1)
	}

	for i, p := range packs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printPackScores(out, store, p); err != nil {
			return err
		}
	}
	return nil
}

func printPackScores(out io.Writer, store *storage.Store, p levels.Pack) error {
	bests, err := store.PackSolves(p.ID)
	if err != nil {
		return err
	}
	stats, err := store.GetPackStats(p.ID)
	if err != nil {
		return err
	}

	byLevel := make(map[int]storage.LevelBest, len(bests))
	for _, b := range bests {
		byLevel[b.LevelIndex] = b
	}

	fmt.Fprintf(out, "Best solves - %s (%d/%d solved)\n", p.Title(), stats.SolvedLevels, p.Len())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-3s  %-20s  %-5s  %s\n", "#", "Level", "Best", "Solves")
	fmt.Fprintf(out, "  %-3s  %-20s  %-5s  %s\n", "-", "-----", "----", "------")

	for i, def := range p.Levels {
		best, solves := "-", 0
		if b, ok := byLevel[i]; ok {
			best = fmt.Sprintf("%d", b.BestMoves)
			solves = b.Solves
		}
		fmt.Fprintf(out, "  %-3d  %-20s  %-5s  %d\n", i+1, def.Name, best, solves)
	}

	if !stats.LastPlayed.IsZero() {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Last solve: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// printLevelScores lists the ten best solves of one level.
func printLevelScores(out io.Writer, store *storage.Store, p levels.Pack, index int) error {
	solves, err := store.BestSolves(p.ID, index, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Top solves - %s, level %d: %s\n", p.Title(), index+1, p.Levels[index].Name)
	fmt.Fprintln(out)
	if len(solves) == 0 {
		fmt.Fprintln(out, "  No solves yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-3s  %-5s  %-12s  %s\n", "#", "Moves", "Player", "Date")
	fmt.Fprintf(out, "  %-3s  %-5s  %-12s  %s\n", "-", "-----", "------", "----")
	for i, sv := range solves {
		player := sv.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-3d  %-5d  %-12s  %s\n", i+1, sv.Moves, player, sv.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
