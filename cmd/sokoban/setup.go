package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// app holds what every command needs after flag parsing.
type app struct {
	cfg    config.SokobanConfig
	logger *log.Logger
	closer io.Closer // log file, if any
}

// setup loads config, applies the difficulty preset and flag overrides,
// and hands rules and display options to the game package.
func setup() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}

	a := &app{cfg: cfg, logger: log.New(io.Discard)}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		a.closer = f
		a.logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "sokoban",
		})
	}

	a.logger.Debug("config loaded",
		"history_depth", cfg.Rules.HistoryDepth,
		"enforce_move_limits", cfg.Rules.EnforceMoveLimits,
		"levels_dir", cfg.Levels.Dir,
		"default_pack", cfg.Levels.DefaultPack,
	)

	sokoban.SetRules(cfg.Rules)
	sokoban.SetDisplay(cfg.Display)
	sokoban.SetLogger(a.logger)

	return a, nil
}

// Close releases the log file.
func (a *app) Close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

// openStore opens the records database. Failure is a warning: play
// continues without records.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		a.logger.Warn("records disabled", "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Player = os.Getenv("USER")
	return cfg
}
