package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Sokoban SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the menu, level selector
and records board. Records are stored per server and tagged with the
SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.sokoban/host_key

Examples:
  sokoban serve                           # Listen on :23235 with auto-generated key
  sokoban serve --ssh :2222               # Listen on port 2222
  sokoban serve --host-key ./my_host_key  # Use specific host key
  sokoban serve --levels-dir ./packs      # Offer extra packs

Users can connect with:
  ssh localhost -p 23235`,
	RunE: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		LevelsDir:   a.cfg.Levels.Dir,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}
	if flagLogFile != "" {
		cfg.Logger = a.logger
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Sokoban SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
