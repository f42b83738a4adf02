package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.sokoban/host_key.
	HostKeyPath string

	// DBPath is the path to the records database.
	DBPath string

	// LevelsDir is an optional directory of extra level packs.
	LevelsDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Logger receives server and session events. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.sokoban/records.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that hands every session a menu.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	packs  []levels.Pack
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "sokoban-ssh",
		})
	}

	packs, err := levels.All(cfg.LevelsDir, logger)
	if err != nil {
		return nil, fmt.Errorf("cannot load level packs: %w", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open records database", "error", err)
		store = nil // Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		packs:  packs,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".sokoban", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Player:  sshSession.User(),
	}

	model := NewSessionModel(s.store, s.packs, cfg)
	model.renderer = NewScreenRenderer(bubbletea.MakeRenderer(sshSession))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "packs", len(s.packs))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		s.Shutdown() //nolint:errcheck // Already failing
		return err
	}
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionView is the screen a session is currently showing.
type sessionView int

const (
	viewMenu sessionView = iota
	viewSelect
	viewRecords
	viewGame
)

// SessionModel runs the whole flow inside one program:
// menu -> level select -> game -> menu, plus the records board.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	packs    []levels.Pack
	config   core.RuntimeConfig
	renderer *ScreenRenderer
	view     sessionView
	menu     MenuModel
	selector LevelSelectModel
	records  RecordsModel
	game     Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, packs []levels.Pack, cfg core.RuntimeConfig) SessionModel {
	m := SessionModel{
		store:    store,
		packs:    packs,
		config:   cfg,
		renderer: defaultScreenRenderer,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	menu := NewMenuModel(m.store, m.config)
	menu.embedded = true
	return menu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active view.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewSelect:
		return m.updateSelect(msg)
	case viewRecords:
		return m.updateRecords(msg)
	case viewGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsRecords():
		m.records = NewRecordsModel(m.packs, m.store, m.config.ScreenW, m.config.ScreenH)
		m.records.embedded = true
		m.view = viewRecords
		return m, m.records.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		if id == sokoban.IDClassic {
			m.selector = NewLevelSelectModel(m.packs, m.store, m.config.ScreenW, m.config.ScreenH)
			m.selector.embedded = true
			m.view = viewSelect
			return m, m.selector.Init()
		}

		game, err := registry.Create(id)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			return m.backToMenu()
		}
		return m.startGame(game)
	}

	return m, cmd
}

func (m SessionModel) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSel, cmd := m.selector.Update(msg)
	if sel, ok := newSel.(LevelSelectModel); ok {
		m.selector = sel
	}

	switch {
	case m.selector.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.selector.WantsBack():
		return m.backToMenu()
	case m.selector.Selected() != nil:
		sel := m.selector.Selected()
		return m.startGame(sokoban.NewForPack(sel.Pack, sel.Level))
	}

	return m, cmd
}

func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newRec, cmd := m.records.Update(msg)
	if rec, ok := newRec.(RecordsModel); ok {
		m.records = rec
	}

	switch {
	case m.records.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.records.IsGoingBack():
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) startGame(game registry.Game) (tea.Model, tea.Cmd) {
	m.game = newMenuGameModel(game, m.store, m.config, true)
	m.game.renderer = m.renderer
	m.view = viewGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the active view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewSelect:
		return m.selector.View()
	case viewRecords:
		return m.records.View()
	case viewGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}
