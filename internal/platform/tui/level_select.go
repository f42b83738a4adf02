package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// LevelSelection holds the user's choice from the level selector.
type LevelSelection struct {
	Pack  levels.Pack
	Level int // 1-based
}

// LevelSelectModel lets users choose a pack and then a level in it.
type LevelSelectModel struct {
	packs         []levels.Pack
	store         *storage.Store
	best          map[int]int // Level index -> best moves for the open pack
	packCursor    int
	levelCursor   int
	inLevelSelect bool
	singlePack    bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     LevelSelection
	choosing      bool
	quitting      bool
	back          bool
	embedded      bool
}

// NewLevelSelectModel creates a selector over packs.
// With a single pack the level list opens directly.
func NewLevelSelectModel(packs []levels.Pack, store *storage.Store, width, height int) LevelSelectModel {
	m := LevelSelectModel{
		packs:     packs,
		store:     store,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	if len(packs) == 1 {
		m.singlePack = true
		m.openPack()
	}
	return m
}

// openPack switches to the level list of the pack under the cursor.
func (m *LevelSelectModel) openPack() {
	m.inLevelSelect = true
	m.levelCursor = 0
	m.best = make(map[int]int)

	if m.store == nil {
		return
	}
	bests, err := m.store.PackSolves(m.packs[m.packCursor].ID)
	if err != nil {
		return
	}
	for _, b := range bests {
		m.best[b.LevelIndex] = b.BestMoves
	}

	// Start on the first unsolved level.
	for i := range m.packs[m.packCursor].Levels {
		if _, ok := m.best[i]; !ok {
			m.levelCursor = i
			break
		}
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) done() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handlePackSelectKey(action)
}

func (m LevelSelectModel) handlePackSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.packCursor > 0 {
			m.packCursor--
		}
	case MenuActionDown:
		if m.packCursor < len(m.packs)-1 {
			m.packCursor++
		}
	case MenuActionSelect:
		if len(m.packs) > 0 {
			m.openPack()
		}
	case MenuActionBack:
		m.back = true
		return m, m.done()
	}

	return m, nil
}

func (m LevelSelectModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	levelCount := m.packs[m.packCursor].Len()

	switch action {
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < levelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		if levelCount == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = LevelSelection{
			Pack:  m.packs[m.packCursor],
			Level: m.levelCursor + 1,
		}
		return m, m.done()
	case MenuActionBack:
		if m.singlePack {
			m.back = true
			return m, m.done()
		}
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the pack or level list.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewPackSelect()
}

func (m LevelSelectModel) viewPackSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT PACK", m.width))
	b.WriteString("\n\n")

	if len(m.packs) == 0 {
		b.WriteString(centerText("No level packs found", m.width))
		b.WriteString("\n")
	}

	for i, p := range m.packs {
		cursor := "  "
		if i == m.packCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s (%d levels)", cursor, p.Title(), p.Len())
		if p.Author != "" {
			line += " by " + p.Author
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m LevelSelectModel) viewLevelSelect() string {
	var b strings.Builder
	p := m.packs[m.packCursor]

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(p.Title()), m.width))
	b.WriteString("\n\n")

	for i, def := range p.Levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		best := "-"
		if moves, ok := m.best[i]; ok {
			best = fmt.Sprintf("best %d", moves)
		}
		line := fmt.Sprintf("%s%2d. %-20s %8s", cursor, i+1, def.Name, best)
		if def.MoveLimit > 0 {
			line += fmt.Sprintf("  (limit %d)", def.MoveLimit)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelSelectModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the pack/level selection and returns the selection,
// or nil if the user backed out or quit.
func RunLevelSelector(packs []levels.Pack, store *storage.Store, cfg core.RuntimeConfig) (*LevelSelection, core.RuntimeConfig, error) {
	model := NewLevelSelectModel(packs, store, cfg.ScreenW, cfg.ScreenH)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok {
		return nil, cfg, nil
	}

	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
