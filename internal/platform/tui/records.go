package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// Records board layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show pack list sidebar
	sidebarWidth       = 20 // Width of pack list sidebar
)

// RecordsKeyMap defines the key bindings for the records board.
type RecordsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.PrevPack, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev pack"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for the per-pack records board.
type RecordsModel struct {
	packs       []levels.Pack
	packCursor  int
	store       *storage.Store
	rows        []table.Row
	solved      int
	table       table.Model
	help        help.Model
	keys        RecordsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
	embedded    bool
}

// NewRecordsModel creates a new records board over packs.
func NewRecordsModel(packs []levels.Pack, store *storage.Store, width, height int) RecordsModel {
	h := help.New()
	h.ShowAll = false

	m := RecordsModel{
		packs:       packs,
		store:       store,
		keys:        DefaultRecordsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if len(m.packs) > 0 {
		m.loadRecords()
	}

	return m
}

// createTable creates a new table sized for the current window.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 18},
		{Title: "Best", Width: 6},
		{Title: "Solves", Width: 7},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if extra := tableWidth - 45; extra > 0 {
		columns[1].Width += min(extra, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRecords builds one row per level of the selected pack.
// Unsolved levels are listed with a dash.
func (m *RecordsModel) loadRecords() {
	pack := m.packs[m.packCursor]
	best := make(map[int]storage.LevelBest)

	if m.store != nil {
		if bests, err := m.store.PackSolves(pack.ID); err == nil {
			for _, b := range bests {
				best[b.LevelIndex] = b
			}
		}
	}

	m.solved = 0
	m.rows = make([]table.Row, len(pack.Levels))
	for i, def := range pack.Levels {
		row := table.Row{fmt.Sprintf("%d", i+1), def.Name, "-", "0"}
		if b, ok := best[i]; ok {
			row[2] = fmt.Sprintf("%d", b.BestMoves)
			row[3] = fmt.Sprintf("%d", b.Solves)
			m.solved++
		}
		m.rows[i] = row
	}

	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

func (m RecordsModel) done() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// Update handles messages for the records board.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.done()

		case key.Matches(msg, m.keys.NextPack):
			if len(m.packs) > 0 {
				m.packCursor = (m.packCursor + 1) % len(m.packs)
				m.loadRecords()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPack):
			if len(m.packs) > 0 {
				m.packCursor = (m.packCursor - 1 + len(m.packs)) % len(m.packs)
				m.loadRecords()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records board.
func (m RecordsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RECORDS"
	if len(m.packs) > 0 {
		p := m.packs[m.packCursor]
		title = fmt.Sprintf("RECORDS - %s (%d/%d solved)", p.Title(), m.solved, p.Len())
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// renderWideLayout renders the pack list next to the table.
func (m RecordsModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Packs\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.packs {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.packCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + truncate(p.Title(), sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	sidebarRendered := panelStyle.Width(sidebarWidth).Render(sidebar.String())
	tableRendered := panelStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the current pack name above the table.
func (m RecordsModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.packs) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.packs[m.packCursor].Title()), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(panelStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RecordsModel) renderTableContent() string {
	if len(m.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No levels in this pack.")
	}

	return m.table.View()
}

// truncate shortens s to n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RecordsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RecordsModel) IsQuitting() bool {
	return m.quitting
}

// RunRecords runs the records board.
// Returns true if user wants to go back to menu, false if quitting.
func RunRecords(packs []levels.Pack, store *storage.Store, width, height int) (goBack bool, err error) {
	finalModel, err := tea.NewProgram(NewRecordsModel(packs, store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RecordsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
