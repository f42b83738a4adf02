package sokoban

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	engine "github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

const (
	hudHeight   = 3  // Title, level/moves, undo/progress
	footHeight  = 3  // Gap, hint, status message
	minHUDWidth = 40 // Widest HUD line that must stay readable
)

// palette holds the resolved color of each tile kind.
type palette struct {
	wall        core.Color
	target      core.Color
	box         core.Color
	boxOnTarget core.Color
	player      core.Color
}

// newPalette resolves color names, falling back to the default palette
// for names that do not parse.
func newPalette(cfg config.PaletteConfig, logger *log.Logger) palette {
	def := config.DefaultConfig().Display.Palette
	resolve := func(tile, name, fallback string) core.Color {
		c, err := core.ParseColor(name)
		if err == nil {
			return c
		}
		logger.Warn("unknown palette color", "tile", tile, "color", name)
		c, _ = core.ParseColor(fallback)
		return c
	}
	return palette{
		wall:        resolve("wall", cfg.Wall, def.Wall),
		target:      resolve("target", cfg.Target, def.Target),
		box:         resolve("box", cfg.Box, def.Box),
		boxOnTarget: resolve("box_on_target", cfg.BoxOnTarget, def.BoxOnTarget),
		player:      resolve("player", cfg.Player, def.Player),
	}
}

func (p palette) color(t engine.TileKind) core.Color {
	switch t {
	case engine.Wall:
		return p.wall
	case engine.Target:
		return p.target
	case engine.Box:
		return p.box
	case engine.BoxOnTarget:
		return p.boxOnTarget
	case engine.Player, engine.PlayerOnTarget:
		return p.player
	default:
		return core.ColorDefault
	}
}

// tileGlyph returns the runes drawn for a tile at the given width.
// Walls fill every column; other tiles pad with spaces.
func tileGlyph(t engine.TileKind, width int) []rune {
	out := make([]rune, width)
	r := t.Rune()
	for i := range out {
		switch {
		case t == engine.Wall:
			out[i] = r
		case i == 0:
			out[i] = r
		default:
			out[i] = ' '
		}
	}
	return out
}

func (g *Game) tileWidth() int {
	if g.display.TileWidth < 1 {
		return 1
	}
	return g.display.TileWidth
}

// boardSize returns the board footprint in screen cells.
func (g *Game) boardSize() (w, h int) {
	if g.eng == nil {
		return 0, 0
	}
	grid := g.eng.Grid()
	return grid.Width() * g.tileWidth(), grid.Height()
}

// tooSmall reports whether the current level cannot be drawn.
// It is recomputed per level since levels differ in size.
func (g *Game) tooSmall() bool {
	if g.eng == nil {
		return false
	}
	boardW, boardH := g.boardSize()
	minW := core.Max(boardW, minHUDWidth) + 2
	minH := hudHeight + 1 + boardH + footHeight
	return !core.NewRect(0, 0, g.screenW, g.screenH).Fits(minW, minH)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.eng == nil {
		return
	}

	if g.tooSmall() {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	area := dst.Bounds()
	hud := area.Centered(core.Max(boardW, minHUDWidth), hudHeight)
	hud.Y = 0

	boardX := (area.W - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, hud)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, hud.X, boardY+boardH+1)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	boardW, boardH := g.boardSize()
	need := fmt.Sprintf("Need %dx%d", core.Max(boardW, minHUDWidth)+2, hudHeight+1+boardH+footHeight)
	dst.DrawTextCentered(y+1, need)
}

// renderHUD draws pack, level, move and undo information.
func (g *Game) renderHUD(dst *core.Screen, hud core.Rect) {
	title := "SOKOBAN · " + g.pack.Title()
	dst.DrawTextColored(hud.X+(hud.W-utf8.RuneCountInString(title))/2, hud.Y, title, core.ColorBrightWhite)

	levelStr := fmt.Sprintf("Level %d/%d", g.eng.CurrentLevel()+1, g.eng.TotalLevels())
	if name := g.eng.LevelName(); name != "" {
		levelStr += ": " + name
	}
	dst.DrawText(hud.X, hud.Y+1, levelStr)

	movesStr := fmt.Sprintf("Moves: %d", g.eng.Moves())
	if limit := g.eng.MoveLimit(); limit > 0 {
		movesStr = fmt.Sprintf("Moves: %d/%d", g.eng.Moves(), limit)
	}
	movesColor := core.ColorDefault
	if limit := g.eng.MoveLimit(); limit > 0 && limit-g.eng.Moves() <= 3 {
		movesColor = core.ColorBrightRed
	}
	dst.DrawTextColored(hud.Right()-utf8.RuneCountInString(movesStr), hud.Y+1, movesStr, movesColor)

	undoStr := fmt.Sprintf("Undo: %d/%d", g.eng.HistoryLen(), g.eng.HistoryDepth())
	dst.DrawTextColored(hud.X, hud.Y+2, undoStr, core.ColorGray)

	stats := g.eng.Stats()
	boxStr := fmt.Sprintf("Boxes: %d/%d", stats.Placed, stats.Boxes)
	boxColor := core.ColorGray
	if stats.Boxes > 0 && stats.Placed == stats.Boxes {
		boxColor = core.ColorBrightGreen
	}
	dst.DrawTextColored(hud.X+(hud.W-utf8.RuneCountInString(boxStr))/2, hud.Y+2, boxStr, boxColor)

	progStr := fmt.Sprintf("Pack: %d%%", g.eng.Progress())
	dst.DrawTextColored(hud.Right()-utf8.RuneCountInString(progStr), hud.Y+2, progStr, core.ColorGray)
}

// renderBoard draws the grid, tileWidth columns per tile.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	grid := g.eng.Grid()
	tw := g.tileWidth()

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			t := grid.At(engine.Position{X: x, Y: y})
			c := g.palette.color(t)
			for i, r := range tileGlyph(t, tw) {
				dst.SetColored(boardX+x*tw+i, boardY+y, r, c)
			}
		}
	}
}

// renderFooter draws the hint and status lines under the board.
func (g *Game) renderFooter(dst *core.Screen, x, y int) {
	if g.showHint && g.eng.IsPlaying() {
		dst.DrawTextColored(x, y, "Hint: "+g.eng.Hint(), core.ColorCyan)
	}
	if g.message != "" {
		dst.DrawTextColored(x, y+1, g.message, core.ColorYellow)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	switch g.eng.Phase() {
	case engine.PhaseIdle:
		g.drawOverlay(dst, centerX, centerY, "NO LEVELS", "This pack has nothing to play")
	case engine.PhaseWon:
		solved := fmt.Sprintf("Solved in %d moves", g.eng.Moves())
		next := "Enter/N: next level"
		if g.eng.CurrentLevel() >= g.eng.TotalLevels()-1 {
			next = "Enter: finish pack"
		}
		g.drawOverlay(dst, centerX, centerY, "LEVEL COMPLETE!", solved, next, "R: play again")
	case engine.PhaseFailed:
		limit := fmt.Sprintf("Move limit of %d reached", g.eng.MoveLimit())
		g.drawOverlay(dst, centerX, centerY, "OUT OF MOVES", limit, "Press R to restart")
	case engine.PhaseFinished:
		all := fmt.Sprintf("All %d levels solved", g.eng.TotalLevels())
		g.drawOverlay(dst, centerX, centerY, "PACK COMPLETE!", all, "[: previous level | Q: Quit")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightWhite)

	inner := box.Inset(1)
	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, inner.Y+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | U: Undo | R: Restart | ?: Hint | N/[: Next/Prev | P: Pause | Q: Quit"
}
