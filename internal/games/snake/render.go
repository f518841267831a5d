package snake

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/sim"
)

// Layout constants. Each grid cell is two screen columns wide so the board
// looks roughly square in a terminal.
const (
	cellWidth    = 2
	hudHeight    = 2 // score line + separator
	footerHeight = 1 // key hints drawn by the platform
)

// boardSize returns the on-screen size of the bordered board.
func boardSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 2, rows + 2
}

// Board glyphs.
const (
	glyphEmpty = '.'
	glyphBody  = 'o'
	glyphFood  = '*'
	glyphDead  = 'x'

	glyphDeadHead = 'X'
)

// headGlyph points the head the way the snake is moving.
func headGlyph(d sim.Direction) rune {
	switch d {
	case sim.Up:
		return '^'
	case sim.Down:
		return 'v'
	case sim.Left:
		return '<'
	default:
		return '>'
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := boardSize(g.rows, g.cols)
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", w, h+hudHeight+footerHeight))
		return
	}

	origin := g.boardRect(dst)
	dst.DrawBox(origin, core.ColorGray)
	g.renderCells(dst, origin)

	switch {
	case g.phase == PhaseWaiting:
		g.renderOverlay(dst, g.variant.Title, "Press any key to start")
	case g.phase == PhaseCountdown:
		g.renderOverlay(dst, strconv.Itoa(g.countdown), "Get ready")
	case g.phase == PhaseOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - press R to restart", g.state.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardRect is the bordered board, centered horizontally under the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w, h := boardSize(g.rows, g.cols)
	return core.NewRect(core.Clamp((dst.Width()-w)/2, 0, dst.Width()), hudHeight, w, h)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Length: %d  Board: %dx%d",
		g.variant.Title, g.state.Score(), g.state.SnakeLen(), g.rows, g.cols)
	if g.autopilot {
		hud += "  [autopilot]"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderCells draws the grid inside the border.
func (g *Game) renderCells(dst *core.Screen, board core.Rect) {
	put := func(p sim.Position, r rune, c core.Color) {
		dst.SetColored(board.X+1+p.Col*cellWidth, board.Y+1+p.Row, r, c)
	}

	for p := range g.state.Grid().EmptyPositions() {
		put(p, glyphEmpty, core.ColorGray)
	}
	if food, ok := g.state.Food(); ok {
		put(food, glyphFood, core.ColorBrightRed)
	}

	dead := g.phase == PhaseDying || g.phase == PhaseOver
	for i, p := range g.state.Snake() {
		switch {
		case dead && i == 0 && g.deadShown > 0:
			put(p, glyphDeadHead, core.ColorDarkGreen)
		case dead && i < g.deadShown:
			put(p, glyphDead, core.ColorDarkGreen)
		case i == 0:
			put(p, headGlyph(g.state.Direction()), core.ColorBrightGreen)
		default:
			put(p, glyphBody, core.ColorGreen)
		}
	}
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 0, dst.Width())
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCenteredColored(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}

// BoardText renders the simulation as plain text, one line per row, using
// the same glyphs as the terminal board. A crashed snake is drawn dead, its
// head marked X.
func BoardText(s *sim.State) string {
	lines := make([][]rune, s.Rows())
	for r := range lines {
		lines[r] = []rune(strings.Repeat(string(glyphEmpty), s.Cols()))
	}
	if food, ok := s.Food(); ok {
		lines[food.Row][food.Col] = glyphFood
	}
	for i, p := range s.Snake() {
		switch {
		case s.GameOver() && i == 0:
			lines[p.Row][p.Col] = glyphDeadHead
		case s.GameOver():
			lines[p.Row][p.Col] = glyphDead
		case i == 0:
			lines[p.Row][p.Col] = headGlyph(s.Direction())
		default:
			lines[p.Row][p.Col] = glyphBody
		}
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(string(l))
		b.WriteByte('\n')
	}
	return b.String()
}
