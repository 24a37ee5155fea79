package engine

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth  = 3                    // glyphs per board column
	boardWidth = RowWidth * cellWidth // walls included
)

// Style controls the glyphs and colors of the board drawing.
type Style struct {
	Locked    rune // settled cells and walls
	Piece     rune // the falling piece
	Separator rune // left edge of an empty cell
	Fill      rune // body of an empty cell on the first line of a row
	Floor     rune // body of an empty cell on the second line of a row
	Rule      rune // line under the board

	BoardColor core.Color
	WallColor  core.Color
	PieceColor core.Color
	HUDColor   core.Color
}

// DefaultStyle returns the classic look: '#' for the stack, 'O' for the piece.
func DefaultStyle() Style {
	return Style{
		Locked:     '#',
		Piece:      'O',
		Separator:  '|',
		Fill:       ' ',
		Floor:      '_',
		Rule:       '=',
		BoardColor: core.ColorYellow,
		WallColor:  core.ColorGray,
		PieceColor: core.ColorCyan,
		HUDColor:   core.ColorWhite,
	}
}

// rowsVisible is the number of board rows drawn, the top visible row included.
const rowsVisible = MaxRows + 1

// Draw renders snap onto dst. Rows are drawn two lines tall when the screen
// has room and collapse to one line otherwise.
func Draw(dst *core.Screen, snap Snapshot, st Style) {
	dst.Clear()

	linesPerRow := 2
	if dst.Height() < rowsVisible*2+4 {
		linesPerRow = 1
	}
	if dst.Height() < rowsVisible+4 || dst.Width() < boardWidth {
		drawTooSmall(dst)
		return
	}

	x := core.Max(0, (dst.Width()-boardWidth)/2)
	y := 0

	dst.DrawTextColored(x, y, "BOARD:", st.HUDColor)
	y++

	for r := MaxRows; r >= 0; r-- {
		drawRow(dst, x, y, snap, r, st.Fill, st)
		y++
		if linesPerRow == 2 {
			drawRow(dst, x, y, snap, r, st.Floor, st)
			y++
		}
	}

	dst.DrawHLine(x, y, boardWidth, st.Rule, st.HUDColor)
	y++
	dst.DrawTextColored(x, y, fmt.Sprintf("ROUND: %d; DELETED ROWS: %d", snap.Round, snap.Deleted), st.HUDColor)
	y++

	if snap.Over {
		msg := "GAME OVER"
		dst.DrawTextColored(x+(boardWidth-len(msg))/2, y, msg, core.ColorRed)
	}
}

// drawRow draws one line of board row r. Every bit, walls included, takes
// cellWidth glyphs.
func drawRow(dst *core.Screen, x, y int, snap Snapshot, r int, fill rune, st Style) {
	board := snap.Board[r]
	piece := snap.PieceRow(r)

	for bit := range RowWidth {
		mask := Row(1) << bit
		cx := x + bit*cellWidth

		switch {
		case piece&mask != 0:
			dst.DrawHLine(cx, y, cellWidth, st.Piece, st.PieceColor)
		case board&mask != 0:
			color := st.BoardColor
			if WallMask&mask != 0 {
				color = st.WallColor
			}
			dst.DrawHLine(cx, y, cellWidth, st.Locked, color)
		default:
			dst.SetColored(cx, y, st.Separator, st.WallColor)
			dst.DrawHLine(cx+1, y, cellWidth-1, fill, core.ColorDefault)
		}
	}
}

func drawTooSmall(dst *core.Screen) {
	lines := []string{"Window too small", "Please resize terminal"}
	y := dst.Height() / 2
	for i, msg := range lines {
		dst.DrawText((dst.Width()-len(msg))/2, y+i, msg)
	}
}

// Text renders snap as plain text the size of the full board drawing.
func Text(snap Snapshot, st Style) string {
	screen := core.NewScreen(boardWidth, rowsVisible*2+4)
	Draw(screen, snap, st)

	lines := make([]string, screen.Height())
	for y := range lines {
		lines[y] = strings.TrimRight(screen.Row(y), " ")
	}
	return strings.Join(lines, "\n")
}
