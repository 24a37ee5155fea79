package engine

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Row is one board line. Bit 0 and bit RowWidth-1 are the walls.
type Row uint16

const (
	// WallMask has only the two wall bits set.
	WallMask Row = 1 | 1<<(RowWidth-1)
	// EmptyRow is a row with nothing but walls.
	EmptyRow = WallMask
	// FullRow has every column and both walls set.
	FullRow Row = 1<<RowWidth - 1
	// PlayableMask selects the columns between the walls.
	PlayableMask = FullRow &^ WallMask
)

// Board is the fixed-height grid. Index 0 is the bottom row.
type Board [BoardHeight]Row

// NewBoard returns a board of empty rows.
func NewBoard() Board {
	var b Board
	for i := range b {
		b[i] = EmptyRow
	}
	return b
}

// ProjectShapeRow shifts a shape row left by offset bits and widens it to a
// board row. Bits pushed past the row width are dropped.
func ProjectShapeRow(r ShapeRow, offset int) Row {
	if offset < 0 {
		return 0
	}
	return Row(uint32(r)<<offset) & FullRow
}

// MergeShape ORs every shape row into the board row it covers.
// Placement must already have been checked with Fits; rows above the top of
// the board are dropped.
func MergeShape(b Board, s Shape, pieceRow, offset int) Board {
	for i, sr := range s {
		r := pieceRow + i
		if r < 0 || r >= BoardHeight {
			continue
		}
		b[r] |= ProjectShapeRow(sr, offset)
	}
	return b
}

// IsRowFull reports whether every bit of row i is set, walls included.
func IsRowFull(b Board, i int) bool {
	if i < 0 || i >= BoardHeight {
		return false
	}
	return b[i] == FullRow
}

// ClearFullRows removes full rows in [low, high], scanning from high to low.
// Each removed row drops everything above it by one and a fresh empty row
// appears at the top. Returns the new board and the number of rows removed.
func ClearFullRows(b Board, low, high int) (Board, int) {
	low = core.Max(low, 0)
	high = core.Min(high, BoardHeight-1)

	cleared := 0
	for i := high; i >= low; i-- {
		if !IsRowFull(b, i) {
			continue
		}
		copy(b[i:], b[i+1:])
		b[BoardHeight-1] = EmptyRow
		cleared++
	}
	return b, cleared
}
