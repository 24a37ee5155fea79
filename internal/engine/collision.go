package engine

// Fits reports whether the shape can sit with its bottom row at pieceRow and
// shifted left by offset without touching an occupied cell or a wall.
//
// The wall bits make the horizontal bounds fall out of the same AND test.
// A cell pushed beyond the right wall, past the end of the row, also counts
// as a collision. Rows above the top of the board are open.
func Fits(b Board, s Shape, pieceRow, offset int) bool {
	if pieceRow < 0 || offset < 0 || offset >= RowWidth {
		return false
	}

	for i, sr := range s {
		if sr == 0 {
			continue
		}

		wide := uint32(sr) << offset
		if wide&^uint32(FullRow) != 0 {
			return false
		}

		r := pieceRow + i
		if r >= BoardHeight {
			continue
		}
		if Row(wide)&b[r] != 0 {
			return false
		}
	}
	return true
}
