package engine

// reverseRow mirrors the bit order of a shape row.
func reverseRow(r ShapeRow) ShapeRow {
	var out ShapeRow
	for i := range ShapeSize {
		if r&(1<<i) != 0 {
			out |= 1 << (ShapeSize - 1 - i)
		}
	}
	return out
}

// Rotate turns the matrix by 90 degrees: every row is reversed, then the
// matrix is transposed. The bounding box stays ShapeSize x ShapeSize, so
// four rotations give back the original shape.
func Rotate(s Shape) Shape {
	for i := range s {
		s[i] = reverseRow(s[i])
	}

	var out Shape
	for r := range ShapeSize {
		for c := range ShapeSize {
			if s.Has(c, r) {
				out[r] |= 1 << c
			}
		}
	}
	return out
}

// Normalize cycles the rows so that the first non-blank row is row 0.
// The piece row then always names the piece's bottom edge.
func Normalize(s Shape) Shape {
	for i, row := range s {
		if row == 0 {
			continue
		}
		var out Shape
		for j := range out {
			out[j] = s[(i+j)%ShapeSize]
		}
		return out
	}
	return s
}
