// Package engine implements the falling-block game core: a bit-level board
// with embedded wall columns, the tetromino table, matrix rotation, collision
// testing and the spawn/descend/lock/clear state machine.
//
// Everything here is value-typed. Boards, shapes and states are small fixed
// arrays, so every step function takes a value and returns a new one.
package engine

import (
	"math/rand"
)

// Board and piece dimensions.
const (
	NumBoardColumns = 10
	ShapeSize       = 4
	NumShapes       = 7
	MaxRows         = 12

	// BoardHeight includes ShapeSize rows above the visible playfield so a
	// new piece can appear without overlapping anything.
	BoardHeight = MaxRows + ShapeSize
	// RowWidth is the playable width plus one wall bit on each side.
	RowWidth = NumBoardColumns + 2

	SpawnRow    = MaxRows + 1
	SpawnOffset = 5
)

// ShapeRow is one row of a shape. Only the low ShapeSize bits are used and
// the least significant bit is the leftmost cell.
type ShapeRow uint8

// Shape is a ShapeSize x ShapeSize bit matrix. Index 0 is the bottom row.
type Shape [ShapeSize]ShapeRow

// Shapes holds the seven canonical tetrominoes.
var Shapes = [NumShapes]Shape{
	{0b0000, 0b0110, 0b0110, 0b0000}, // O
	{0b0000, 0b0110, 0b0011, 0b0000}, // S
	{0b0000, 0b0011, 0b0110, 0b0000}, // Z
	{0b0000, 0b0010, 0b0111, 0b0000}, // T
	{0b0000, 0b1111, 0b0000, 0b0000}, // I
	{0b0110, 0b0010, 0b0010, 0b0000}, // L
	{0b0110, 0b0100, 0b0100, 0b0000}, // J
}

// ShapeNames are the conventional letters for Shapes, index for index.
var ShapeNames = [NumShapes]string{"O", "S", "Z", "T", "I", "L", "J"}

// RandomShape returns one of the canonical shapes, chosen uniformly.
// It consumes exactly one draw from rng.
func RandomShape(rng *rand.Rand) Shape {
	return Shapes[rng.Intn(NumShapes)]
}

// Has reports whether the cell at (row, col) of the matrix is set.
func (s Shape) Has(row, col int) bool {
	if row < 0 || row >= ShapeSize || col < 0 || col >= ShapeSize {
		return false
	}
	return s[row]&(1<<col) != 0
}

// Name returns the letter of a canonical shape in any rotation,
// or "?" for anything else.
func (s Shape) Name() string {
	want := Normalize(s)
	for i, c := range Shapes {
		r := Normalize(c)
		for range 4 {
			if r == want {
				return ShapeNames[i]
			}
			r = Normalize(Rotate(r))
		}
	}
	return "?"
}
