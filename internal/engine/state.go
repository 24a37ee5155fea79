package engine

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Phase is the position of a round in the state machine.
type Phase int

const (
	PhaseSpawning   Phase = iota // a new piece is needed
	PhaseDescending              // test the row below and drop if free
	PhaseMoving                  // waiting for one user move
	PhaseLocked                  // landed, merge into the board
	PhaseClearing                // remove full rows, check for game over
	PhaseGameOver
)

// String returns the phase name used in snapshots and logs.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseDescending:
		return "descending"
	case PhaseMoving:
		return "moving"
	case PhaseLocked:
		return "locked"
	case PhaseClearing:
		return "clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is one game in flight. It is a plain value: step functions take a
// State and return the next one.
type State struct {
	Board   Board
	Shape   Shape
	Row     int // board row of the shape's bottom edge
	Offset  int // left shift applied to every shape row
	Round   int // index of the current piece, starting at 0
	Deleted int // rows cleared so far
	Phase   Phase
}

// NewState returns an empty board waiting for its first piece.
// Round is -1 until that piece spawns.
func NewState() State {
	return State{
		Board:  NewBoard(),
		Round:  -1,
		Row:    SpawnRow,
		Offset: SpawnOffset,
		Phase:  PhaseSpawning,
	}
}

// Spawn places shape above the visible playfield and starts a new round.
func Spawn(s State, shape Shape) State {
	s.Shape = Normalize(shape)
	s.Row = SpawnRow
	s.Offset = SpawnOffset
	s.Round++
	s.Phase = PhaseDescending
	return s
}

// Descend drops the piece one row if the row below is free and hands the
// state to PhaseMoving. Otherwise the piece has landed: the state moves to
// PhaseLocked and ok is false.
func Descend(s State) (next State, ok bool) {
	if s.Row == 0 || !Fits(s.Board, s.Shape, s.Row-1, s.Offset) {
		s.Phase = PhaseLocked
		return s, false
	}
	s.Row--
	s.Phase = PhaseMoving
	return s, true
}

// ApplyKey attempts the move requested by k at the current row. A move that
// would collide is dropped and the piece stays where it was. Up rotates,
// Left and Right shift by one column, anything else is a no-op.
func ApplyKey(s State, k core.KeyPress) State {
	moved := s
	switch k {
	case core.KeyUp:
		moved.Shape = Normalize(Rotate(s.Shape))
	case core.KeyLeft:
		// offset is a shift amount and never goes below zero
		if s.Offset > 0 {
			moved.Offset--
		}
	case core.KeyRight:
		moved.Offset++
	}

	if moved != s && Fits(moved.Board, moved.Shape, moved.Row, moved.Offset) {
		s = moved
	}
	s.Phase = PhaseDescending
	return s
}

// Lock merges the landed piece into the board.
func Lock(s State) State {
	s.Board = MergeShape(s.Board, s.Shape, s.Row, s.Offset)
	s.Phase = PhaseClearing
	return s
}

// Clear removes full rows across the piece's span plus one row above it,
// then either ends the game or asks for the next piece.
func Clear(s State) State {
	var n int
	s.Board, n = ClearFullRows(s.Board, s.Row, s.Row+ShapeSize)
	s.Deleted += n

	if IsOver(s) {
		s.Phase = PhaseGameOver
	} else {
		s.Phase = PhaseSpawning
	}
	return s
}

// IsOver reports whether the top visible row holds any locked cell.
func IsOver(s State) bool {
	return s.Board[MaxRows]&PlayableMask != 0
}
