package engine

// Snapshot is a read-only copy of a game for renderers and determinism tests.
type Snapshot struct {
	Board   Board
	Shape   Shape
	Row     int
	Offset  int
	Round   int
	Deleted int
	Over    bool
}

// Snapshot returns the current game snapshot.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Board:   s.Board,
		Shape:   s.Shape,
		Row:     s.Row,
		Offset:  s.Offset,
		Round:   s.Round,
		Deleted: s.Deleted,
		Over:    s.Phase == PhaseGameOver,
	}
}

// PieceRow returns the active shape projected onto board row r.
func (snap Snapshot) PieceRow(r int) Row {
	i := r - snap.Row
	if snap.Over || i < 0 || i >= ShapeSize {
		return 0
	}
	return ProjectShapeRow(snap.Shape[i], snap.Offset)
}
