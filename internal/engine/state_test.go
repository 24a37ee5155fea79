package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// dropStraight lets the active piece fall with no user moves, then locks
// and clears.
func dropStraight(t *testing.T, s State) State {
	t.Helper()
	for {
		next, ok := Descend(s)
		if !ok {
			s = next
			break
		}
		s = ApplyKey(next, core.KeyOther)
	}
	require.Equal(t, PhaseLocked, s.Phase)
	return Clear(Lock(s))
}

func TestNewState(t *testing.T) {
	s := NewState()

	require.Equal(t, PhaseSpawning, s.Phase)
	require.Equal(t, NewBoard(), s.Board)
	require.Equal(t, -1, s.Round)
	require.Zero(t, s.Deleted)
}

func TestSpawn(t *testing.T) {
	s := Spawn(NewState(), Shapes[0])

	require.Equal(t, PhaseDescending, s.Phase)
	require.Equal(t, SpawnRow, s.Row)
	require.Equal(t, SpawnOffset, s.Offset)
	require.Zero(t, s.Round)
	require.Equal(t, Normalize(Shapes[0]), s.Shape)
	require.True(t, Fits(s.Board, s.Shape, s.Row, s.Offset))
}

func TestSpawnFitsOnCrowdedBoard(t *testing.T) {
	s := NewState()
	for i := 0; i < MaxRows; i++ {
		s.Board[i] = FullRow &^ (1 << 1)
	}

	for _, shape := range Shapes {
		next := Spawn(s, shape)
		require.True(t, Fits(next.Board, next.Shape, next.Row, next.Offset), "shape %s", shape.Name())
	}
}

func TestSquareDropsToFloor(t *testing.T) {
	s := dropStraight(t, Spawn(NewState(), Shapes[0]))

	require.Equal(t, PhaseSpawning, s.Phase)
	for _, row := range []int{0, 1} {
		require.Equal(t, EmptyRow|1<<6|1<<7, s.Board[row], "row %d", row)
		require.True(t, occupied(s.Board, row, 5))
		require.True(t, occupied(s.Board, row, 6))
	}
	require.Equal(t, EmptyRow, s.Board[2])
	require.Zero(t, s.Deleted)
}

func TestLineCompletesRow(t *testing.T) {
	s := NewState()
	s.Board[0] = FullRow &^ (1 << 6) // column 5 open

	vertical := Rotate(Shapes[4])
	s = dropStraight(t, Spawn(s, vertical))

	require.Equal(t, 1, s.Deleted)
	// the three cells above the cleared row fall into rows 0..2
	for row := 0; row < 3; row++ {
		require.Equal(t, EmptyRow|1<<6, s.Board[row], "row %d", row)
	}
	require.Equal(t, EmptyRow, s.Board[3])
	require.True(t, wallsIntact(s.Board))
}

func TestLeftClampedAtZero(t *testing.T) {
	s := Spawn(NewState(), Rotate(Shapes[4]))
	s.Offset = 0
	s.Row = 5
	s.Phase = PhaseMoving

	require.True(t, Fits(s.Board, s.Shape, s.Row, 0))

	next := ApplyKey(s, core.KeyLeft)
	require.Equal(t, 0, next.Offset)
	require.Equal(t, PhaseDescending, next.Phase)
}

func TestApplyKey(t *testing.T) {
	base := Spawn(NewState(), Shapes[4])
	base.Row = 5
	base.Phase = PhaseMoving

	t.Run("right shifts", func(t *testing.T) {
		require.Equal(t, SpawnOffset+1, ApplyKey(base, core.KeyRight).Offset)
	})

	t.Run("left shifts", func(t *testing.T) {
		require.Equal(t, SpawnOffset-1, ApplyKey(base, core.KeyLeft).Offset)
	})

	t.Run("up rotates", func(t *testing.T) {
		require.Equal(t, Normalize(Rotate(base.Shape)), ApplyKey(base, core.KeyUp).Shape)
	})

	t.Run("down and other do nothing", func(t *testing.T) {
		for _, k := range []core.KeyPress{core.KeyDown, core.KeyOther} {
			next := ApplyKey(base, k)
			next.Phase = base.Phase
			require.Equal(t, base, next)
		}
	})

	t.Run("shift into wall is discarded", func(t *testing.T) {
		s := base
		s.Offset = 7 // line touches the right wall
		require.Equal(t, 7, ApplyKey(s, core.KeyRight).Offset)
	})

	t.Run("shift into stack is discarded", func(t *testing.T) {
		s := base
		s.Board[5] |= 1 << 9
		require.Equal(t, SpawnOffset, ApplyKey(s, core.KeyRight).Offset)
	})

	t.Run("rotation into stack is discarded", func(t *testing.T) {
		s := base
		s.Board[6] |= 1 << 5 // the vertical line would need this cell
		next := ApplyKey(s, core.KeyUp)
		require.Equal(t, base.Shape, next.Shape)
	})
}

func TestDescendAtFloor(t *testing.T) {
	s := Spawn(NewState(), Shapes[0])
	s.Row = 0

	next, ok := Descend(s)
	require.False(t, ok)
	require.Equal(t, 0, next.Row)
	require.Equal(t, PhaseLocked, next.Phase)
}

func TestStraightDropsReachGameOver(t *testing.T) {
	s := NewState()
	for s.Phase != PhaseGameOver {
		require.Less(t, s.Round, MaxRows)
		s = dropStraight(t, Spawn(s, Shapes[4]))
	}

	// rounds 0..MaxRows fill rows 0..MaxRows, the last one being the top visible row
	require.Equal(t, MaxRows, s.Round)
	require.Zero(t, s.Deleted)
	require.True(t, IsOver(s))
}

func TestIsOver(t *testing.T) {
	s := NewState()
	require.False(t, IsOver(s))

	s.Board[MaxRows+1] = FullRow
	require.False(t, IsOver(s), "rows above the playfield do not end the game")

	s.Board[MaxRows] |= 1 << 3
	require.True(t, IsOver(s))
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "moving", PhaseMoving.String())
	require.Equal(t, "game_over", PhaseGameOver.String())
	require.Equal(t, "unknown", Phase(99).String())
}
