package engine

import (
	"context"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Renderer draws a snapshot of the game. It has no say in how play proceeds.
type Renderer interface {
	Render(snap Snapshot)
}

// KeyReader supplies user input. ReadKey blocks until a key is available and
// reports anything it cannot decode as core.KeyOther.
type KeyReader interface {
	ReadKey() core.KeyPress
}

// Engine owns the piece source and advances states through the round
// state machine.
type Engine struct {
	next func() Shape
}

// New creates an engine that draws shapes uniformly from its own RNG.
func New(seed int64) *Engine {
	rng := rand.New(rand.NewSource(seed))
	return &Engine{
		next: func() Shape { return RandomShape(rng) },
	}
}

// NewSequence creates an engine that spawns the given shapes in order,
// starting over after the last one.
func NewSequence(shapes ...Shape) *Engine {
	if len(shapes) == 0 {
		shapes = Shapes[:]
	}
	i := 0
	return &Engine{
		next: func() Shape {
			s := shapes[i%len(shapes)]
			i++
			return s
		},
	}
}

// Start returns a fresh game with its first piece waiting for input.
func (e *Engine) Start() State {
	return e.Settle(NewState())
}

// Settle runs the automatic transitions until the state either waits for a
// user move or the game is over.
func (e *Engine) Settle(s State) State {
	for {
		switch s.Phase {
		case PhaseSpawning:
			s = Spawn(s, e.next())
		case PhaseDescending:
			s, _ = Descend(s)
		case PhaseLocked:
			s = Lock(s)
		case PhaseClearing:
			s = Clear(s)
		default:
			return s
		}
	}
}

// Press applies one key to a state that is waiting for input and settles the
// result. States in any other phase are returned unchanged.
func (e *Engine) Press(s State, k core.KeyPress) State {
	if s.Phase != PhaseMoving {
		return s
	}
	return e.Settle(ApplyKey(s, k))
}

// Run plays a whole game synchronously: render, block on one key, apply or
// discard the move, repeat. It returns the final state once the game is over.
func (e *Engine) Run(r Renderer, in KeyReader) State {
	s, _ := e.RunContext(context.Background(), r, in)
	return s
}

// RunContext is Run with cancellation. The context is checked after every
// key read; when it is done the key is dropped and the current state is
// returned together with the context error.
func (e *Engine) RunContext(ctx context.Context, r Renderer, in KeyReader) (State, error) {
	s := e.Start()
	for s.Phase != PhaseGameOver {
		r.Render(s.Snapshot())
		k := in.ReadKey()
		if err := ctx.Err(); err != nil {
			return s, err
		}
		s = e.Press(s, k)
	}
	r.Render(s.Snapshot())
	return s, nil
}
