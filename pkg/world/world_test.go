package world

import (
	"context"
	"io"
	"testing"
	"time"

	"blockly/pkg/interpreter"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corridor = `
#####
#S..#
#.###
#####
`

func newTestWorld(t *testing.T, opts ...Option) *World {
	t.Helper()
	level, err := ParseLevel(corridor)
	require.NoError(t, err)
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return New(level, opts...)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(corridor)
	require.NoError(t, err)

	assert.Equal(t, 5, l.Width())
	assert.Equal(t, 4, l.Height())
	assert.Equal(t, Point{1, 1}, l.Start())
	assert.Equal(t, Floor, l.At(Point{1, 1}))
	assert.Equal(t, Wall, l.At(Point{0, 0}))
	assert.Equal(t, Wall, l.At(Point{-1, 2}))
	assert.Equal(t, Wall, l.At(Point{9, 9}))
}

func TestParseLevelPadsShortRows(t *testing.T) {
	l, err := ParseLevel("####\n#S.\n####")
	require.NoError(t, err)
	assert.Equal(t, Wall, l.At(Point{3, 1}))
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  error
	}{
		{"empty", "\n  \n", ErrEmptyLevel},
		{"no start", "###\n#.#\n###", ErrNoStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel(tt.level)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ParseLevel("#S#\n#S#")
	assert.ErrorContains(t, err, "second start tile")

	_, err = ParseLevel("#S?#")
	assert.ErrorContains(t, err, "unknown tile")
}

func TestDefaultLevel(t *testing.T) {
	assert.NotPanics(t, func() { MustParseLevel(DefaultLevel) })
}

func TestMoves(t *testing.T) {
	w := newTestWorld(t, WithoutFrameSync())
	ctx := context.Background()

	require.NoError(t, w.Perform(ctx, interpreter.MoveRight))
	assert.Equal(t, Point{2, 1}, w.Hero())

	require.NoError(t, w.Perform(ctx, interpreter.MoveUp))
	assert.Equal(t, Point{2, 1}, w.Hero(), "walls block movement")

	require.NoError(t, w.Perform(ctx, interpreter.MoveLeft))
	require.NoError(t, w.Perform(ctx, interpreter.MoveDown))
	assert.Equal(t, Point{1, 2}, w.Hero())

	assert.Equal(t, Point{1, 1}, w.Teleport())
	assert.Equal(t, Point{1, 1}, w.Hero())
}

func TestWallAt(t *testing.T) {
	w := newTestWorld(t, WithoutFrameSync())

	assert.True(t, w.WallAt(interpreter.Up))
	assert.True(t, w.WallAt(interpreter.Left))
	assert.False(t, w.WallAt(interpreter.Right))
	assert.False(t, w.WallAt(interpreter.Down))
}

func TestFireballs(t *testing.T) {
	w := newTestWorld(t, WithoutFrameSync())
	require.NoError(t, w.Perform(context.Background(), interpreter.FireRight))

	require.Len(t, w.Fireballs(), 1)
	assert.Equal(t, Point{1, 1}, w.Fireballs()[0].Pos)

	w.Tick()
	assert.Equal(t, Point{2, 1}, w.Fireballs()[0].Pos)
	w.Tick()
	assert.Equal(t, Point{3, 1}, w.Fireballs()[0].Pos)
	w.Tick()
	assert.Empty(t, w.Fireballs(), "fireball stops at the wall")
	assert.Equal(t, uint64(3), w.Frames())

	require.NoError(t, w.Perform(context.Background(), interpreter.FireUp))
	w.Teleport()
	assert.Empty(t, w.Fireballs())
}

func TestPerformWaitsForFrame(t *testing.T) {
	w := newTestWorld(t)

	done := make(chan error, 1)
	go func() { done <- w.Perform(context.Background(), interpreter.MoveRight) }()

	select {
	case <-done:
		t.Fatal("Perform returned before the frame")
	case <-time.After(20 * time.Millisecond):
	}

	w.Tick()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Perform did not return after Tick")
	}
}

func TestPerformCancelled(t *testing.T) {
	w := newTestWorld(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Perform(ctx, interpreter.MoveRight)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDriveRunsInterpreter(t *testing.T) {
	w := newTestWorld(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Drive(ctx, 500)

	it := interpreter.NewInterpreter(
		interpreter.WithActuator(w),
		interpreter.WithSensor(w),
		interpreter.WithLogger(log.New(io.Discard)),
	)

	out := it.Run(ctx, interpreter.SplitProgram(`
		solange (!WandRechts()) {
		rechts();
		}
		falls (WandRechts()) {
		unten();
		}
	`))
	require.Equal(t, interpreter.Completed, out.Status, out.Message)
	assert.Equal(t, Point{3, 1}, w.Hero())
}
