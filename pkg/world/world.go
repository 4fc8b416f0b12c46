package world

import (
	"context"
	"slices"
	"sync"
	"time"

	"blockly/pkg/interpreter"

	"github.com/charmbracelet/log"
)

// Fireball travels one tile per frame until it reaches a wall
type Fireball struct {
	Pos Point
	Dir interpreter.Direction
}

// World holds the hero and fireballs of a level. Perform blocks until the next
// frame so that program execution stays in step with rendering; something must
// call Tick once per frame (the window's update loop or Drive).
type World struct {
	mu        sync.Mutex
	level     *Level
	hero      Point
	fireballs []Fireball
	frame     chan struct{} // closed and replaced on every Tick
	frames    uint64

	immediate bool
	log       *log.Logger
}

type Option func(*World)

// WithLogger sets the logger used for hero movement
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.log = l }
}

// WithoutFrameSync makes Perform return without waiting for a frame
func WithoutFrameSync() Option {
	return func(w *World) { w.immediate = true }
}

// New places the hero on the level's start tile
func New(level *Level, opts ...Option) *World {
	w := &World{
		level: level,
		hero:  level.Start(),
		frame: make(chan struct{}),
	}

	for _, o := range opts {
		o(w)
	}

	if w.log == nil {
		w.log = log.Default()
	}

	return w
}

// Perform applies a leaf action and waits for the next frame
func (w *World) Perform(ctx context.Context, action interpreter.LeafAction) error {
	w.mu.Lock()
	dir := action.Direction()
	if action.IsMove() {
		next := w.hero.Step(dir)
		if w.level.Walkable(next) {
			w.hero = next
		} else {
			w.log.Debug("Hero blocked by wall", "pos", w.hero, "dir", dir)
		}
	} else {
		w.fireballs = append(w.fireballs, Fireball{Pos: w.hero, Dir: dir})
	}
	frame := w.frame
	w.mu.Unlock()

	if w.immediate {
		return ctx.Err()
	}

	select {
	case <-frame:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WallAt reports whether the tile next to the hero in direction d is a wall
func (w *World) WallAt(d interpreter.Direction) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.level.Walkable(w.hero.Step(d))
}

// Tick advances fireballs by one tile and releases everything waiting for the frame
func (w *World) Tick() {
	w.mu.Lock()
	defer w.mu.Unlock()

	alive := w.fireballs[:0]
	for _, f := range w.fireballs {
		f.Pos = f.Pos.Step(f.Dir)
		if w.level.Walkable(f.Pos) {
			alive = append(alive, f)
		}
	}
	w.fireballs = alive

	w.frames++
	close(w.frame)
	w.frame = make(chan struct{})
}

// Drive calls Tick at the given frame rate until ctx is done. Used when no
// window provides the frames.
func (w *World) Drive(ctx context.Context, fps int) {
	if fps <= 0 {
		fps = 60
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Tick()
		}
	}
}

// Teleport puts the hero back on the start tile and removes all fireballs
func (w *World) Teleport() Point {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.hero = w.level.Start()
	w.fireballs = nil
	w.log.Debug("Hero teleported", "pos", w.hero)
	return w.hero
}

// Hero returns the hero's position
func (w *World) Hero() Point {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hero
}

// Fireballs returns a snapshot of the fireballs in flight
func (w *World) Fireballs() []Fireball {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.fireballs)
}

// Frames returns the number of ticks so far
func (w *World) Frames() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

func (w *World) Level() *Level {
	return w.level
}
