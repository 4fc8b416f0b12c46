package view

import (
	"context"
	"io"
	"testing"

	"blockly/pkg/hud"
	"blockly/pkg/world"

	"github.com/charmbracelet/log"
)

func TestScreenSize(t *testing.T) {
	level := world.MustParseLevel("#####\n#S..#\n#####")

	w, h := ScreenSize(level)
	if w != 5*TileSize+PanelWidth {
		t.Errorf("expected width %d, got %d", 5*TileSize+PanelWidth, w)
	}
	if h != 240 {
		t.Errorf("expected minimum height 240, got %d", h)
	}

	tall := world.MustParseLevel("#\nS\n.\n.\n.\n.\n.\n.\n.\n#")
	if _, h := ScreenSize(tall); h != 10*TileSize {
		t.Errorf("expected height %d, got %d", 10*TileSize, h)
	}
}

func TestPanelLines(t *testing.T) {
	w := world.New(world.MustParseLevel("###\n#S#\n###"), world.WithLogger(log.New(io.Discard)))
	board := hud.NewBoard()
	board.ScalarSet("x", 7)
	board.ArraySet("a", []int{1, 2})

	lines := PanelLines(w, board)
	want := []string{"Held: 1,1", "", "x = 7", "a = [1, 2]"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestUpdateTicksWorld(t *testing.T) {
	w := world.New(world.MustParseLevel("###\n#S#\n###"), world.WithLogger(log.New(io.Discard)))
	ctx, cancel := context.WithCancel(context.Background())
	game := NewGame(ctx, w, hud.NewBoard())
	game.exitRequested = func() bool { return false }

	if err := game.Update(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", w.Frames())
	}

	cancel()
	if err := game.Update(); err == nil {
		t.Error("expected termination after cancel")
	}
}
