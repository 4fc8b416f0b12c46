// Package view draws the dungeon and the variable display with Ebitengine.
package view

import (
	"context"
	"fmt"
	"image/color"

	"blockly/pkg/hud"
	"blockly/pkg/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	TileSize   = 32
	PanelWidth = 220
	lineHeight = 16
	margin     = 8
)

var (
	backgroundColor = color.RGBA{0x1E, 0x1A, 0x24, 0xFF}
	wallColor       = color.RGBA{0x5A, 0x4E, 0x44, 0xFF}
	floorColor      = color.RGBA{0x2E, 0x2A, 0x30, 0xFF}
	heroColor       = color.RGBA{0x3C, 0xB0, 0xE0, 0xFF}
	fireballColor   = color.RGBA{0xF0, 0x80, 0x20, 0xFF}
	textColor       = color.White

	defaultFace = text.NewGoXFace(basicfont.Face7x13)
)

// Game implements ebiten.Game. Every Update is one world frame.
type Game struct {
	world *world.World
	board *hud.Board
	ctx   context.Context

	exitRequested func() bool
}

// NewGame creates the window game. When ctx is done the window closes.
func NewGame(ctx context.Context, w *world.World, board *hud.Board) *Game {
	return &Game{
		world: w,
		board: board,
		ctx:   ctx,
		exitRequested: func() bool {
			return ebiten.IsKeyPressed(ebiten.KeyEscape)
		},
	}
}

// Update advances the world by one frame
func (g *Game) Update() error {
	if g.ctx.Err() != nil || g.exitRequested() {
		return ebiten.Termination
	}

	g.world.Tick()
	return nil
}

// Draw renders the grid, the hero, fireballs and the variable panel
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	level := g.world.Level()
	for y := range level.Height() {
		for x := range level.Width() {
			fill := floorColor
			if level.At(world.Point{X: x, Y: y}) == world.Wall {
				fill = wallColor
			}
			drawTile(screen, world.Point{X: x, Y: y}, 0, fill)
		}
	}

	for _, f := range g.world.Fireballs() {
		drawTile(screen, f.Pos, TileSize/3, fireballColor)
	}
	drawTile(screen, g.world.Hero(), 4, heroColor)

	g.drawPanel(screen, float64(level.Width()*TileSize+margin))
}

func drawTile(screen *ebiten.Image, p world.Point, inset float32, c color.Color) {
	x := float32(p.X*TileSize) + inset
	y := float32(p.Y*TileSize) + inset
	size := float32(TileSize) - 2*inset
	vector.DrawFilledRect(screen, x, y, size, size, c, true)
}

func (g *Game) drawPanel(screen *ebiten.Image, left float64) {
	for i, line := range PanelLines(g.world, g.board) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(left, float64(margin+i*lineHeight))
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, line, defaultFace, op)
	}
}

// PanelLines is the text shown beside the dungeon
func PanelLines(w *world.World, board *hud.Board) []string {
	lines := []string{fmt.Sprintf("Held: %s", w.Hero()), ""}
	for _, e := range board.Entries() {
		lines = append(lines, e.String())
	}
	return lines
}

// Layout returns the logical screen size for the level
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(g.world.Level())
}

// ScreenSize is the grid plus the variable panel
func ScreenSize(level *world.Level) (int, int) {
	return level.Width()*TileSize + PanelWidth, max(level.Height()*TileSize, 240)
}

// Run opens the window and blocks until it is closed or ctx is done
func Run(ctx context.Context, w *world.World, board *hud.Board, frameRate int) error {
	game := NewGame(ctx, w, board)

	width, height := ScreenSize(w.Level())
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Blockly Dungeon")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if frameRate > 0 {
		ebiten.SetTPS(frameRate)
	}

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
