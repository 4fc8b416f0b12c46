// Package world is the dungeon the block programs steer the hero through.
package world

import (
	"errors"
	"fmt"
	"strings"

	"blockly/pkg/interpreter"
)

// Tile is a single grid cell
type Tile byte

const (
	Floor Tile = '.'
	Wall  Tile = '#'
	Start Tile = 'S' // floor where the hero spawns
)

// Point is a grid coordinate; y grows downwards
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Step returns the neighbouring point in direction d
func (p Point) Step(d interpreter.Direction) Point {
	switch d {
	case interpreter.Up:
		return Point{p.X, p.Y - 1}
	case interpreter.Down:
		return Point{p.X, p.Y + 1}
	case interpreter.Left:
		return Point{p.X - 1, p.Y}
	case interpreter.Right:
		return Point{p.X + 1, p.Y}
	}
	return p
}

var (
	ErrEmptyLevel = errors.New("level is empty")
	ErrNoStart    = errors.New("level has no start tile")
)

// Level is an immutable grid of tiles
type Level struct {
	tiles  [][]Tile
	width  int
	height int
	start  Point
}

// DefaultLevel is used when no level is configured
const DefaultLevel = `
##########
#S.......#
#.####.#.#
#.#....#.#
#.#.####.#
#...#....#
##########
`

// ParseLevel reads an ASCII map: '#' wall, '.' floor, 'S' start.
// Short rows are padded with walls.
func ParseLevel(text string) (*Level, error) {
	var rows []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}

	l := &Level{height: len(rows), start: Point{-1, -1}}
	for _, row := range rows {
		l.width = max(l.width, len(row))
	}

	l.tiles = make([][]Tile, l.height)
	for y, row := range rows {
		l.tiles[y] = make([]Tile, l.width)
		for x := range l.width {
			if x >= len(row) {
				l.tiles[y][x] = Wall
				continue
			}

			switch t := Tile(row[x]); t {
			case Floor, Wall:
				l.tiles[y][x] = t
			case Start:
				if l.start.X >= 0 {
					return nil, fmt.Errorf("second start tile at %d,%d", x, y)
				}
				l.start = Point{x, y}
				l.tiles[y][x] = Floor
			default:
				return nil, fmt.Errorf("unknown tile %q at %d,%d", row[x], x, y)
			}
		}
	}

	if l.start.X < 0 {
		return nil, ErrNoStart
	}

	return l, nil
}

// MustParseLevel is ParseLevel for levels known to be valid
func MustParseLevel(text string) *Level {
	l, err := ParseLevel(text)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Level) Width() int   { return l.width }
func (l *Level) Height() int  { return l.height }
func (l *Level) Start() Point { return l.start }

// At returns the tile at p; everything outside the grid is wall
func (l *Level) At(p Point) Tile {
	if p.X < 0 || p.Y < 0 || p.X >= l.width || p.Y >= l.height {
		return Wall
	}
	return l.tiles[p.Y][p.X]
}

// Walkable reports whether the hero or a fireball may enter p
func (l *Level) Walkable(p Point) bool {
	return l.At(p) != Wall
}
