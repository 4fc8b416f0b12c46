package lexer

import "fmt"

// Position locates a token inside a single-line condition
type Position struct {
	Column int
	Offset int
}

// Returns a string representation of the Position
func (p Position) String() string {
	return fmt.Sprintf("%d, %d", p.Column, p.Offset)
}

// Creates a new Position instance
func NewPosition(column, offset int) Position {
	return Position{
		Column: column,
		Offset: offset,
	}
}
