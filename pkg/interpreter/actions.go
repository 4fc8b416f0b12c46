package interpreter

import (
	"fmt"
)

// Direction is one of the four grid directions
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// LeafAction is a terminal instruction forwarded to the Actuator
type LeafAction int

const (
	MoveUp LeafAction = iota
	MoveDown
	MoveLeft
	MoveRight
	FireUp
	FireDown
	FireLeft
	FireRight
)

var leafLines = [...]string{
	MoveUp:    "oben();",
	MoveDown:  "unten();",
	MoveLeft:  "links();",
	MoveRight: "rechts();",
	FireUp:    "feuerballOben();",
	FireDown:  "feuerballUnten();",
	FireLeft:  "feuerballLinks();",
	FireRight: "feuerballRechts();",
}

var leafNames = map[string]LeafAction{
	"oben":            MoveUp,
	"unten":           MoveDown,
	"links":           MoveLeft,
	"rechts":          MoveRight,
	"feuerballOben":   FireUp,
	"feuerballUnten":  FireDown,
	"feuerballLinks":  FireLeft,
	"feuerballRechts": FireRight,
}

// Wall predicate names usable in conditions
const (
	PredicateWallUp    = "WandOben"
	PredicateWallDown  = "WandUnten"
	PredicateWallLeft  = "WandLinks"
	PredicateWallRight = "WandRechts"
	PredicateNearWall  = "naheWand"
)

var predicateNames = map[string]bool{
	PredicateWallUp:    true,
	PredicateWallDown:  true,
	PredicateWallLeft:  true,
	PredicateWallRight: true,
	PredicateNearWall:  true,
}

// Direction returns the direction the action moves or fires in
func (a LeafAction) Direction() Direction {
	return Direction(int(a) % 4)
}

// IsMove reports whether the action moves the hero
func (a LeafAction) IsMove() bool {
	return a <= MoveRight
}

func (a LeafAction) String() string {
	if a >= 0 && int(a) < len(leafLines) {
		return leafLines[a]
	}
	return fmt.Sprintf("LeafAction(%d)", int(a))
}

// ParseLeafAction maps a line such as "oben();" to its action. Only the exact
// leaf strings match.
func ParseLeafAction(line string) (LeafAction, bool) {
	for a, l := range leafLines {
		if l == line {
			return LeafAction(a), true
		}
	}
	return 0, false
}

// IsReserved reports whether name is a built-in that never resolves to a user function
func IsReserved(name string) bool {
	_, leaf := leafNames[name]
	return leaf || predicateNames[name]
}

// perform forwards a leaf action and waits for the actuator to finish
func (i *Interpreter) perform(action LeafAction) error {
	i.log.Debug("Performing action", "action", action)

	if i.actuator == nil {
		return nil
	}

	if err := i.actuator.Perform(i.ctx, action); err != nil {
		if i.ctx.Err() != nil {
			// cancelled while waiting for the frame; treat as interruption
			i.Interrupt()
			return nil
		}
		return wrapError(ActuatorFailed, err, "could not perform %s", action)
	}

	return nil
}
