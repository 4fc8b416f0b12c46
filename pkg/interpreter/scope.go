package interpreter

import (
	"regexp"

	"blockly/pkg/parser"
)

// ClosingMarker closes the innermost open scope
const ClosingMarker = "}"

var (
	ifKeywordRegex     = regexp.MustCompile(`^falls\b`)
	ifOpenRegex        = regexp.MustCompile(`^falls\s*\((.*)\)\s*\{?$`)
	elseRegex          = regexp.MustCompile(`^\}?\s*sonst\s*\{?$`)
	whileKeywordRegex  = regexp.MustCompile(`^solange\b`)
	whileOpenRegex     = regexp.MustCompile(`^solange\s*\((.*)\)\s*\{?$`)
	repeatKeywordRegex = regexp.MustCompile(`^wiederhole\b`)
	repeatOpenRegex    = regexp.MustCompile(`^wiederhole\s+(` + operandPattern + `)\s+Mal\s*\{?$`)
	funcOpenRegex      = regexp.MustCompile(`^public\s+void\s+(` + identPattern + `)\s*\(\)\s*\{?$`)
)

// gateOpen reports whether mutations, calls and leaf actions may run:
// every if and while on the stack is taken, every repeat has a positive target,
// and no function is being defined.
func (i *Interpreter) gateOpen() bool {
	if !i.funcDefs.Empty() {
		return false
	}
	for _, f := range i.ifs.Array() {
		if !f.executes() {
			return false
		}
	}
	for _, f := range i.whiles.Array() {
		if !f.Result {
			return false
		}
	}
	for _, f := range i.repeats.Array() {
		if !f.live() {
			return false
		}
	}
	return true
}

// capture appends line to every capturing loop and function body at or above the capture floor
func (i *Interpreter) capture(line string) {
	for _, f := range i.whiles.Array() {
		if !f.Replaying && f.depth >= i.captureFloor {
			f.Body = append(f.Body, line)
		}
	}
	for _, f := range i.repeats.Array() {
		if !f.Replaying && f.depth >= i.captureFloor {
			f.Body = append(f.Body, line)
		}
	}
	for _, f := range i.funcDefs.Array() {
		if f.depth >= i.captureFloor {
			f.Body = append(f.Body, line)
		}
	}
}

// openScope handles if, else, while, repeat and function-definition lines.
// handled is false if line opens nothing.
func (i *Interpreter) openScope(line string) (handled bool, err error) {
	switch {
	case ifKeywordRegex.MatchString(line):
		m := ifOpenRegex.FindStringSubmatch(line)
		if m == nil {
			return true, newError(InvalidCondition, "Detected condition that is not valid: %s", line)
		}
		result, err := i.gatedCondition(m[1])
		if err != nil {
			return true, err
		}
		i.scopes.Push(ScopeIf)
		i.ifs.Push(&IfFrame{ConditionTrue: result})
		i.log.Debug("If opened", "condition", m[1], "result", result)
		return true, nil

	case elseRegex.MatchString(line):
		kind, ok := i.scopes.Peek()
		if !ok || kind != ScopeIf {
			return true, newError(UnmatchedElse, "sonst without matching falls")
		}
		f, _ := i.ifs.Peek()
		f.ElseActive = !f.ConditionTrue
		f.ConditionTrue = false
		return true, nil

	case whileKeywordRegex.MatchString(line):
		m := whileOpenRegex.FindStringSubmatch(line)
		if m == nil {
			return true, newError(InvalidCondition, "Detected condition that is not valid: %s", line)
		}
		result, err := i.gatedCondition(m[1])
		if err != nil {
			return true, err
		}
		i.whiles.Push(&WhileFrame{Condition: m[1], Result: result, depth: i.scopes.Size()})
		i.scopes.Push(ScopeWhile)
		i.log.Debug("While opened", "condition", m[1], "result", result)
		return true, nil

	case repeatKeywordRegex.MatchString(line):
		m := repeatOpenRegex.FindStringSubmatch(line)
		if m == nil {
			return true, newError(MalformedLiteral, "Repeat count is not valid: %s", line)
		}
		target := 0
		if i.gateOpen() {
			if target, err = i.Operand(m[1]); err != nil {
				return true, err
			}
		}
		i.repeats.Push(&RepeatFrame{Target: target, Counter: 1, depth: i.scopes.Size()})
		i.scopes.Push(ScopeRepeat)
		i.log.Debug("Repeat opened", "target", target)
		return true, nil

	case funcOpenRegex.MatchString(line):
		name := funcOpenRegex.FindStringSubmatch(line)[1]
		i.funcDefs.Push(&FunctionFrame{Name: name, depth: i.scopes.Size()})
		i.scopes.Push(ScopeFunction)
		i.log.Debug("Function definition opened", "name", name)
		return true, nil
	}

	return false, nil
}

// closeScope resolves the closing marker against the innermost scope
func (i *Interpreter) closeScope(kind ScopeKind) error {
	switch kind {
	case ScopeIf:
		i.ifs.Pop()
		i.scopes.Pop()
		return nil

	case ScopeWhile:
		f, err := i.closeWhile()
		if err != nil || f == nil {
			return err
		}
		i.replay(f)
		return nil

	case ScopeRepeat:
		f := i.closeRepeat()
		if f == nil {
			return nil
		}
		i.replay(f)
		return nil

	case ScopeFunction:
		i.closeFunction()
		return nil
	}

	return nil
}

// closeWhile re-tests the innermost while. It returns the frame if a replay must start.
func (i *Interpreter) closeWhile() (*WhileFrame, error) {
	f, _ := i.whiles.Peek()

	result := false
	gate := i.gateOpen()
	if gate {
		var err error
		if result, err = i.evaluateCondition(f.Condition); err != nil {
			return nil, err
		}
	}

	if result && gate {
		f.Result = result
		if !f.Replaying {
			f.Replaying = true
			i.replaying.Push(ScopeWhile)
			return f, nil
		}
		return nil, nil
	}

	i.log.Debug("Ending while loop", "condition", f.Condition)
	if f.Replaying {
		f.Replaying = false
		i.replaying.Pop()
	}
	i.scopes.Pop()
	i.whiles.Pop()
	return nil, nil
}

// closeRepeat advances the innermost repeat. It returns the frame if a replay must start.
func (i *Interpreter) closeRepeat() *RepeatFrame {
	f, _ := i.repeats.Peek()

	if f.Counter < f.Target && i.gateOpen() {
		f.Counter++
		if !f.Replaying {
			f.Replaying = true
			i.replaying.Push(ScopeRepeat)
			return f
		}
		return nil
	}

	i.log.Debug("Ending repeat loop", "iterations", f.Counter, "target", f.Target)
	if f.Replaying {
		f.Replaying = false
		i.replaying.Pop()
	}
	i.scopes.Pop()
	i.repeats.Pop()
	return nil
}

// loopFrame is a while or repeat frame that can be replayed
type loopFrame interface {
	replayingNow() bool
	captured() []string
	scopeDepth() int
}

func (f *WhileFrame) replayingNow() bool  { return f.Replaying }
func (f *WhileFrame) captured() []string  { return f.Body }
func (f *WhileFrame) scopeDepth() int     { return f.depth }
func (f *RepeatFrame) replayingNow() bool { return f.Replaying }
func (f *RepeatFrame) captured() []string { return f.Body }
func (f *RepeatFrame) scopeDepth() int    { return f.depth }

// replay re-dispatches a captured loop body until the loop closes itself through
// its own closing marker or execution is interrupted.
func (i *Interpreter) replay(f loopFrame) {
	saved := i.captureFloor
	i.captureFloor = f.scopeDepth() + 1
	defer func() { i.captureFloor = saved }()

	for f.replayingNow() && !i.Interrupted() {
		i.log.Debug("Repeating loop", "depth", f.scopeDepth())
		for _, action := range f.captured() {
			i.Dispatch(action)
			if i.Interrupted() {
				break
			}
		}
	}
}

// gatedCondition evaluates cond only where its result can matter
func (i *Interpreter) gatedCondition(cond string) (bool, error) {
	if !i.gateOpen() {
		return false, nil
	}
	return i.evaluateCondition(cond)
}

// evaluateCondition delegates to the condition evaluator. Inside a function
// definition conditions are never evaluated.
func (i *Interpreter) evaluateCondition(cond string) (bool, error) {
	if !i.funcDefs.Empty() {
		return false, nil
	}

	result, err := i.conditions.Evaluate(cond)
	if err != nil {
		if KindOf(err) == InvalidCondition {
			return false, err
		}
		return false, wrapError(InvalidCondition, err, "Condition %q could not be evaluated", cond)
	}

	i.log.Debug("Result of current condition", "condition", cond, "result", result)
	return result, nil
}

// defaultConditions evaluates conditions with pkg/parser against the interpreter's store
type defaultConditions struct {
	it         *Interpreter
	predicates map[string]parser.Predicate
}

func newDefaultConditions(it *Interpreter) *defaultConditions {
	return &defaultConditions{it: it, predicates: it.predicates()}
}

func (c *defaultConditions) Evaluate(cond string) (bool, error) {
	return parser.Evaluate(cond, c.it, c.predicates)
}

func (i *Interpreter) predicates() map[string]parser.Predicate {
	wall := func(d Direction) parser.Predicate {
		return func() bool { return i.sensor != nil && i.sensor.WallAt(d) }
	}

	return map[string]parser.Predicate{
		PredicateWallUp:    wall(Up),
		PredicateWallDown:  wall(Down),
		PredicateWallLeft:  wall(Left),
		PredicateWallRight: wall(Right),
		PredicateNearWall: func() bool {
			if i.sensor == nil {
				return false
			}
			return i.sensor.WallAt(Up) || i.sensor.WallAt(Down) || i.sensor.WallAt(Left) || i.sensor.WallAt(Right)
		},
	}
}
