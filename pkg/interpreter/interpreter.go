package interpreter

import (
	"context"
	"slices"
	"sync/atomic"

	"blockly/pkg/stack"

	"github.com/charmbracelet/log"
)

// Actuator performs a leaf action in the game world. Perform may block for up to one frame.
type Actuator interface {
	Perform(ctx context.Context, action LeafAction) error
}

// HUD displays variables. Calls are best-effort.
type HUD interface {
	ScalarSet(name string, value int)
	ArraySet(name string, values []int)
	Clear()
}

// Sensor answers the wall-proximity predicates used in conditions
type Sensor interface {
	WallAt(dir Direction) bool
}

// ConditionEvaluator evaluates the text between the parentheses of falls/solange
type ConditionEvaluator interface {
	Evaluate(cond string) (bool, error)
}

// Flags is a snapshot of the execution flags
type Flags struct {
	Interrupted bool
	Errored     bool
	Message     string
	Action      string // line being processed when the fault occurred
	Err         error
}

// Interpreter executes the block language one line at a time.
// All state lives here; Reset is equivalent to constructing a new Interpreter.
type Interpreter struct {
	variables map[string]*Variable // global variable store
	functions map[string][]string  // completed function bodies

	scopes    *stack.Stack[ScopeKind]      // active scopes, kind only
	ifs       *stack.Stack[*IfFrame]       // active ifs
	whiles    *stack.Stack[*WhileFrame]    // active while loops
	repeats   *stack.Stack[*RepeatFrame]   // active repeat loops
	funcDefs  *stack.Stack[*FunctionFrame] // active function definitions
	replaying *stack.Stack[ScopeKind]      // loops currently replaying

	// frames below this scope depth do not capture; raised during loop replay
	captureFloor int
	callDepth    int

	interrupted atomic.Bool
	errored     bool
	message     string
	faultAction string
	fault       error

	ctx        context.Context
	actuator   Actuator
	hud        HUD
	sensor     Sensor
	conditions ConditionEvaluator
	log        *log.Logger

	maxCallDepth int // maximum nested function calls (0 = unlimited)
}

type Option func(*Interpreter)

// WithActuator sets the game-world side of leaf actions
func WithActuator(a Actuator) Option {
	return func(i *Interpreter) { i.actuator = a }
}

// WithHUD sets the variable display notified after every write
func WithHUD(h HUD) Option {
	return func(i *Interpreter) { i.hud = h }
}

// WithSensor sets the source of the wall predicates for the default condition evaluator
func WithSensor(s Sensor) Option {
	return func(i *Interpreter) { i.sensor = s }
}

// WithConditions replaces the default condition evaluator
func WithConditions(c ConditionEvaluator) Option {
	return func(i *Interpreter) { i.conditions = c }
}

// WithLogger sets the logger for dispatch tracing
func WithLogger(l *log.Logger) Option {
	return func(i *Interpreter) { i.log = l }
}

// WithMaxCallDepth limits nested function calls; 0 leaves recursion unbounded
func WithMaxCallDepth(n int) Option {
	return func(i *Interpreter) { i.maxCallDepth = n }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(opts ...Option) *Interpreter {
	it := &Interpreter{
		ctx: context.Background(),
	}
	it.initState()

	for _, o := range opts {
		o(it)
	}

	if it.log == nil {
		it.log = log.Default()
	}

	if it.conditions == nil {
		it.conditions = newDefaultConditions(it)
	}

	return it
}

func (i *Interpreter) initState() {
	i.variables = make(map[string]*Variable)
	i.functions = make(map[string][]string)
	i.scopes = stack.NewStack[ScopeKind]()
	i.ifs = stack.NewStack[*IfFrame]()
	i.whiles = stack.NewStack[*WhileFrame]()
	i.repeats = stack.NewStack[*RepeatFrame]()
	i.funcDefs = stack.NewStack[*FunctionFrame]()
	i.replaying = stack.NewStack[ScopeKind]()
	i.captureFloor = 0
	i.callDepth = 0
}

// Reset clears variables, functions, every scope stack and the execution flags.
// It must not be called while Run is in progress.
func (i *Interpreter) Reset() {
	i.initState()
	i.interrupted.Store(false)
	i.errored = false
	i.message = ""
	i.faultAction = ""
	i.fault = nil

	if i.hud != nil {
		i.hud.Clear()
	}

	i.log.Debug("Values cleared")
}

// Interrupt stops the running program at the next check. Safe to call from any goroutine.
func (i *Interpreter) Interrupt() {
	i.interrupted.Store(true)
}

// Interrupted reports whether execution has been stopped
func (i *Interpreter) Interrupted() bool {
	return i.interrupted.Load()
}

// Flags returns the current execution flags
func (i *Interpreter) Flags() Flags {
	return Flags{
		Interrupted: i.interrupted.Load(),
		Errored:     i.errored,
		Message:     i.message,
		Action:      i.faultAction,
		Err:         i.fault,
	}
}

// Variable returns a copy of the named variable
func (i *Interpreter) Variable(name string) (Variable, bool) {
	v, ok := i.variables[name]
	if !ok {
		return Variable{}, false
	}
	return v.clone(), true
}

// Variables returns the sorted names of all variables
func (i *Interpreter) Variables() []string {
	names := make([]string, 0, len(i.variables))
	for name := range i.variables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Function returns a copy of the stored body of a completed function definition
func (i *Interpreter) Function(name string) ([]string, bool) {
	body, ok := i.functions[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(body), true
}

// Functions returns the sorted names of all defined functions
func (i *Interpreter) Functions() []string {
	names := make([]string, 0, len(i.functions))
	for name := range i.functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ScopeDepth returns the number of open scopes
func (i *Interpreter) ScopeDepth() int {
	return i.scopes.Size()
}

// Scopes returns the open scope kinds, outermost first
func (i *Interpreter) Scopes() []ScopeKind {
	return slices.Clone(i.scopes.Array())
}

// setError records the first fault and stops execution
func (i *Interpreter) setError(action string, err error) {
	if i.errored {
		return
	}

	i.errored = true
	i.message = err.Error()
	i.faultAction = action
	i.fault = err
	i.interrupted.Store(true)

	i.log.Warn("Execution failed", "action", action, "kind", KindOf(err), "error", err)
}

// discardOpenScopes drops every open frame; partially captured bodies are lost
func (i *Interpreter) discardOpenScopes() {
	i.scopes.Clear()
	i.ifs.Clear()
	i.whiles.Clear()
	i.repeats.Clear()
	i.funcDefs.Clear()
	i.replaying.Clear()
	i.captureFloor = 0
	i.callDepth = 0
}
