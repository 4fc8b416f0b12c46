package interpreter

// ScopeKind tags an entry of the scope stack
type ScopeKind string

const (
	ScopeIf       ScopeKind = "if"
	ScopeWhile    ScopeKind = "while"
	ScopeRepeat   ScopeKind = "repeat"
	ScopeFunction ScopeKind = "function"
)

// IfFrame is an open if (and optional else) scope. It captures nothing.
type IfFrame struct {
	ConditionTrue bool // if-branch executes
	ElseActive    bool // else-branch executes (set at the else line)
}

func (f *IfFrame) executes() bool {
	return f.ConditionTrue || f.ElseActive
}

// WhileFrame is an open while loop
type WhileFrame struct {
	Condition string   // condition text between the parentheses
	Result    bool     // last evaluated condition result
	Body      []string // captured lines, closing marker included
	Replaying bool
	depth     int // index on the scope stack
}

// RepeatFrame is an open repeat loop. The capturing pass is iteration 1.
type RepeatFrame struct {
	Target    int
	Counter   int
	Body      []string
	Replaying bool
	depth     int
}

func (f *RepeatFrame) live() bool {
	return f.Target > 0
}

// FunctionFrame is a function definition being captured
type FunctionFrame struct {
	Name  string
	Body  []string
	depth int
}
