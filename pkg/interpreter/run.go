package interpreter

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Status is the result category of a Run
type Status int

const (
	Completed Status = iota
	Interrupted
	Failed
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case Interrupted:
		return "interrupted"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome reports how a Run ended
type Outcome struct {
	Status    Status
	Action    string // innermost line that faulted
	Statement string // top-level line that was being dispatched
	Message   string
	Err       error
}

// Run dispatches lines in order until the end, an interrupt or a fault.
// Cancelling ctx interrupts the run. Variables and functions persist until Reset.
// After an Interrupted or Failed outcome the flags stay set and every further
// Run returns the same status at once, without dispatching, until Reset is called.
func (i *Interpreter) Run(ctx context.Context, lines []string) Outcome {
	i.ctx = ctx
	defer func() { i.ctx = context.Background() }()

	stop := context.AfterFunc(ctx, i.Interrupt)
	defer stop()

	statement := ""
	for _, line := range lines {
		if i.Interrupted() {
			break
		}
		statement = line
		i.Dispatch(line)
	}

	switch {
	case i.errored:
		i.discardOpenScopes()
		i.log.Info("Execution failed", "action", i.faultAction, "error", i.message)
		return Outcome{
			Status:    Failed,
			Action:    i.faultAction,
			Statement: statement,
			Message:   i.message,
			Err:       i.fault,
		}

	case i.Interrupted():
		i.discardOpenScopes()
		i.log.Info("Execution interrupted")
		return Outcome{Status: Interrupted, Statement: statement}
	}

	return Outcome{Status: Completed}
}

// SplitProgram turns program text into trimmed, non-empty lines
func SplitProgram(text string) []string {
	text = norm.NFC.String(text)

	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
