package interpreter

import (
	"regexp"
)

var callRegex = regexp.MustCompile(`^(` + identPattern + `)\(\);?$`)

// closeFunction registers the innermost definition, overwriting any previous one.
// The definition's own closing marker is not part of the stored body.
func (i *Interpreter) closeFunction() {
	f, _ := i.funcDefs.Pop()
	i.scopes.Pop()

	body := f.Body
	if n := len(body); n > 0 && body[n-1] == ClosingMarker {
		body = body[:n-1]
	}

	i.functions[f.Name] = body
	i.log.Debug("Function defined", "name", f.Name, "lines", len(body))
}

// call inlines a user function: its body is dispatched line by line in the caller's scope.
// Loops capturing at the call site record the inlined lines after the call line.
func (i *Interpreter) call(name string) error {
	body, ok := i.functions[name]
	if !ok {
		return newError(UndefinedFunction, "Function %s is not defined", name)
	}

	if i.maxCallDepth > 0 && i.callDepth >= i.maxCallDepth {
		return newError(CallDepthExceeded, "Function %s exceeds the call depth limit of %d", name, i.maxCallDepth)
	}

	i.callDepth++
	defer func() { i.callDepth-- }()

	i.log.Debug("Executing function", "name", name)
	for _, action := range body {
		i.Dispatch(action)
		if i.Interrupted() {
			break
		}
	}

	return nil
}
