package interpreter

// Dispatch processes a single trimmed line. Faults are recorded in the execution
// flags; Dispatch never returns them. It re-enters itself for loop replay and
// function calls.
func (i *Interpreter) Dispatch(action string) {
	if i.Interrupted() {
		return
	}

	i.log.Debug("Processing action", "action", action)

	i.capture(action)

	if action == ClosingMarker {
		if kind, ok := i.scopes.Peek(); ok {
			if err := i.closeScope(kind); err != nil {
				i.setError(action, err)
			}
			return
		}
	}

	handled, err := i.openScope(action)
	if err != nil {
		i.setError(action, err)
		return
	}
	if handled {
		return
	}

	if !i.gateOpen() {
		return
	}

	if err := i.execute(action); err != nil {
		i.setError(action, err)
	}
}

// execute runs an assignment, a user function call or a leaf action
func (i *Interpreter) execute(action string) error {
	if err := i.assign(action); err != errNoAssignment {
		return err
	}

	if leaf, ok := ParseLeafAction(action); ok {
		return i.perform(leaf)
	}

	m := callRegex.FindStringSubmatch(action)
	if m == nil {
		i.log.Debug("Ignoring action", "action", action)
		return nil
	}

	name := m[1]
	if IsReserved(name) {
		i.log.Debug("Ignoring built-in call", "action", action)
		return nil
	}

	return i.call(name)
}
