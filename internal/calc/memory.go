package calc

// MemoryStore solves the screen and, if it holds a number, copies it into
// memory.
func (e *Engine) MemoryStore() error {
	seps := e.Separators()
	if e.inError() {
		return nil
	}
	if _, err := e.solve(seps, false); err != nil {
		return err
	}
	v, ok := e.value(seps)
	if !ok {
		return nil
	}
	e.memory = v
	return e.commitValue(e.memory, seps)
}

// MemoryRecall shows the memory value.
func (e *Engine) MemoryRecall() error {
	seps := e.Separators()
	if e.inError() {
		return nil
	}
	return e.commitValue(e.memory, seps)
}

// MemoryClear zeroes memory and the screen.
func (e *Engine) MemoryClear() {
	if e.inError() {
		return
	}
	e.memory = 0
	e.setScreen("0")
}

// Accumulate solves the screen, adds delta to memory and shows the memory.
func (e *Engine) Accumulate(delta float64) error {
	seps := e.Separators()
	if e.inError() {
		return nil
	}
	if _, err := e.solve(seps, false); err != nil {
		return err
	}
	return e.accumulate(delta, seps)
}

// MemoryPlus adds the screen value to memory.
func (e *Engine) MemoryPlus() error {
	return e.memoryOp(1)
}

// MemoryMinus subtracts the screen value from memory.
func (e *Engine) MemoryMinus() error {
	return e.memoryOp(-1)
}

func (e *Engine) memoryOp(sign float64) error {
	seps := e.Separators()
	if e.inError() {
		return nil
	}
	if _, err := e.solve(seps, false); err != nil {
		return err
	}
	v, ok := e.value(seps)
	if !ok {
		return nil
	}
	return e.accumulate(sign*v, seps)
}

func (e *Engine) accumulate(delta float64, seps Separators) error {
	if e.inError() {
		return nil
	}
	e.memory += delta
	return e.commitValue(e.memory, seps)
}
