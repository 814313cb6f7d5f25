package intcode

// Run executes the program until it halts, discarding outputs, and returns the
// halted value (memory[0]).
func (m *Machine) Run() (result int64, err error) {
	_, result, err = m.run(false)
	return result, err
}

// RunOutputs executes the program until it halts and returns every output in
// order together with the halted value.
func (m *Machine) RunOutputs() (outputs []int64, result int64, err error) {
	return m.run(true)
}

func (m *Machine) run(collect bool) (outputs []int64, result int64, err error) {
	defer func() {
		if recoveredErr := recover(); recoveredErr != nil {
			err = ErrInvalidProgramf("unexpected program termination at ip=%d: %v", m.ip, recoveredErr)
		}
	}()
	for {
		out, err := m.Step()
		if err != nil {
			return outputs, 0, err
		}
		if out.Halted() {
			return outputs, out.Value, nil
		}
		if collect {
			outputs = append(outputs, out.Value)
		}
	}
}

// NextOutput resumes the machine until it outputs a value. Halting first is
// reported with ok=false.
func (m *Machine) NextOutput() (value int64, ok bool, err error) {
	out, err := m.Step()
	if err != nil {
		return 0, false, err
	}
	if out.Halted() {
		return 0, false, nil
	}
	return out.Value, true, nil
}
