package intcode

import (
	"fmt"

	"github.com/eigerco/aoc/internal/safemath"
)

// StepInstruction executes exactly one instruction. The boolean reports whether
// the instruction produced an Outcome (an output or the halt).
func (m *Machine) StepInstruction() (Outcome, bool, error) {
	if m.status == StatusHalted {
		return Outcome{}, false, ErrHalted
	}
	m.status = StatusReady

	if err := m.checkAddress("instruction pointer", int64(m.ip)); err != nil {
		return Outcome{}, false, err
	}
	word := m.memory[m.ip]
	opcode := decode(word)
	m.trace(word, opcode)
	m.steps++

	switch opcode {
	case Add:
		return Outcome{}, false, m.arithmetic(word, safemath.Add[int64])
	case Multiply:
		return Outcome{}, false, m.arithmetic(word, safemath.Mul[int64])
	case LessThan:
		return Outcome{}, false, m.arithmetic(word, func(a, b int64) (int64, bool) { return boolToInt(a < b), true })
	case Equals:
		return Outcome{}, false, m.arithmetic(word, func(a, b int64) (int64, bool) { return boolToInt(a == b), true })
	case Input:
		return Outcome{}, false, m.readInput(word)
	case Output:
		value, err := m.load(word, 1)
		if err != nil {
			return Outcome{}, false, err
		}
		m.ip += Output.Width()
		m.status = StatusSuspended
		return Outcome{Kind: KindOutput, Value: value}, true, nil
	case JumpIfTrue:
		return Outcome{}, false, m.jump(word, func(v int64) bool { return v != 0 })
	case JumpIfFalse:
		return Outcome{}, false, m.jump(word, func(v int64) bool { return v == 0 })
	case Halt:
		m.status = StatusHalted
		m.log.Debug().Uint64("steps", m.steps).Int64("result", m.memory[0]).Msg("halt")
		return Outcome{Kind: KindHalted, Value: m.memory[0]}, true, nil
	default:
		return Outcome{}, false, ErrInvalidProgramf("unknown opcode %d at ip=%d", word, m.ip)
	}
}

// Step executes instructions until one produces an output or the machine
// halts. After an output the machine is suspended and the next call resumes it.
func (m *Machine) Step() (Outcome, error) {
	for {
		out, ok, err := m.StepInstruction()
		if err != nil {
			return Outcome{}, err
		}
		if ok {
			return out, nil
		}
	}
}

// arithmetic dst = f(a, b), ip += 4. f reports false on overflow.
func (m *Machine) arithmetic(word int64, f func(a, b int64) (int64, bool)) error {
	a, err := m.load(word, 1)
	if err != nil {
		return err
	}
	b, err := m.load(word, 2)
	if err != nil {
		return err
	}
	v, ok := f(a, b)
	if !ok {
		return fmt.Errorf("%w: %s %d, %d at ip=%d", safemath.ErrOverflow, decode(word), a, b, m.ip)
	}
	if err := m.store(word, 3, v); err != nil {
		return err
	}
	m.ip += 4
	return nil
}

func (m *Machine) readInput(word int64) error {
	if len(m.input) == 0 {
		return ErrInputStarved
	}
	if err := m.store(word, 1, m.input[0]); err != nil {
		return err
	}
	m.input = m.input[1:]
	m.ip += Input.Width()
	return nil
}

// jump ip = b if taken(a), otherwise ip += 3
func (m *Machine) jump(word int64, taken func(int64) bool) error {
	condition, err := m.load(word, 1)
	if err != nil {
		return err
	}
	target, err := m.load(word, 2)
	if err != nil {
		return err
	}
	if !taken(condition) {
		m.ip += 3
		return nil
	}
	if err := m.checkAddress("jump target", target); err != nil {
		return err
	}
	m.ip = int(target)
	return nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
