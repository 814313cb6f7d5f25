// Package intcode implements the integer computer: a flat, self-modifying
// memory of signed integers executed one instruction at a time, with an input
// queue and execution that suspends on every output.
package intcode

import (
	"github.com/rs/zerolog"

	"github.com/eigerco/aoc/pkg/log"
)

// Status of a machine between steps.
type Status uint8

const (
	StatusReady     Status = iota // ip points at the next instruction
	StatusSuspended               // the last step produced an output
	StatusHalted                  // terminal
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusSuspended:
		return "suspended"
	case StatusHalted:
		return "halted"
	}
	return "unknown"
}

// Kind tags an Outcome.
type Kind uint8

const (
	KindOutput Kind = iota + 1
	KindHalted
)

// Outcome of a Step: either an output value (resumable) or the halted value,
// which is memory[0] at the time of the halt.
type Outcome struct {
	Kind  Kind
	Value int64
}

func (o Outcome) Halted() bool {
	return o.Kind == KindHalted
}

type Option func(*Machine)

// WithLogger overrides the logger instructions are traced to, log.VM by default.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Machine) {
		m.log = l
	}
}

// WithInput queues input values at construction.
func WithInput(values ...int64) Option {
	return func(m *Machine) {
		m.QueueInput(values...)
	}
}

type Machine struct {
	memory []int64 // code and data
	ip     int     // instruction pointer
	input  []int64 // FIFO input queue
	status Status
	steps  uint64
	log    zerolog.Logger
}

// New copies program into the machine's own memory. It never fails; a
// malformed program is reported when it is executed.
func New(program []int64, opts ...Option) *Machine {
	m := &Machine{
		memory: append(make([]int64, 0, len(program)), program...),
		log:    log.VM,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// QueueInput appends values to the back of the input queue.
func (m *Machine) QueueInput(values ...int64) {
	m.input = append(m.input, values...)
}

// Pending is the number of queued inputs not yet consumed.
func (m *Machine) Pending() int {
	return len(m.input)
}

func (m *Machine) IP() int {
	return m.ip
}

func (m *Machine) Status() Status {
	return m.status
}

// Steps is the number of instructions executed so far.
func (m *Machine) Steps() uint64 {
	return m.steps
}

// Memory returns a copy of the current memory.
func (m *Machine) Memory() []int64 {
	return append([]int64(nil), m.memory...)
}

func (m *Machine) Peek(address int) (int64, error) {
	if err := m.checkAddress("peek", int64(address)); err != nil {
		return 0, err
	}
	return m.memory[address], nil
}

// Poke overwrites a memory cell, typically to patch a program before running it.
func (m *Machine) Poke(address int, value int64) error {
	if err := m.checkAddress("poke", int64(address)); err != nil {
		return err
	}
	m.memory[address] = value
	return nil
}

// Address resolves the memory index of the operand at the 1-based position of
// the instruction at ip. Immediate operands resolve to their own cell, position
// operands to the address stored in that cell.
func (m *Machine) Address(word int64, position int) (int, error) {
	if position < 1 || position > MaxOperands {
		return 0, ErrInvalidProgramf("operand position %d out of range", position)
	}
	operand := int64(m.ip + position)
	if err := m.checkAddress("operand", operand); err != nil {
		return 0, err
	}

	switch mode := modeOf(word, position); mode {
	case PositionMode:
		address := m.memory[operand]
		if err := m.checkAddress("operand address", address); err != nil {
			return 0, err
		}
		return int(address), nil
	case ImmediateMode:
		return int(operand), nil
	default:
		return 0, ErrInvalidProgramf("invalid addressing mode %d for operand %d of %d at ip=%d", mode, position, word, m.ip)
	}
}

func (m *Machine) checkAddress(reason string, address int64) error {
	if address < 0 || address >= int64(len(m.memory)) {
		return &ErrOutOfBounds{Reason: reason, Address: address}
	}
	return nil
}

func (m *Machine) load(word int64, position int) (int64, error) {
	address, err := m.Address(word, position)
	if err != nil {
		return 0, err
	}
	return m.memory[address], nil
}

func (m *Machine) store(word int64, position int, value int64) error {
	address, err := m.Address(word, position)
	if err != nil {
		return err
	}
	m.memory[address] = value
	return nil
}
