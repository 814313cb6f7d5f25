package intcode

import (
	"errors"
	"fmt"
)

// ErrInvalidProgram the program cannot be executed: unknown opcode, invalid
// addressing mode or an unexpected runtime fault.
type ErrInvalidProgram struct {
	msg  string
	args []any
}

func ErrInvalidProgramf(msg string, args ...any) *ErrInvalidProgram {
	return &ErrInvalidProgram{msg: msg, args: args}
}

func (e *ErrInvalidProgram) Error() string {
	return fmt.Sprintf("invalid program: "+e.msg, e.args...)
}

// ErrOutOfBounds an address computed by the program lies outside memory.
type ErrOutOfBounds struct {
	Reason  string
	Address int64
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("out of bounds %s: address=%d", e.Reason, e.Address)
}

// ErrInputStarved an input instruction was reached with an empty input queue.
var ErrInputStarved = errors.New("input queue is empty")

// ErrHalted the machine already executed a halt instruction.
var ErrHalted = errors.New("machine halted")
