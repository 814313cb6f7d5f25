package intcode

import "strconv"

type Opcode int64

const (
	Add         Opcode = 1  // dst = a + b
	Multiply    Opcode = 2  // dst = a * b
	Input       Opcode = 3  // dst = pop input
	Output      Opcode = 4  // emit a
	JumpIfTrue  Opcode = 5  // ip = b if a != 0
	JumpIfFalse Opcode = 6  // ip = b if a == 0
	LessThan    Opcode = 7  // dst = a < b
	Equals      Opcode = 8  // dst = a == b
	Halt        Opcode = 99 // stop, result is memory[0]
)

// Width is the number of memory cells an instruction occupies, opcode included.
func (o Opcode) Width() int {
	switch o {
	case Add, Multiply, LessThan, Equals:
		return 4
	case JumpIfTrue, JumpIfFalse:
		return 3
	case Input, Output:
		return 2
	case Halt:
		return 1
	}
	return 0
}

func (o Opcode) String() string {
	switch o {
	case Add:
		return "add"
	case Multiply:
		return "mul"
	case Input:
		return "in"
	case Output:
		return "out"
	case JumpIfTrue:
		return "jnz"
	case JumpIfFalse:
		return "jz"
	case LessThan:
		return "lt"
	case Equals:
		return "eq"
	case Halt:
		return "halt"
	}
	return "op(" + strconv.FormatInt(int64(o), 10) + ")"
}

// Mode selects how an operand is read.
type Mode int64

const (
	PositionMode  Mode = 0 // the operand is an address
	ImmediateMode Mode = 1 // the operand is the value
)

// MaxOperands is the largest operand position any instruction uses.
const MaxOperands = 3

var modeDivisors = [MaxOperands + 1]int64{0, 100, 1000, 10000}

// decode splits an instruction word into its opcode.
func decode(word int64) Opcode {
	return Opcode(word % 100)
}

// modeOf (word / 10^(position+1)) mod 10
func modeOf(word int64, position int) Mode {
	return Mode(word / modeDivisors[position] % 10)
}
