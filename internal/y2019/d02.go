// Package y2019 holds the 2019 solutions that run on the intcode machine.
package y2019

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/eigerco/aoc/internal/intcode"
)

const (
	gravityAssistTarget = 19_690_720
	maxNounVerb         = 99
)

var ErrNoSolution = errors.New("no noun and verb produce the target")

// Evaluate runs program with memory[1] = noun and memory[2] = verb and
// returns memory[0] at the halt.
func Evaluate(program []int64, noun, verb int64) (int64, error) {
	m := intcode.New(program)
	if err := m.Poke(1, noun); err != nil {
		return 0, err
	}
	if err := m.Poke(2, verb); err != nil {
		return 0, err
	}
	return m.Run()
}

// LinearFit is the program's result as a·noun + b·verb + c. Programs made only
// of additions and multiplications of non-negative values are linear in noun
// and verb, so three evaluations determine it.
type LinearFit struct {
	A, B, C int64
}

func FitProgram(program []int64) (LinearFit, error) {
	c, err := Evaluate(program, 0, 0)
	if err != nil {
		return LinearFit{}, fmt.Errorf("evaluate (0, 0): %w", err)
	}
	a, err := Evaluate(program, 1, 0)
	if err != nil {
		return LinearFit{}, fmt.Errorf("evaluate (1, 0): %w", err)
	}
	b, err := Evaluate(program, 0, 1)
	if err != nil {
		return LinearFit{}, fmt.Errorf("evaluate (0, 1): %w", err)
	}
	return LinearFit{A: a - c, B: b - c, C: c}, nil
}

func (f LinearFit) At(noun, verb int64) int64 {
	return f.A*noun + f.B*verb + f.C
}

// Solve finds noun and verb in [0, 99] with At(noun, verb) == target.
func (f LinearFit) Solve(target int64) (noun, verb int64, err error) {
	for noun = 0; noun <= maxNounVerb; noun++ {
		rest := target - f.C - f.A*noun
		switch {
		case f.B == 0:
			if rest == 0 {
				return noun, 0, nil
			}
		case rest%f.B == 0:
			if verb = rest / f.B; verb >= 0 && verb <= maxNounVerb {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, ErrNoSolution
}

// Day02 1202 Program Alarm
func Day02(input string) (string, string, error) {
	program, err := intcode.Parse(input)
	if err != nil {
		return "", "", err
	}
	fit, err := FitProgram(program)
	if err != nil {
		return "", "", err
	}
	noun, verb, err := fit.Solve(gravityAssistTarget)
	if err != nil {
		return "", "", err
	}
	return strconv.FormatInt(fit.At(12, 2), 10), strconv.FormatInt(100*noun+verb, 10), nil
}
