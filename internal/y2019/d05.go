package y2019

import (
	"errors"
	"strconv"

	"github.com/eigerco/aoc/internal/intcode"
)

const (
	airConditionerUnit = 1
	thermalRadiator    = 5
)

var ErrNoDiagnostic = errors.New("program halted before a diagnostic code")

// Diagnostic runs the test program for a system id. Passing checks output
// zero; the first non-zero output is the diagnostic code.
func Diagnostic(program []int64, systemID int64) (int64, error) {
	m := intcode.New(program, intcode.WithInput(systemID))
	for {
		value, ok, err := m.NextOutput()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrNoDiagnostic
		}
		if value != 0 {
			return value, nil
		}
	}
}

// Day05 Sunny with a Chance of Asteroids
func Day05(input string) (string, string, error) {
	program, err := intcode.Parse(input)
	if err != nil {
		return "", "", err
	}
	p1, err := Diagnostic(program, airConditionerUnit)
	if err != nil {
		return "", "", err
	}
	p2, err := Diagnostic(program, thermalRadiator)
	if err != nil {
		return "", "", err
	}
	return strconv.FormatInt(p1, 10), strconv.FormatInt(p2, 10), nil
}
