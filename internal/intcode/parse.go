package intcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a comma separated program. Surrounding whitespace and a trailing
// newline are ignored.
func Parse(text string) ([]int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty program")
	}
	fields := strings.Split(text, ",")
	program := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse cell %d: %w", i, err)
		}
		program[i] = v
	}
	return program, nil
}
