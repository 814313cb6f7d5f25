// Package solver maps puzzles to their solutions and runs them, memoising
// answers in the answer store.
package solver

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/eigerco/aoc/internal/parallel"
	"github.com/eigerco/aoc/internal/y2015"
	"github.com/eigerco/aoc/internal/y2016"
	"github.com/eigerco/aoc/internal/y2019"
)

var (
	ErrUnknownPuzzle   = errors.New("unknown puzzle")
	ErrDuplicatePuzzle = errors.New("puzzle already registered")
)

type Answer struct {
	Part1 string
	Part2 string
}

// Func solves both parts of a puzzle for an input. Solutions that search use
// opts for their worker pool; the others ignore it.
type Func func(ctx context.Context, input string, opts parallel.Options) (Answer, error)

type Puzzle struct {
	Year int
	Day  int
}

func (p Puzzle) String() string {
	return fmt.Sprintf("%d/%02d", p.Year, p.Day)
}

func (p Puzzle) compare(o Puzzle) int {
	if p.Year != o.Year {
		return p.Year - o.Year
	}
	return p.Day - o.Day
}

type Registry struct {
	funcs map[Puzzle]Func
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[Puzzle]Func)}
}

// Default registry with every available solution.
func Default() *Registry {
	r := NewRegistry()
	r.mustRegister(Puzzle{2015, 4}, searching(y2015.Day04))
	r.mustRegister(Puzzle{2016, 5}, searching(y2016.Day05))
	r.mustRegister(Puzzle{2019, 2}, sequential(y2019.Day02))
	r.mustRegister(Puzzle{2019, 5}, sequential(y2019.Day05))
	return r
}

func (r *Registry) Register(p Puzzle, f Func) error {
	if _, ok := r.funcs[p]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePuzzle, p)
	}
	r.funcs[p] = f
	return nil
}

func (r *Registry) mustRegister(p Puzzle, f Func) {
	if err := r.Register(p, f); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(p Puzzle) (Func, error) {
	f, ok := r.funcs[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPuzzle, p)
	}
	return f, nil
}

// All registered puzzles ordered by year then day.
func (r *Registry) All() []Puzzle {
	puzzles := make([]Puzzle, 0, len(r.funcs))
	for p := range r.funcs {
		puzzles = append(puzzles, p)
	}
	slices.SortFunc(puzzles, Puzzle.compare)
	return puzzles
}

func searching(f func(context.Context, string, parallel.Options) (string, string, error)) Func {
	return func(ctx context.Context, input string, opts parallel.Options) (Answer, error) {
		p1, p2, err := f(ctx, input, opts)
		if err != nil {
			return Answer{}, err
		}
		return Answer{Part1: p1, Part2: p2}, nil
	}
}

func sequential(f func(string) (string, string, error)) Func {
	return func(ctx context.Context, input string, _ parallel.Options) (Answer, error) {
		if err := ctx.Err(); err != nil {
			return Answer{}, err
		}
		p1, p2, err := f(input)
		if err != nil {
			return Answer{}, err
		}
		return Answer{Part1: p1, Part2: p2}, nil
	}
}
