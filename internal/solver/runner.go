package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eigerco/aoc/internal/parallel"
	"github.com/eigerco/aoc/internal/store"
	"github.com/eigerco/aoc/pkg/log"
)

type Runner struct {
	registry *Registry
	answers  *store.Answers // nil disables memoisation
	opts     parallel.Options
}

func NewRunner(registry *Registry, answers *store.Answers, opts parallel.Options) *Runner {
	return &Runner{registry: registry, answers: answers, opts: opts}
}

// Solve returns the stored answer for the puzzle input when there is one,
// otherwise solves it and stores the answer.
func (r *Runner) Solve(ctx context.Context, p Puzzle, input string) (Answer, error) {
	solve, err := r.registry.Lookup(p)
	if err != nil {
		return Answer{}, err
	}
	logger := log.Root.With().Stringer("puzzle", p).Logger()

	if r.answers != nil {
		stored, err := r.answers.GetAnswer(p.Year, p.Day, []byte(input))
		switch {
		case err == nil:
			logger.Debug().Dur("elapsed", stored.Elapsed).Msg("stored answer")
			return Answer{Part1: stored.Part1, Part2: stored.Part2}, nil
		case !errors.Is(err, store.ErrAnswerNotFound):
			return Answer{}, fmt.Errorf("get answer %s: %w", p, err)
		}
	}

	start := time.Now()
	answer, err := solve(ctx, input, r.opts)
	if err != nil {
		logger.Error().Err(err).Msg("solve failed")
		return Answer{}, fmt.Errorf("solve %s: %w", p, err)
	}
	elapsed := time.Since(start)
	logger.Info().Dur("elapsed", elapsed).Str("part1", answer.Part1).Str("part2", answer.Part2).Msg("solved")

	if r.answers != nil {
		err := r.answers.PutAnswer([]byte(input), store.Answer{
			Year:    p.Year,
			Day:     p.Day,
			Part1:   answer.Part1,
			Part2:   answer.Part2,
			Elapsed: elapsed,
		})
		if err != nil {
			return Answer{}, fmt.Errorf("put answer %s: %w", p, err)
		}
	}
	return answer, nil
}
