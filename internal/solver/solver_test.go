package solver

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/aoc/internal/parallel"
	"github.com/eigerco/aoc/internal/store"
	"github.com/eigerco/aoc/internal/testutils"
)

func TestDefault(t *testing.T) {
	r := Default()
	assert.Equal(t, []Puzzle{{2015, 4}, {2016, 5}, {2019, 2}, {2019, 5}}, r.All())

	_, err := r.Lookup(Puzzle{2019, 3})
	assert.ErrorIs(t, err, ErrUnknownPuzzle)

	err = r.Register(Puzzle{2015, 4}, nil)
	assert.ErrorIs(t, err, ErrDuplicatePuzzle)
}

func TestPuzzle_String(t *testing.T) {
	assert.Equal(t, "2015/04", Puzzle{2015, 4}.String())
}

func TestDefault_Diagnostics(t *testing.T) {
	solve, err := Default().Lookup(Puzzle{2019, 5})
	require.NoError(t, err)

	answer, err := solve(context.Background(), "3,11,104,0,104,0,4,11,99,0,0,0", parallel.Options{})
	require.NoError(t, err)
	assert.Equal(t, Answer{Part1: "1", Part2: "5"}, answer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = solve(ctx, "99", parallel.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

// countingRegistry has one puzzle answering the input length, counting calls.
func countingRegistry(t *testing.T, calls *int, fail error) *Registry {
	r := NewRegistry()
	require.NoError(t, r.Register(Puzzle{2000, 1}, func(_ context.Context, input string, _ parallel.Options) (Answer, error) {
		*calls++
		if fail != nil {
			return Answer{}, fail
		}
		return Answer{Part1: strconv.Itoa(len(input)), Part2: input}, nil
	}))
	return r
}

func TestRunner_Solve(t *testing.T) {
	var calls int
	answers := store.NewAnswers(testutils.NewMemKVStore(t))
	runner := NewRunner(countingRegistry(t, &calls, nil), answers, parallel.Options{})
	ctx := context.Background()

	answer, err := runner.Solve(ctx, Puzzle{2000, 1}, "abc")
	require.NoError(t, err)
	assert.Equal(t, Answer{Part1: "3", Part2: "abc"}, answer)
	assert.Equal(t, 1, calls)

	answer, err = runner.Solve(ctx, Puzzle{2000, 1}, "abc")
	require.NoError(t, err)
	assert.Equal(t, Answer{Part1: "3", Part2: "abc"}, answer)
	assert.Equal(t, 1, calls, "stored answer must be reused")

	_, err = runner.Solve(ctx, Puzzle{2000, 1}, "abcd")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	stored, err := answers.YearAnswers(2000)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	_, err = runner.Solve(ctx, Puzzle{2000, 2}, "abc")
	assert.ErrorIs(t, err, ErrUnknownPuzzle)
}

func TestRunner_SolveWithoutStore(t *testing.T) {
	var calls int
	runner := NewRunner(countingRegistry(t, &calls, nil), nil, parallel.Options{})

	for range 2 {
		_, err := runner.Solve(context.Background(), Puzzle{2000, 1}, "abc")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
}

func TestRunner_FailureIsNotStored(t *testing.T) {
	var calls int
	boom := errors.New("boom")
	answers := store.NewAnswers(testutils.NewMemKVStore(t))
	runner := NewRunner(countingRegistry(t, &calls, boom), answers, parallel.Options{})

	_, err := runner.Solve(context.Background(), Puzzle{2000, 1}, "abc")
	assert.ErrorIs(t, err, boom)

	_, err = answers.GetAnswer(2000, 1, []byte("abc"))
	assert.ErrorIs(t, err, store.ErrAnswerNotFound)
}
