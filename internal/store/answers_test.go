package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/aoc/internal/crypto"
	"github.com/eigerco/aoc/internal/testutils"
)

func TestAnswers_PutGetDelete(t *testing.T) {
	answers := NewAnswers(testutils.NewMemKVStore(t))
	input := []byte("abcdef")

	_, err := answers.GetAnswer(2015, 4, input)
	assert.ErrorIs(t, err, ErrAnswerNotFound)

	want := Answer{Year: 2015, Day: 4, Part1: "609043", Part2: "6742839", Elapsed: 120 * time.Millisecond}
	require.NoError(t, answers.PutAnswer(input, want))

	got, err := answers.GetAnswer(2015, 4, input)
	require.NoError(t, err)
	want.Input = crypto.HashData(input)
	assert.Equal(t, want, got)

	// a different input, or a different day, is a different answer
	_, err = answers.GetAnswer(2015, 4, []byte("pqrstuv"))
	assert.ErrorIs(t, err, ErrAnswerNotFound)
	_, err = answers.GetAnswer(2015, 5, input)
	assert.ErrorIs(t, err, ErrAnswerNotFound)

	require.NoError(t, answers.DeleteAnswer(2015, 4, input))
	_, err = answers.GetAnswer(2015, 4, input)
	assert.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestAnswers_YearAnswers(t *testing.T) {
	answers := NewAnswers(testutils.NewMemKVStore(t))

	require.NoError(t, answers.PutAnswers(
		[][]byte{[]byte("b"), []byte("a"), []byte("c")},
		[]Answer{
			{Year: 2019, Day: 5, Part1: "1", Part2: "5"},
			{Year: 2019, Day: 2, Part1: "3440677", Part2: "7745"},
			{Year: 2016, Day: 5, Part1: "18f47a30", Part2: "05ace8e3"},
		},
	))

	got, err := answers.YearAnswers(2019)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Day)
	assert.Equal(t, 5, got[1].Day)

	got, err = answers.YearAnswers(2017)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnswers_PutAnswersMismatch(t *testing.T) {
	answers := NewAnswers(testutils.NewMemKVStore(t))
	err := answers.PutAnswers([][]byte{[]byte("a")}, nil)
	assert.Error(t, err)
}

func TestPrefixToString(t *testing.T) {
	assert.Equal(t, "answer", PrefixToString(prefixAnswer))
	assert.Equal(t, "unknown", PrefixToString(0xff))
}
