package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eigerco/aoc/internal/crypto"
	"github.com/eigerco/aoc/pkg/db"
	"github.com/eigerco/aoc/pkg/db/pebble"
	"github.com/eigerco/aoc/pkg/log"
)

var ErrAnswerNotFound = errors.New("answer not found")

// Answer is a solved puzzle: both parts and how long solving took.
type Answer struct {
	Year    int           `json:"year"`
	Day     int           `json:"day"`
	Part1   string        `json:"part1"`
	Part2   string        `json:"part2"`
	Elapsed time.Duration `json:"elapsed"`
	Input   crypto.Hash   `json:"input"`
}

// Answers memoises answers keyed by puzzle and the digest of its input
type Answers struct {
	db.KVStore
}

// NewAnswers creates a new answer store using KVStore
func NewAnswers(db db.KVStore) *Answers {
	return &Answers{KVStore: db}
}

// PutAnswer stores an answer for the input it was computed from
func (a *Answers) PutAnswer(input []byte, answer Answer) error {
	answer.Input = crypto.HashData(input)
	b, err := json.Marshal(answer)
	if err != nil {
		return fmt.Errorf("marshal answer: %w", err)
	}
	if err := a.Put(makeKey(prefixAnswer, answer.Year, answer.Day, answer.Input[:]), b); err != nil {
		return err
	}
	log.Store.Debug().Int("year", answer.Year).Int("day", answer.Day).Stringer("input", answer.Input).Msg("answer stored")
	return nil
}

// GetAnswer fetches the answer of a puzzle for an input.
func (a *Answers) GetAnswer(year, day int, input []byte) (Answer, error) {
	h := crypto.HashData(input)
	b, err := a.Get(makeKey(prefixAnswer, year, day, h[:]))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return Answer{}, ErrAnswerNotFound
		}
		return Answer{}, err
	}
	return decodeAnswer(b)
}

// DeleteAnswer forgets the answer of a puzzle for an input.
func (a *Answers) DeleteAnswer(year, day int, input []byte) error {
	h := crypto.HashData(input)
	return a.Delete(makeKey(prefixAnswer, year, day, h[:]))
}

// YearAnswers returns every stored answer of a year ordered by day.
func (a *Answers) YearAnswers(year int) (answers []Answer, err error) {
	iter, err := a.NewIterator(makeKey(prefixAnswer, year, 0, nil), makeKey(prefixAnswer, year+1, 0, nil))
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := iter.Close(); err == nil {
			err = closeErr
		}
	}()

	for iter.Next() {
		b, err := iter.Value()
		if err != nil {
			return nil, err
		}
		answer, err := decodeAnswer(b)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

// PutAnswers stores several answers atomically.
func (a *Answers) PutAnswers(inputs [][]byte, answers []Answer) error {
	if len(inputs) != len(answers) {
		return fmt.Errorf("got %d inputs for %d answers", len(inputs), len(answers))
	}
	batch := a.NewBatch()
	defer batch.Close() //nolint:errcheck

	for i, answer := range answers {
		answer.Input = crypto.HashData(inputs[i])
		b, err := json.Marshal(answer)
		if err != nil {
			return fmt.Errorf("marshal answer: %w", err)
		}
		if err := batch.Put(makeKey(prefixAnswer, answer.Year, answer.Day, answer.Input[:]), b); err != nil {
			return err
		}
	}
	if err := batch.Commit(); err != nil {
		return fmt.Errorf(ErrFailedBatchCommit, err)
	}
	return nil
}

func decodeAnswer(b []byte) (Answer, error) {
	var answer Answer
	if err := json.Unmarshal(b, &answer); err != nil {
		return Answer{}, fmt.Errorf("unmarshal answer: %w", err)
	}
	return answer, nil
}
