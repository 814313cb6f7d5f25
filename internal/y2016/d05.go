// Package y2016 holds the 2016 solutions built on the shared search core.
package y2016

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/eigerco/aoc/internal/hashsearch"
	"github.com/eigerco/aoc/internal/parallel"
	"github.com/eigerco/aoc/pkg/log"
)

const (
	passwordLength = 8
	allPositions   = 1<<passwordLength - 1
)

var ErrEmptyDoorID = errors.New("empty door id")

// interestingHash is an index whose hash starts with five zeros.
type interestingHash struct {
	index  uint64
	prefix uint32
}

// passwordSeed collects interesting hashes from all workers. Workers finish in
// any order, so the list is only meaningful once sorted.
type passwordSeed struct {
	mu        sync.Mutex
	hashes    []interestingHash
	positions uint32 // bit p is set once a hash names position p
}

// add records a hash and reports whether every position has been seen.
func (s *passwordSeed) add(index uint64, prefix uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hashes = append(s.hashes, interestingHash{index: index, prefix: prefix})
	if position := hashsearch.SixthDigit(prefix); position < passwordLength {
		s.positions |= 1 << position
	}
	return s.positions == allPositions
}

// FindInterestingHashes returns the five-zero hash prefixes of the door id in
// index order, stopping once every password position has been named. By then
// at least eight hashes are known, since eight positions need eight hashes.
func FindInterestingHashes(ctx context.Context, doorID string, opts parallel.Options) ([]uint32, error) {
	doorID = strings.TrimSpace(doorID)
	if doorID == "" {
		return nil, ErrEmptyDoorID
	}

	chunk := opts.Chunk()
	seed := &passwordSeed{}
	counter := parallel.NewCounter(chunk, chunk)
	check := func(n uint64, prefix uint32) {
		if prefix&hashsearch.FiveZeros == 0 && seed.add(n, prefix) {
			counter.Stop()
		}
	}

	hashsearch.Scan(doorID, 0, chunk, check)
	if !counter.Stopped() {
		if err := parallel.Run(ctx, counter, opts, hashsearch.Chunks(doorID, check)); err != nil {
			return nil, err
		}
	}

	slices.SortFunc(seed.hashes, func(a, b interestingHash) int {
		switch {
		case a.index < b.index:
			return -1
		case a.index > b.index:
			return 1
		}
		return 0
	})
	prefixes := make([]uint32, len(seed.hashes))
	for i, h := range seed.hashes {
		prefixes[i] = h.prefix
	}
	log.Search.Debug().Int("hashes", len(prefixes)).Msg("door hashes found")
	return prefixes, nil
}

// SimplePassword is the sixth digit of the first eight hashes.
func SimplePassword(prefixes []uint32) string {
	password := make([]byte, 0, passwordLength)
	for _, prefix := range prefixes[:min(passwordLength, len(prefixes))] {
		password = append(password, hexDigit(hashsearch.SixthDigit(prefix)))
	}
	return string(password)
}

// PositionalPassword places the seventh digit at the position named by the
// sixth, keeping the first hash for each position.
func PositionalPassword(prefixes []uint32) string {
	password := []byte(strings.Repeat("_", passwordLength))
	var filled uint32
	for _, prefix := range prefixes {
		position := hashsearch.SixthDigit(prefix)
		if position >= passwordLength || filled&(1<<position) != 0 {
			continue
		}
		password[position] = hexDigit(hashsearch.SeventhDigit(prefix))
		filled |= 1 << position
	}
	return string(password)
}

func hexDigit(v uint32) byte {
	return "0123456789abcdef"[v&0xf]
}

// Day05 How About a Nice Game of Chess?
func Day05(ctx context.Context, input string, opts parallel.Options) (string, string, error) {
	prefixes, err := FindInterestingHashes(ctx, input, opts)
	if err != nil {
		return "", "", err
	}
	return SimplePassword(prefixes), PositionalPassword(prefixes), nil
}
