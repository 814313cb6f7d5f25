// Package y2015 holds the 2015 solutions built on the shared search core.
package y2015

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/eigerco/aoc/internal/hashsearch"
	"github.com/eigerco/aoc/internal/parallel"
	"github.com/eigerco/aoc/pkg/log"
)

var ErrEmptySecret = errors.New("empty secret key")

// AdventCoins are the lowest positive numbers whose MD5 with the secret key
// starts with five and six zero hex digits.
type AdventCoins struct {
	FiveZeros uint64
	SixZeros  uint64
}

// MineAdventCoins checks the first chunk sequentially, then fans the rest of
// the numbers out to the worker pool until a six-zero hash is found.
func MineAdventCoins(ctx context.Context, secret string, opts parallel.Options) (AdventCoins, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return AdventCoins{}, ErrEmptySecret
	}

	chunk := opts.Chunk()
	five, six := parallel.NewMin(), parallel.NewMin()
	counter := parallel.NewCounter(chunk, chunk)

	check := func(n uint64, prefix uint32) {
		if prefix&hashsearch.FiveZeros != 0 {
			return
		}
		parallel.FetchMin(five, n)
		if prefix&hashsearch.SixZeros == 0 {
			parallel.FetchMin(six, n)
			counter.Stop()
		}
	}

	hashsearch.Scan(secret, 1, chunk, check)
	if !counter.Stopped() {
		if err := parallel.Run(ctx, counter, opts, hashsearch.Chunks(secret, check)); err != nil {
			return AdventCoins{}, err
		}
	}

	coins := AdventCoins{FiveZeros: five.Load(), SixZeros: six.Load()}
	if coins.SixZeros == math.MaxUint64 {
		return AdventCoins{}, errors.New("search ended without a six-zero hash")
	}
	log.Search.Debug().Uint64("five", coins.FiveZeros).Uint64("six", coins.SixZeros).Msg("advent coins mined")
	return coins, nil
}

// Day04 The Ideal Stocking Stuffer
func Day04(ctx context.Context, input string, opts parallel.Options) (string, string, error) {
	coins, err := MineAdventCoins(ctx, input, opts)
	if err != nil {
		return "", "", err
	}
	return strconv.FormatUint(coins.FiveZeros, 10), strconv.FormatUint(coins.SixZeros, 10), nil
}
