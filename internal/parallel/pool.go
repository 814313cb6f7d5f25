package parallel

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/eigerco/aoc/pkg/log"
)

// DefaultChunkSize trades stop latency against contention on the cursor.
const DefaultChunkSize = 1000

// FailurePolicy decides what a failing worker does to the rest of the search.
type FailurePolicy uint8

const (
	// FailFast stops the counter, cancels the other workers and returns the error.
	FailFast FailurePolicy = iota
	// ContinueOnFailure logs the error and retires the worker; the others carry on.
	ContinueOnFailure
)

func (p FailurePolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case ContinueOnFailure:
		return "continue"
	}
	return "unknown"
}

func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(s) {
	case "", "fail-fast":
		return FailFast, nil
	case "continue":
		return ContinueOnFailure, nil
	}
	return 0, fmt.Errorf("unknown failure policy %q", s)
}

// ErrAllWorkersFailed every worker retired under ContinueOnFailure before the
// search completed.
var ErrAllWorkersFailed = errors.New("all workers failed")

// ErrWorkerPanic a chunk function panicked.
type ErrWorkerPanic struct {
	Start uint64
	Value any
}

func (e *ErrWorkerPanic) Error() string {
	return fmt.Sprintf("worker panic in chunk %d: %v", e.Start, e.Value)
}

// Options for Run.
type Options struct {
	// Workers is the pool size, GOMAXPROCS when zero or negative.
	Workers int
	// ChunkSize is used by callers constructing counters, DefaultChunkSize when zero.
	ChunkSize uint64
	OnFailure FailurePolicy
}

func (o Options) WorkerCount() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

func (o Options) Chunk() uint64 {
	if o.ChunkSize == 0 {
		return DefaultChunkSize
	}
	return o.ChunkSize
}

// ChunkFunc processes the half-open range [start, end).
type ChunkFunc func(ctx context.Context, start, end uint64) error

// Run starts the worker pool and blocks until every worker has returned. Each
// worker claims chunks from counter until it is stopped or exhausted, or ctx
// is done. A claimed chunk always runs to completion.
func Run(ctx context.Context, counter *Counter, opts Options, process ChunkFunc) error {
	workers := opts.WorkerCount()
	g, gctx := errgroup.WithContext(ctx)

	var alive atomic.Int64
	alive.Store(int64(workers))

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			err := work(gctx, counter, process)
			if err == nil {
				return nil
			}
			logger := log.Search.With().Int("worker", w).Logger()

			if opts.OnFailure == FailFast {
				counter.Stop()
				logger.Error().Err(err).Msg("worker failed, stopping search")
				return err
			}

			remaining := alive.Add(-1)
			logger.Warn().Err(err).Int64("remaining", remaining).Msg("worker failed, continuing")
			if remaining == 0 {
				return fmt.Errorf("%w: %w", ErrAllWorkersFailed, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func work(ctx context.Context, counter *Counter, process ChunkFunc) (err error) {
	var start uint64
	defer func() {
		if recovered := recover(); recovered != nil {
			err = &ErrWorkerPanic{Start: start, Value: recovered}
		}
	}()

	for ctx.Err() == nil {
		var ok bool
		start, ok = counter.Next()
		if !ok {
			return nil
		}
		if err := process(ctx, start, counter.End(start)); err != nil {
			return fmt.Errorf("chunk %d: %w", start, err)
		}
	}
	return nil
}
