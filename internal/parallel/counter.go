// Package parallel splits a search space into fixed-size chunks claimed by a
// pool of workers from a shared atomic cursor, with a cooperative stop flag
// and atomic minimum cells for aggregating results.
package parallel

import (
	"sync/atomic"

	"github.com/eigerco/aoc/internal/safemath"
)

type CounterOption func(*Counter)

// WithLimit bounds the counter: chunks starting at or past end are never handed out.
func WithLimit(end uint64) CounterOption {
	return func(c *Counter) {
		c.limit = end
		c.bounded = true
	}
}

// Counter hands out the chunks [start, start+chunkSize) of a search space.
// Two callers never receive the same chunk.
type Counter struct {
	cursor    atomic.Uint64
	stopped   atomic.Bool
	chunkSize uint64
	limit     uint64
	bounded   bool
}

// NewCounter creates a counter whose first chunk starts at offset. A zero
// chunk size is treated as one.
func NewCounter(offset, chunkSize uint64, opts ...CounterOption) *Counter {
	c := &Counter{chunkSize: max(chunkSize, 1)}
	c.cursor.Store(offset)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Next claims the next chunk and returns its start. It returns false once
// Stop has been called or a bounded counter is exhausted.
func (c *Counter) Next() (uint64, bool) {
	if c.stopped.Load() {
		return 0, false
	}
	start := c.cursor.Add(c.chunkSize) - c.chunkSize
	if c.bounded && start >= c.limit {
		return 0, false
	}
	return start, true
}

// End is the exclusive end of the chunk starting at start, clamped to the
// top of the uint64 range.
func (c *Counter) End(start uint64) uint64 {
	end := safemath.SaturatingAdd64(start, c.chunkSize)
	if c.bounded && end > c.limit {
		return c.limit
	}
	return end
}

// Stop makes every later Next return false. Chunks already claimed are not
// interrupted. Stop is idempotent and safe to call from any goroutine.
func (c *Counter) Stop() {
	c.stopped.Store(true)
}

func (c *Counter) Stopped() bool {
	return c.stopped.Load()
}

func (c *Counter) ChunkSize() uint64 {
	return c.chunkSize
}
