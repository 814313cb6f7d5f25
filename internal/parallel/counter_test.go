package parallel

import (
	"math"
	"math/rand"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_Exclusive(t *testing.T) {
	const (
		offset    = 5
		chunkSize = 10
		callers   = 8
		perCaller = 500
	)
	c := NewCounter(offset, chunkSize)

	var (
		mu     sync.Mutex
		starts []uint64
		wg     sync.WaitGroup
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]uint64, 0, perCaller)
			for range perCaller {
				start, ok := c.Next()
				if !assert.True(t, ok) {
					return
				}
				local = append(local, start)
			}
			mu.Lock()
			starts = append(starts, local...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	slices.Sort(starts)
	require.Len(t, starts, callers*perCaller)
	for i, start := range starts {
		assert.Equal(t, uint64(offset+i*chunkSize), start)
	}
}

func TestCounter_Bounded(t *testing.T) {
	c := NewCounter(0, 30, WithLimit(100))

	var starts, ends []uint64
	for {
		start, ok := c.Next()
		if !ok {
			break
		}
		starts = append(starts, start)
		ends = append(ends, c.End(start))
	}
	assert.Equal(t, []uint64{0, 30, 60, 90}, starts)
	assert.Equal(t, []uint64{30, 60, 90, 100}, ends)

	_, ok := c.Next()
	assert.False(t, ok)
}

func TestCounter_EndClamped(t *testing.T) {
	c := NewCounter(math.MaxUint64-10, 100)
	start, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), c.End(start))
}

func TestCounter_ZeroChunk(t *testing.T) {
	c := NewCounter(7, 0)
	assert.Equal(t, uint64(1), c.ChunkSize())
	start, _ := c.Next()
	assert.Equal(t, uint64(7), start)
	start, _ = c.Next()
	assert.Equal(t, uint64(8), start)
}

func TestCounter_Stop(t *testing.T) {
	c := NewCounter(0, 100)
	_, ok := c.Next()
	require.True(t, ok)

	c.Stop()
	c.Stop()
	assert.True(t, c.Stopped())
	for range 10 {
		_, ok := c.Next()
		assert.False(t, ok)
	}
}

func TestCounter_StopWhileClaiming(t *testing.T) {
	const chunkSize = 4
	c := NewCounter(0, chunkSize)

	var (
		claimed     atomic.Int64
		afterStop   atomic.Int64
		stopVisible atomic.Bool
		startsMu    sync.Mutex
		starts      []uint64
		wg          sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				sawStop := stopVisible.Load()
				start, ok := c.Next()
				if !ok {
					return
				}
				if sawStop {
					afterStop.Add(1)
				}
				if claimed.Add(1) == 1000 {
					c.Stop()
					stopVisible.Store(true)
				}
				startsMu.Lock()
				starts = append(starts, start)
				startsMu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, afterStop.Load(), "a chunk was claimed after the stop became visible")
	_, ok := c.Next()
	assert.False(t, ok)

	// the claimed chunks still tile a prefix of the space
	slices.Sort(starts)
	for i, start := range starts {
		assert.Equal(t, uint64(i*chunkSize), start)
	}
}

func TestFetchMin(t *testing.T) {
	cell := NewMin()
	assert.Equal(t, uint64(math.MaxUint64), cell.Load())

	assert.Equal(t, uint64(math.MaxUint64), FetchMin(cell, 10))
	assert.Equal(t, uint64(10), FetchMin(cell, 20))
	assert.Equal(t, uint64(10), cell.Load())
	assert.Equal(t, uint64(10), FetchMin(cell, 3))
	assert.Equal(t, uint64(3), cell.Load())
}

func TestFetchMin_Concurrent(t *testing.T) {
	const writers = 16
	candidates := make([]uint64, 0, 20000)
	for i := range 20000 {
		candidates = append(candidates, uint64(1_000_000-i*37))
	}
	want := slices.Min(candidates)

	cell := NewMin()
	cell32 := NewMin32()
	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(w)))
			local := slices.Clone(candidates)
			rng.Shuffle(len(local), func(i, j int) { local[i], local[j] = local[j], local[i] })
			for _, v := range local {
				FetchMin(cell, v)
				FetchMin32(cell32, uint32(v))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, want, cell.Load())
	assert.Equal(t, uint32(want), cell32.Load())
}
