package parallel

import (
	"math"
	"sync/atomic"
)

// NewMin returns a cell holding math.MaxUint64, the identity of FetchMin.
func NewMin() *atomic.Uint64 {
	cell := &atomic.Uint64{}
	cell.Store(math.MaxUint64)
	return cell
}

// FetchMin stores candidate in cell if it is smaller than the current value and
// returns the previous value. Safe under concurrent writers.
func FetchMin(cell *atomic.Uint64, candidate uint64) uint64 {
	for {
		current := cell.Load()
		if candidate >= current {
			return current
		}
		if cell.CompareAndSwap(current, candidate) {
			return current
		}
	}
}

// NewMin32 returns a cell holding math.MaxUint32.
func NewMin32() *atomic.Uint32 {
	cell := &atomic.Uint32{}
	cell.Store(math.MaxUint32)
	return cell
}

// FetchMin32 is FetchMin for 32-bit cells.
func FetchMin32(cell *atomic.Uint32, candidate uint32) uint32 {
	for {
		current := cell.Load()
		if candidate >= current {
			return current
		}
		if cell.CompareAndSwap(current, candidate) {
			return current
		}
	}
}
