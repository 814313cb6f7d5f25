// Package hashsearch scans MD5 digests of a secret followed by consecutive
// decimal numbers, the inner loop of the brute-force prefix searches.
package hashsearch

import (
	"context"
	"strconv"

	"github.com/eigerco/aoc/internal/crypto"
	"github.com/eigerco/aoc/internal/parallel"
)

const (
	FiveZeros uint32 = 0xfffff000 // mask of the first five hex digits of a prefix
	SixZeros  uint32 = 0xffffff00 // mask of the first six hex digits of a prefix
)

// Visitor receives a number and the MD5 prefix word of secret+number.
type Visitor func(n uint64, prefix uint32)

// candidate is secret followed by the decimal digits of a number. The digits
// are incremented in place so the buffer is formatted only once per chunk.
type candidate struct {
	buf    []byte
	digits int // index of the first digit
}

func newCandidate(secret string, n uint64) *candidate {
	buf := make([]byte, 0, len(secret)+20)
	buf = append(buf, secret...)
	return &candidate{
		buf:    strconv.AppendUint(buf, n, 10),
		digits: len(secret),
	}
}

func (c *candidate) increment() {
	for i := len(c.buf) - 1; i >= c.digits; i-- {
		if c.buf[i] < '9' {
			c.buf[i]++
			return
		}
		c.buf[i] = '0'
	}
	// every digit carried: 99 -> 100
	c.buf = append(c.buf, '0')
	c.buf[c.digits] = '1'
}

// Scan visits every n in [start, end) in increasing order.
func Scan(secret string, start, end uint64, visit Visitor) {
	if start >= end {
		return
	}
	c := newCandidate(secret, start)
	for n := start; n < end; n++ {
		visit(n, crypto.MD5Prefix(c.buf))
		c.increment()
	}
}

// Chunks adapts Scan to a worker pool chunk function.
func Chunks(secret string, visit Visitor) parallel.ChunkFunc {
	return func(_ context.Context, start, end uint64) error {
		Scan(secret, start, end, visit)
		return nil
	}
}

// SixthDigit is the sixth hex digit of the digest.
func SixthDigit(prefix uint32) uint32 {
	return (prefix >> 8) & 0xf
}

// SeventhDigit is the seventh hex digit of the digest.
func SeventhDigit(prefix uint32) uint32 {
	return (prefix >> 4) & 0xf
}
