package store

import "encoding/binary"

const (
	ErrFailedBatchCommit = "failed to commit batch: %v"
)

// Prefix constants for all store types
const (
	prefixAnswer byte = iota + 1
)

// PrefixToString converts a prefix byte to a string
func PrefixToString(p byte) string {
	switch p {
	case prefixAnswer:
		return "answer"
	default:
		return "unknown"
	}
}

// makeKey creates a key from a prefix, a puzzle and an optional digest
func makeKey(prefix byte, year, day int, digest []byte) []byte {
	key := make([]byte, 4+len(digest))
	key[0] = prefix
	binary.BigEndian.PutUint16(key[1:3], uint16(year))
	key[3] = byte(day)
	copy(key[4:], digest)
	return key
}
