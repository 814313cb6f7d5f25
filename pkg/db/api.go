// Package db defines the key-value storage used to memoise solved puzzle
// answers. pkg/db/pebble provides the implementation.
package db

// KVStore is a key-value store with atomic batches and ordered iteration.
type KVStore interface {
	Writer
	Get(key []byte) ([]byte, error)
	Delete(key []byte) error
	NewBatch() Batch
	NewIterator(start, end []byte) (Iterator, error)
	Close() error
}

type Writer interface {
	Put(key []byte, value []byte) error
}

// Batch groups writes that are applied atomically on Commit.
type Batch interface {
	Writer
	Delete(key []byte) error
	Commit() error
	Close() error
}

// Iterator walks the keys in [start, end) in order. The first Next positions
// it at the first key. Iterators must be closed after use.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() ([]byte, error)
	Valid() bool
	Close() error
}
