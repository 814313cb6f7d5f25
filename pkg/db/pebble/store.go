package pebble

import (
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/eigerco/aoc/pkg/db"
	"github.com/eigerco/aoc/pkg/log"
)

var _ db.KVStore = &KVStore{}

type options struct {
	path string
	fs   vfs.FS
}

type Option func(*options)

// WithPath stores the database in the given directory.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// InMemory keeps the database on an in-memory filesystem, nothing is persisted.
func InMemory() Option {
	return func(o *options) {
		o.path = ""
		o.fs = vfs.NewMem()
	}
}

type KVStore struct {
	db     *pebble.DB
	closed bool
	mu     sync.RWMutex
}

// NewKVStore opens a pebble database, in memory unless WithPath is given.
func NewKVStore(opts ...Option) (*KVStore, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.fs == nil {
		if o.path == "" {
			o.fs = vfs.NewMem()
		} else {
			o.fs = vfs.Default
		}
	}

	pebbleOpts := &pebble.Options{
		Cache:        pebble.NewCache(8 * 1024 * 1024), // 8MB
		MemTableSize: 4 * 1024 * 1024,                  // 4MB
		// MaxMemTableTotal (16MB) is not a pebble.Options field; the
		// memtable cap is left at pebble's default.
		FS: o.fs,
	}
	defer pebbleOpts.Cache.Unref()

	pdb, err := pebble.Open(o.path, pebbleOpts)
	if err != nil {
		return nil, err
	}
	log.Store.Debug().Str("path", o.path).Msg("opened pebble store")

	return &KVStore{db: pdb}, nil
}

func (p *KVStore) Get(key []byte) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrClosed
	}

	value, closer, err := p.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (p *KVStore) Put(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Set(key, value, pebble.Sync)
}

func (p *KVStore) Delete(key []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Delete(key, pebble.Sync)
}

func (p *KVStore) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.db.Close()
}
