// Package config loads the YAML configuration for solving runs.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eigerco/aoc/internal/parallel"
	"github.com/eigerco/aoc/pkg/db/pebble"
	"github.com/eigerco/aoc/pkg/log"
)

type Config struct {
	Log    Log    `yaml:"log"`
	Search Search `yaml:"search"`
	Store  Store  `yaml:"store"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

type Search struct {
	// Workers is the pool size, zero for one per CPU.
	Workers   int    `yaml:"workers"`
	ChunkSize uint64 `yaml:"chunk_size"`
	OnFailure string `yaml:"on_failure"` // fail-fast or continue
}

type Store struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// Default configuration: info console logs, one worker per CPU, answers kept in memory.
func Default() Config {
	return Config{
		Log: Log{
			Level:  "info",
			Format: "console",
		},
		Search: Search{
			ChunkSize: parallel.DefaultChunkSize,
			OnFailure: parallel.FailFast.String(),
		},
		Store: Store{
			InMemory: true,
		},
	}
}

// Load reads and validates the configuration file at path. Keys missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c Config) Validate() error {
	var errs []error
	if _, err := log.ParseLogLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := log.ParseLoggerType(c.Log.Format); err != nil {
		errs = append(errs, fmt.Errorf("log.format: %w", err))
	}
	if c.Search.Workers < 0 {
		errs = append(errs, fmt.Errorf("search.workers: must not be negative, got %d", c.Search.Workers))
	}
	if _, err := parallel.ParseFailurePolicy(c.Search.OnFailure); err != nil {
		errs = append(errs, fmt.Errorf("search.on_failure: %w", err))
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		errs = append(errs, errors.New("store.path: required unless store.in_memory is set"))
	}
	return errors.Join(errs...)
}

// LogOptions for log.Init.
func (c Config) LogOptions() (log.Options, error) {
	level, err := log.ParseLogLevel(c.Log.Level)
	if err != nil {
		return log.Options{}, err
	}
	loggerType, err := log.ParseLoggerType(c.Log.Format)
	if err != nil {
		return log.Options{}, err
	}
	return log.Options{LogLevel: level, Type: loggerType}, nil
}

// SearchOptions for the worker pool.
func (c Config) SearchOptions() (parallel.Options, error) {
	policy, err := parallel.ParseFailurePolicy(c.Search.OnFailure)
	if err != nil {
		return parallel.Options{}, err
	}
	return parallel.Options{
		Workers:   c.Search.Workers,
		ChunkSize: c.Search.ChunkSize,
		OnFailure: policy,
	}, nil
}

// OpenStore opens the answer database described by the store section.
func (c Config) OpenStore() (*pebble.KVStore, error) {
	if c.Store.InMemory {
		return pebble.NewKVStore(pebble.InMemory())
	}
	return pebble.NewKVStore(pebble.WithPath(c.Store.Path))
}
