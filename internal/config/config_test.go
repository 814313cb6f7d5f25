package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/aoc/internal/parallel"
	"github.com/eigerco/aoc/pkg/log"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.SearchOptions()
	require.NoError(t, err)
	assert.Equal(t, parallel.Options{ChunkSize: parallel.DefaultChunkSize, OnFailure: parallel.FailFast}, opts)

	logOpts, err := cfg.LogOptions()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logOpts.LogLevel)
	assert.Equal(t, log.ConsoleLogger, logOpts.Type)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
log:
  level: debug
  format: json
search:
  workers: 4
  on_failure: continue
store:
  in_memory: false
  path: /tmp/answers
`))
	require.NoError(t, err)

	assert.Equal(t, Log{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, Store{Path: "/tmp/answers"}, cfg.Store)

	opts, err := cfg.SearchOptions()
	require.NoError(t, err)
	assert.Equal(t, 4, opts.Workers)
	// missing keys keep their defaults
	assert.Equal(t, uint64(parallel.DefaultChunkSize), opts.ChunkSize)
	assert.Equal(t, parallel.ContinueOnFailure, opts.OnFailure)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{"bad level", "log: {level: loud}", "log.level"},
		{"bad format", "log: {format: xml}", "log.format"},
		{"negative workers", "search: {workers: -1}", "search.workers"},
		{"bad policy", "search: {on_failure: retry}", "search.on_failure"},
		{"missing path", "store: {in_memory: false}", "store.path"},
		{"not yaml", "log: [", "failed to parse"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.ErrorContains(t, err, tc.errMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")

	data, err := Default().Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read the config file")
}

func TestOpenStore(t *testing.T) {
	cfg := Default()
	kv, err := cfg.OpenStore()
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	cfg.Store = Store{Path: t.TempDir()}
	kv, err = cfg.OpenStore()
	require.NoError(t, err)
	require.NoError(t, kv.Put([]byte("k"), []byte("v")))
	require.NoError(t, kv.Close())
}
