package testutils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/aoc/pkg/db"
	"github.com/eigerco/aoc/pkg/db/pebble"
)

// DumpMemory renders memory one "address: value" cell per line.
func DumpMemory(memory []int64) string {
	sb := strings.Builder{}
	for i, v := range memory {
		fmt.Fprintf(&sb, "%4d: %d\n", i, v)
	}
	return sb.String()
}

// RequireEqualMemory compares two memory images and fails the test if they
// are not equal. Similar to testify's require.Equal, but provides a more
// useful diff output.
func RequireEqualMemory(t *testing.T, expected, actual []int64) {
	t.Helper()
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(DumpMemory(expected)),
		B:        difflib.SplitLines(DumpMemory(actual)),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	if diff != "" {
		t.Fatalf("Memory mismatch:\n%s", diff)
	}
}

// NewMemKVStore opens an in-memory pebble store closed with the test.
func NewMemKVStore(t *testing.T) db.KVStore {
	t.Helper()
	kv, err := pebble.NewKVStore(pebble.InMemory())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, kv.Close())
	})
	return kv
}
