package testing

import (
	"testing"

	"github.com/marmos91/dittokv/pkg/kv"
	"github.com/stretchr/testify/require"
)

// mustSet writes a value and fails the test on error.
func mustSet(t *testing.T, adapter kv.Adapter, path string, value []byte) {
	t.Helper()
	require.NoError(t, adapter.Set(testContext(), path, value))
}

// mustGet reads a value that must exist and returns it.
func mustGet(t *testing.T, adapter kv.Adapter, path string) []byte {
	t.Helper()
	value, found, err := adapter.Get(testContext(), path)
	require.NoError(t, err)
	require.True(t, found, "expected %q to exist", path)
	return value
}

// assertAbsent verifies the adapter reports the path as absent without error.
func assertAbsent(t *testing.T, adapter kv.Adapter, path string) {
	t.Helper()
	_, found, err := adapter.Get(testContext(), path)
	require.NoError(t, err)
	require.False(t, found, "expected %q to be absent", path)
}

// generateValue produces a deterministic payload of the given size.
func generateValue(size int) []byte {
	value := make([]byte, size)
	for i := range value {
		value[i] = byte(i % 251)
	}
	return value
}
