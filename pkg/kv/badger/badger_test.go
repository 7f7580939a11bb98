package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittokv/pkg/kv"
	kvtesting "github.com/marmos91/dittokv/pkg/kv/testing"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()

	adapter, err := New(context.Background(), Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, adapter.Close())
	})
	return adapter
}

// TestBadgerAdapter runs the complete adapter contract suite against an
// in-memory Badger instance.
func TestBadgerAdapter(t *testing.T) {
	suite := &kvtesting.AdapterTestSuite{
		NewAdapter: func() kv.Adapter {
			return newTestAdapter(t)
		},
	}

	suite.Run(t)
}

// TestBadgerAdapter_PersistsAcrossReopen verifies data written to a
// disk-backed database survives a close/reopen cycle.
func TestBadgerAdapter_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	cfg := Config{Path: dir}

	adapter, err := New(ctx, cfg)
	require.NoError(t, err)

	value := []byte("durable")
	require.NoError(t, adapter.Set(ctx, "/persist", value))
	require.NoError(t, adapter.Close())

	reopened, err := New(ctx, cfg)
	require.NoError(t, err)
	defer reopened.Close()

	got, found, err := reopened.Get(ctx, "/persist")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, value, got)
}

func TestBadgerAdapter_OpenFailure(t *testing.T) {
	// A file (not a directory) at the database path makes Open fail.
	_, err := New(context.Background(), Config{Path: "/dev/null"})
	assert.Error(t, err)
}
