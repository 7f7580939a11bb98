package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStore_Memory(t *testing.T) {
	store, err := CreateStore(context.Background(), &StoreConfig{Type: "memory"})
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte("v")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestCreateStore_Badger(t *testing.T) {
	store, err := CreateStore(context.Background(), &StoreConfig{
		Type:   "badger",
		Badger: map[string]any{"in_memory": true},
	})
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, "badger", store.Metadata().Scheme)
}

func TestCreateStore_BadgerRequiresPath(t *testing.T) {
	_, err := CreateStore(context.Background(), &StoreConfig{
		Type:   "badger",
		Badger: map[string]any{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path is required")
}

func TestCreateStore_ZooKeeperDecodesDuration(t *testing.T) {
	// Construction succeeds without a reachable ensemble: the session is
	// established lazily on first use.
	store, err := CreateStore(context.Background(), &StoreConfig{
		Type: "zookeeper",
		ZooKeeper: map[string]any{
			"endpoint":        "zk:2181",
			"session_timeout": "5s",
		},
	})
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, "zookeeper", store.Metadata().Scheme)
}

func TestCreateStore_UnknownType(t *testing.T) {
	_, err := CreateStore(context.Background(), &StoreConfig{Type: "redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store type")
}
