package config

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/marmos91/dittokv/internal/logger"
	"github.com/marmos91/dittokv/pkg/kv"
	kvbadger "github.com/marmos91/dittokv/pkg/kv/badger"
	kvmemory "github.com/marmos91/dittokv/pkg/kv/memory"
	kvs3 "github.com/marmos91/dittokv/pkg/kv/s3"
	kvzookeeper "github.com/marmos91/dittokv/pkg/kv/zookeeper"
)

// CreateStore creates a key-value store based on configuration.
//
// This factory function uses the Type field to determine which backend to
// create, then decodes the type-specific configuration from the
// corresponding map and passes it to the backend's constructor. The adapter
// is returned wrapped in the kv.Store facade.
//
// Supported types:
//   - "memory": Uses pkg/kv/memory (in-memory storage, ephemeral)
//   - "zookeeper": Uses pkg/kv/zookeeper (ZooKeeper ensemble)
//   - "badger": Uses pkg/kv/badger (BadgerDB storage, persistent)
//   - "s3": Uses pkg/kv/s3 (Amazon S3 or compatible storage)
//
// Parameters:
//   - ctx: Context for initialization operations
//   - cfg: Store configuration
//
// Returns:
//   - *kv.Store: Initialized store facade
//   - error: Configuration or initialization error
func CreateStore(ctx context.Context, cfg *StoreConfig) (*kv.Store, error) {
	var (
		adapter kv.Adapter
		err     error
	)

	switch cfg.Type {
	case "memory":
		adapter, err = createMemoryAdapter(ctx)
	case "zookeeper":
		adapter, err = createZooKeeperAdapter(ctx, cfg.ZooKeeper)
	case "badger":
		adapter, err = createBadgerAdapter(ctx, cfg.Badger)
	case "s3":
		adapter, err = createS3Adapter(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown store type: %q (supported: memory, zookeeper, badger, s3)", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	meta := adapter.Metadata()
	logger.Info("%s store initialized", meta.Name)

	return kv.NewStore(adapter), nil
}

// createMemoryAdapter creates an in-memory adapter.
func createMemoryAdapter(ctx context.Context) (kv.Adapter, error) {
	adapter, err := kvmemory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory store: %w", err)
	}
	return adapter, nil
}

// createZooKeeperAdapter creates a ZooKeeper-backed adapter.
func createZooKeeperAdapter(ctx context.Context, options map[string]any) (kv.Adapter, error) {
	// session_timeout arrives as a string ("10s") and needs the duration hook
	var storeCfg kvzookeeper.Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     &storeCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(options); err != nil {
		return nil, fmt.Errorf("failed to decode zookeeper store config: %w", err)
	}

	adapter, err := kvzookeeper.New(ctx, storeCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create zookeeper store: %w", err)
	}

	return adapter, nil
}

// createBadgerAdapter creates a BadgerDB-backed adapter.
func createBadgerAdapter(ctx context.Context, options map[string]any) (kv.Adapter, error) {
	var storeCfg kvbadger.Config
	if err := mapstructure.Decode(options, &storeCfg); err != nil {
		return nil, fmt.Errorf("failed to decode badger store config: %w", err)
	}

	// Validate required fields
	if storeCfg.Path == "" && !storeCfg.InMemory {
		return nil, fmt.Errorf("badger store: path is required")
	}

	adapter, err := kvbadger.New(ctx, storeCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create badger store: %w", err)
	}

	return adapter, nil
}

// createS3Adapter creates an S3-backed adapter.
func createS3Adapter(ctx context.Context, options map[string]any) (kv.Adapter, error) {
	var storeCfg kvs3.Config
	if err := mapstructure.Decode(options, &storeCfg); err != nil {
		return nil, fmt.Errorf("failed to decode S3 store config: %w", err)
	}

	// Validate required fields
	if storeCfg.Bucket == "" {
		return nil, fmt.Errorf("S3 store: bucket is required")
	}

	adapter, err := kvs3.New(ctx, storeCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 store: %w", err)
	}

	logger.Info("S3 store configured: bucket=%s, region=%s, prefix=%s",
		storeCfg.Bucket, storeCfg.Region, storeCfg.KeyPrefix)

	return adapter, nil
}
