// Package badger implements kv.Adapter on top of BadgerDB, providing a
// persistent local backend with the same flat-key contract as the remote
// adapters.
package badger

import (
	"context"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/marmos91/dittokv/pkg/kv"
)

// Config holds BadgerDB adapter settings.
type Config struct {
	// Path is the directory for the value log and LSM tree. Ignored when
	// InMemory is set.
	Path string `mapstructure:"path"`

	// InMemory keeps the whole database in RAM. Useful for tests and
	// ephemeral deployments.
	InMemory bool `mapstructure:"in_memory"`

	// SyncWrites forces an fsync after every write transaction. Slower but
	// survives power loss.
	SyncWrites bool `mapstructure:"sync_writes"`
}

// Adapter implements kv.Adapter using BadgerDB.
//
// Paths map directly to Badger keys; there is no hierarchy to maintain, so
// writes to deep paths need no ancestor handling.
//
// Thread Safety:
// Badger transactions provide isolation; the adapter itself holds no
// mutable state beyond the database handle.
type Adapter struct {
	db *badger.DB
}

// New opens (or creates) a BadgerDB database and returns an adapter over it.
//
// Parameters:
//   - ctx: Context for cancellation (checked before opening)
//   - cfg: Database location and durability settings
//
// Returns:
//   - *Adapter: Initialized adapter
//   - error: If the database cannot be opened
func New(ctx context.Context, cfg Config) (*Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database at %q: %w", cfg.Path, err)
	}

	return &Adapter{db: db}, nil
}

// Metadata reports the adapter identity and capability declaration.
func (a *Adapter) Metadata() kv.Metadata {
	return kv.Metadata{
		Scheme: "badger",
		Name:   "BadgerDB",
		Capability: kv.Capability{
			Read:   true,
			Write:  true,
			Delete: true,
		},
	}
}

// Get returns the value stored at path.
func (a *Adapter) Get(ctx context.Context, path string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var value []byte
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(path))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("badger get %q: %w", path, err)
	}

	return value, true, nil
}

// Set stores value at path, creating or replacing the entry.
func (a *Adapter) Set(ctx context.Context, path string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(path), value)
	})
	if err != nil {
		return fmt.Errorf("badger set %q: %w", path, err)
	}

	return nil
}

// Delete removes the entry at path. Deleting an absent entry succeeds:
// Badger treats it as a no-op tombstone.
func (a *Adapter) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := a.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(path))
	})
	if err != nil {
		return fmt.Errorf("badger delete %q: %w", path, err)
	}

	return nil
}

// Close flushes and closes the underlying database.
func (a *Adapter) Close() error {
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close badger database: %w", err)
	}
	return nil
}
