package memory

import (
	"context"
	"sync"

	"github.com/marmos91/dittokv/pkg/kv"
)

// Adapter implements kv.Adapter using in-memory storage.
//
// This implementation stores all entries in a map. It's designed for:
//   - Testing and development
//   - The zero-configuration default backend
//   - Temporary/ephemeral storage
//
// Characteristics:
//   - Fast: All operations are memory-speed
//   - Volatile: Data lost on restart
//   - Flat: Paths are plain map keys; no ancestor bookkeeping is needed,
//     so deep paths work without any materialization step
//
// Thread Safety:
// All operations are protected by a sync.RWMutex. Multiple concurrent
// readers are allowed, but writes are exclusive. Values are copied on both
// read and write to prevent data races with caller-owned buffers.
type Adapter struct {
	// entries stores payloads keyed by canonical path
	entries map[string][]byte

	// mu protects concurrent access to the entries map
	mu sync.RWMutex
}

// New creates a new in-memory adapter.
//
// The adapter starts empty. All data is stored in memory and will be lost
// when the adapter is garbage collected or the process exits.
//
// Parameters:
//   - ctx: Context for cancellation (checked before initialization)
//
// Returns:
//   - *Adapter: Initialized adapter
//   - error: Only returns error if context is cancelled
func New(ctx context.Context) (*Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Adapter{
		entries: make(map[string][]byte),
	}, nil
}

// Metadata reports the adapter identity and capability declaration.
func (a *Adapter) Metadata() kv.Metadata {
	return kv.Metadata{
		Scheme: "memory",
		Name:   "Memory",
		Capability: kv.Capability{
			Read:   true,
			Write:  true,
			Delete: true,
		},
	}
}

// Get returns a copy of the value stored at path.
func (a *Adapter) Get(ctx context.Context, path string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	value, found := a.entries[path]
	if !found {
		return nil, false, nil
	}

	// Copy so later writes can't mutate the caller's view.
	out := make([]byte, len(value))
	copy(out, value)

	return out, true, nil
}

// Set stores a copy of value at path, creating or replacing the entry.
func (a *Adapter) Set(ctx context.Context, path string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries[path] = stored

	return nil
}

// Delete removes the entry at path. Deleting an absent entry succeeds.
func (a *Adapter) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.entries, path)

	return nil
}
