package kv

import (
	"context"
	"fmt"
	"io"
)

// ============================================================================
// Store Facade
// ============================================================================

// Store is the caller-facing facade over an Adapter.
//
// It canonicalizes keys, enforces the adapter's capability declaration and
// narrows the adapter's absent outcome into ErrKeyNotFound for callers that
// want error semantics. The Store adds no caching, batching or retry logic;
// it is a thin translation layer.
//
// Thread Safety:
// A Store is safe for concurrent use whenever its Adapter is, which every
// adapter in this repository guarantees.
type Store struct {
	adapter Adapter
	meta    Metadata
}

// NewStore wraps an adapter in a Store facade.
//
// The adapter's metadata is captured once here; adapters report a fixed
// capability set, so there is no need to re-query it per operation.
func NewStore(adapter Adapter) *Store {
	return &Store{
		adapter: adapter,
		meta:    adapter.Metadata(),
	}
}

// Metadata reports the underlying adapter's identity and capabilities.
func (s *Store) Metadata() Metadata {
	return s.meta
}

// Get returns the value stored under key.
//
// The key is canonicalized before dispatch. An absent key yields
// ErrKeyNotFound (wrapped with the key for diagnostics).
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - key: Caller-supplied key, canonicalized via BuildRootedPath
//
// Returns:
//   - []byte: The stored value
//   - error: ErrKeyNotFound if absent, ErrNotSupported if the adapter does
//     not declare read support, or a wrapped backend failure
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if !s.meta.Capability.Read {
		return nil, fmt.Errorf("%s: get: %w", s.meta.Scheme, ErrNotSupported)
	}

	value, found, err := s.adapter.Get(ctx, BuildRootedPath(key))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("key %q: %w", key, ErrKeyNotFound)
	}

	return value, nil
}

// Has reports whether key exists, without surfacing absence as an error.
func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	if !s.meta.Capability.Read {
		return false, fmt.Errorf("%s: has: %w", s.meta.Scheme, ErrNotSupported)
	}

	_, found, err := s.adapter.Get(ctx, BuildRootedPath(key))
	if err != nil {
		return false, err
	}

	return found, nil
}

// Set stores value under key, creating or replacing the entry.
//
// Keys that canonicalize to the root path are rejected with ErrInvalidKey:
// the root of a hierarchical backend is assumed to pre-exist and is never
// written by this facade.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if !s.meta.Capability.Write {
		return fmt.Errorf("%s: set: %w", s.meta.Scheme, ErrNotSupported)
	}

	path := BuildRootedPath(key)
	if path == "/" {
		return fmt.Errorf("key %q: %w", key, ErrInvalidKey)
	}

	return s.adapter.Set(ctx, path, value)
}

// Delete removes the entry under key.
//
// Deleting an absent key succeeds (idempotent delete). Keys canonicalizing
// to the root are rejected with ErrInvalidKey.
func (s *Store) Delete(ctx context.Context, key string) error {
	if !s.meta.Capability.Delete {
		return fmt.Errorf("%s: delete: %w", s.meta.Scheme, ErrNotSupported)
	}

	path := BuildRootedPath(key)
	if path == "/" {
		return fmt.Errorf("key %q: %w", key, ErrInvalidKey)
	}

	return s.adapter.Delete(ctx, path)
}

// Close releases the underlying adapter's resources, if it holds any.
// Adapters without a Close method (memory, s3) make this a no-op.
func (s *Store) Close() error {
	if closer, ok := s.adapter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
