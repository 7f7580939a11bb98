package kv

import "context"

// ============================================================================
// Adapter Interface
// ============================================================================

// Adapter is the minimal contract a key-value backend must implement.
//
// This interface abstracts away the underlying storage mechanism (ZooKeeper,
// BadgerDB, S3, memory, etc.) and provides a consistent API for flat
// key-value operations. The Store facade layers key canonicalization and
// capability enforcement on top; adapters only ever see canonical paths
// (rooted, slash-delimited, no trailing slash — see BuildRootedPath).
//
// Separation of Concerns:
//
// An adapter manages only the mapping from canonical paths to byte payloads.
// It does NOT manage:
//   - Key normalization → handled by the Store facade
//   - Capability enforcement → handled by the Store facade
//   - Listing, batching, transactions → out of scope for this framework
//
// Absent Semantics:
// A path with no corresponding entry is a well-defined, non-error outcome.
// Get reports it through the found return value; Delete swallows it as
// success. Adapters must never surface "not found" as an error.
//
// Thread Safety:
// Implementations must be safe for concurrent use by multiple goroutines.
// Concurrent writes to the same path may result in last-write-wins behavior
// depending on the backend; no ordering is imposed by this layer.
type Adapter interface {
	// Metadata reports the adapter's identity and capability declaration.
	//
	// The result is fixed at construction time and cheap to call.
	Metadata() Metadata

	// Get returns the value stored at the given canonical path.
	//
	// Context Cancellation:
	// The method checks context before performing the lookup.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeouts
	//   - path: Canonical path to read
	//
	// Returns:
	//   - []byte: The stored value (nil when not found)
	//   - bool: True if the entry exists, false for the absent outcome
	//   - error: Only backend or context failures, NOT absence
	Get(ctx context.Context, path string) ([]byte, bool, error)

	// Set stores the value at the given canonical path, creating the entry
	// if it does not exist and replacing it if it does.
	//
	// Hierarchical backends must materialize any missing ancestors so the
	// write succeeds for arbitrary paths.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeouts
	//   - path: Canonical path to write
	//   - value: Payload to store (copied or uploaded; caller keeps ownership)
	//
	// Returns:
	//   - error: Returns error if the write fails or context is cancelled
	Set(ctx context.Context, path string, value []byte) error

	// Delete removes the entry at the given canonical path.
	//
	// The operation is idempotent: deleting an absent entry returns nil.
	// On hierarchical backends only the leaf is removed; ancestors created
	// on its behalf remain.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeouts
	//   - path: Canonical path to delete
	//
	// Returns:
	//   - error: Only backend or context failures, NOT absence
	Delete(ctx context.Context, path string) error
}

// ============================================================================
// Capability Declaration
// ============================================================================

// Capability declares which operations an adapter supports.
//
// The Store facade consults these flags before dispatching and rejects
// unsupported operations with ErrNotSupported, so adapters never have to
// guard against calls they did not declare.
type Capability struct {
	// Read indicates support for Get.
	Read bool

	// Write indicates support for Set.
	Write bool

	// Delete indicates support for Delete.
	Delete bool

	// List indicates support for key enumeration.
	// No adapter in this repository declares it; the flag exists so the
	// capability surface reported to callers is complete.
	List bool

	// Stat indicates support for per-entry metadata lookups.
	// Not declared by any adapter in this repository.
	Stat bool
}

// Metadata identifies an adapter to the surrounding framework.
type Metadata struct {
	// Scheme is the machine-readable backend identifier (e.g. "zookeeper").
	Scheme string

	// Name is the human-readable backend name (e.g. "ZooKeeper").
	Name string

	// Capability declares the supported operations.
	Capability Capability
}
