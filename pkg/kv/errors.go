package kv

import "errors"

// ============================================================================
// Standard Key-Value Errors
// ============================================================================

// These errors provide a consistent way to indicate common failure conditions
// across all adapters and the Store facade. Callers should check for them
// with errors.Is and map them to surface-specific error codes.
//
// Error Wrapping:
// Adapters wrap backend failures with additional context so the original
// cause stays recoverable:
//
//	return fmt.Errorf("zookeeper: get %q: %w", path, err)

var (
	// ErrKeyNotFound indicates the requested key does not exist.
	//
	// Only the Store facade returns this error, and only from Get: at the
	// Adapter boundary absence is a non-error outcome reported through the
	// found flag. Delete never returns it (idempotent deletes).
	//
	// Surface Mapping:
	//   - HTTP gateway: 404 Not Found
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotSupported indicates the operation is outside the adapter's
	// declared capability set.
	//
	// This is a permanent error - retrying won't help.
	//
	// Surface Mapping:
	//   - HTTP gateway: 405 Method Not Allowed
	ErrNotSupported = errors.New("operation not supported")

	// ErrInvalidKey indicates the caller-supplied key canonicalizes to the
	// root path, which is not writable or deletable through the facade.
	ErrInvalidKey = errors.New("invalid key")
)
