package zookeeper

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"
)

// ============================================================================
// Connection Lifecycle
// ============================================================================

// conn is the slice of the ZooKeeper client surface this adapter consumes.
//
// *zk.Conn satisfies it directly; tests substitute a hierarchy-enforcing
// fake. Every variant of the client's error set is treated uniformly except
// zk.ErrNoNode (and zk.ErrNodeExists during materialization), which the
// adapter pattern-matches explicitly.
type conn interface {
	AddAuth(scheme string, auth []byte) error
	Create(path string, data []byte, flags int32, acl []zk.ACL) (string, error)
	Get(path string) ([]byte, *zk.Stat, error)
	Set(path string, data []byte, version int32) (*zk.Stat, error)
	Delete(path string, version int32) error
	Close()
}

// dialFunc opens a new (not yet authenticated) session.
type dialFunc func(endpoint string, timeout time.Duration) (conn, error)

// dialZooKeeper is the production dialer.
//
// zk.Connect establishes the session in the background; the returned handle
// queues requests until it is ready, so no explicit wait is needed here.
func dialZooKeeper(endpoint string, timeout time.Duration) (conn, error) {
	c, _, err := zk.Connect(strings.Split(endpoint, ","), timeout)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// connHandle is a thread-safe set-once container for the shared session.
//
// Once a handle is stored it is never replaced: there is no
// reconnect-on-failure logic, and a dropped session is not re-established
// within the adapter's lifetime.
type connHandle struct {
	mu sync.RWMutex
	c  conn
}

// getConnection returns the shared session handle, establishing and
// authenticating it on first use.
//
// The cached path is a cheap read-locked load. On the establishment path,
// two racing operations may both dial; the first to store wins and the
// loser closes its redundant session and adopts the winner. Opening a
// session has no side effects beyond the session itself, so the redundant
// dial is benign.
//
// An authentication failure closes the fresh session and caches nothing, so
// a later operation attempts establishment again.
//
// Returns:
//   - conn: The shared authenticated handle
//   - error: Wrapped transport or authentication failure, never retried here
func (a *Adapter) getConnection() (conn, error) {
	a.handle.mu.RLock()
	c := a.handle.c
	a.handle.mu.RUnlock()
	if c != nil {
		return c, nil
	}

	c, err := a.dial(a.endpoint, a.timeout)
	if err != nil {
		return nil, fmt.Errorf("zookeeper: connect %q: %w", a.endpoint, err)
	}

	if len(a.auth) > 0 {
		if err := c.AddAuth(authScheme, a.auth); err != nil {
			c.Close()
			return nil, fmt.Errorf("zookeeper: auth %q: %w", a.endpoint, err)
		}
	}

	a.handle.mu.Lock()
	if a.handle.c != nil {
		winner := a.handle.c
		a.handle.mu.Unlock()
		c.Close()
		return winner, nil
	}
	a.handle.c = c
	a.handle.mu.Unlock()

	return c, nil
}

// Close tears down the cached session, if one was ever established. The
// adapter must not be used afterwards.
func (a *Adapter) Close() error {
	a.handle.mu.Lock()
	defer a.handle.mu.Unlock()

	if a.handle.c != nil {
		a.handle.c.Close()
		a.handle.c = nil
	}
	return nil
}
