package zookeeper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-zookeeper/zk"
)

// ============================================================================
// Ancestor Materialization
// ============================================================================

// createNestedNode creates the node at path together with every missing
// ancestor, in root-to-leaf order. It is invoked only after a direct update
// of path failed with "no node", i.e. at least the leaf is known missing.
//
// The algorithm runs in two phases over separator indices of the canonical
// path (no substring allocation, which keeps the root boundary arithmetic
// explicit):
//
// Phase 1 probes downward-to-upward for the deepest creatable prefix: it
// attempts to create path[:cut] starting with the full path, and on each
// "no node" failure (missing parent) retreats cut to the previous separator
// and tries the shorter prefix. The common case — all ancestors already
// present — succeeds on the first attempt in a single round trip. Reaching
// the root means creating "/" itself, which the server refuses since the
// root pre-exists; per the retreat contract that is a hard error, and it
// cannot occur for canonical paths because the retreat stops at the first
// existing ancestor.
//
// Phase 2 walks back down from the created boundary, creating one node per
// remaining separator segment until the full path exists. A concurrent
// caller racing over the same ancestors may create a segment first; the
// resulting "node exists" outcome is treated as success, since the node the
// walk needs is now present either way.
//
// Every node created here receives the same value as the final leaf rather
// than an empty placeholder. Callers must treat intermediate values as
// undefined: a later write through the same ancestors overwrites nothing,
// but a fresh materialization of a deeper path will stamp its own payload
// on any ancestors it creates.
//
// Any other failure in either phase aborts immediately with the client's
// error attached as cause.
func (a *Adapter) createNestedNode(path string, value []byte) error {
	c, err := a.getConnection()
	if err != nil {
		return err
	}

	// Phase 1: retreat to the deepest prefix whose parent exists.
	cut := len(path)
	for {
		sub := path[:cut]
		if sub == "" {
			sub = "/"
		}

		_, err := c.Create(sub, value, flagPersistent, a.acl)
		if err == nil {
			break
		}
		if !errors.Is(err, zk.ErrNoNode) {
			return fmt.Errorf("zookeeper: create %q: %w", sub, err)
		}

		idx := strings.LastIndexByte(path[:cut], '/')
		if idx < 0 {
			// Retreated past the root; nothing shorter can be probed.
			return fmt.Errorf("zookeeper: create %q: %w", sub, err)
		}
		cut = idx
	}

	// Phase 2: fill every gap between the created boundary and the leaf.
	for cut < len(path) {
		if i := strings.IndexByte(path[cut+1:], '/'); i >= 0 {
			cut += 1 + i
		} else {
			cut = len(path)
		}

		if _, err := c.Create(path[:cut], value, flagPersistent, a.acl); err != nil {
			if errors.Is(err, zk.ErrNodeExists) {
				// A concurrent creator materialized this segment first.
				continue
			}
			return fmt.Errorf("zookeeper: create %q: %w", path[:cut], err)
		}
	}

	return nil
}
