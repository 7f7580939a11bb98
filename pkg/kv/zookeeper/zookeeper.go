// Package zookeeper implements the kv.Adapter interface on top of Apache
// ZooKeeper.
//
// ZooKeeper's namespace is strictly hierarchical: every entry is a node
// addressed by an absolute path, and a node cannot be created unless all of
// its ancestors already exist. This adapter bridges that model to the flat
// key-value contract: canonical paths map directly to znodes, and writes
// that fail because an ancestor is missing fall back to a recursive
// materialization of the whole chain (see create.go).
package zookeeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/marmos91/dittokv/internal/logger"
	"github.com/marmos91/dittokv/pkg/kv"
)

const (
	// DefaultEndpoint is the ZooKeeper address used when none is configured.
	DefaultEndpoint = "127.0.0.1:2181"

	// authScheme is the ZooKeeper authentication scheme submitted for
	// configured credentials. SASL is not supported.
	authScheme = "digest"

	// defaultSessionTimeout bounds ZooKeeper session negotiation; round
	// trips themselves carry no extra timeout layer (the client library
	// owns time limits).
	defaultSessionTimeout = 10 * time.Second

	// flagPersistent creates regular persistent znodes (no ephemeral or
	// sequence semantics).
	flagPersistent = int32(0)
)

// Config contains the construction-time settings for the ZooKeeper adapter.
//
// All fields are fixed at construction and immutable afterwards: changing
// the endpoint or credentials of a live adapter is not supported.
type Config struct {
	// Endpoint is the network address of the ZooKeeper service. A
	// comma-separated list addresses an ensemble. Defaults to
	// DefaultEndpoint when empty.
	Endpoint string `mapstructure:"endpoint"`

	// Username and Password enable digest authentication when both are
	// set, which also switches every node this adapter creates to a
	// creator-owns-all ACL. When either is missing the adapter uses the
	// permissive world ACL and performs no authentication.
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// SessionTimeout is passed to the ZooKeeper client for session
	// negotiation. Defaults to 10s when zero.
	SessionTimeout time.Duration `mapstructure:"session_timeout"`
}

// Adapter implements kv.Adapter against a ZooKeeper ensemble.
//
// The connection handle is established lazily on first use, authenticated
// when credentials were configured, and cached set-once for the lifetime of
// the adapter (see connection.go). A broken session is not re-established.
//
// Thread Safety:
// Safe for concurrent use. Operations share the cached handle read-only;
// only establishment takes the write lock.
type Adapter struct {
	endpoint string
	timeout  time.Duration

	// auth is the serialized digest token ("user:password"); empty when no
	// credentials were configured.
	auth []byte

	// acl is applied identically to every node this adapter creates. It is
	// never read back or mutated.
	acl []zk.ACL

	dial dialFunc

	handle connHandle
}

// New creates a ZooKeeper adapter from the given configuration.
//
// No connection is opened here: the session is established lazily by the
// first operation, so constructing an adapter against an unreachable
// ensemble succeeds and the failure surfaces on first use.
//
// Parameters:
//   - ctx: Context for cancellation (checked before initialization)
//   - cfg: Adapter configuration
//
// Returns:
//   - *Adapter: Initialized adapter
//   - error: Only returns error if context is cancelled
func New(ctx context.Context, cfg Config) (*Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	timeout := cfg.SessionTimeout
	if timeout == 0 {
		timeout = defaultSessionTimeout
	}

	var auth []byte
	var acl []zk.ACL
	if cfg.Username != "" && cfg.Password != "" {
		auth = []byte(cfg.Username + ":" + cfg.Password)
		acl = zk.AuthACL(zk.PermAll)
	} else {
		logger.Warn("zookeeper: username and password not set, using world-readable ACL")
		acl = zk.WorldACL(zk.PermAll)
	}

	return &Adapter{
		endpoint: endpoint,
		timeout:  timeout,
		auth:     auth,
		acl:      acl,
		dial:     dialZooKeeper,
	}, nil
}

// Metadata reports the adapter identity and capability declaration.
//
// Listing, stat and batch operations are not declared: ZooKeeper could
// enumerate children, but the flat facade exposes no listing contract.
func (a *Adapter) Metadata() kv.Metadata {
	return kv.Metadata{
		Scheme: "zookeeper",
		Name:   "ZooKeeper",
		Capability: kv.Capability{
			Read:   true,
			Write:  true,
			Delete: true,
		},
	}
}

// Get reads the node data at path.
//
// A missing node is the well-defined absent outcome, not an error; every
// other client failure is wrapped with its cause attached.
func (a *Adapter) Get(ctx context.Context, path string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	c, err := a.getConnection()
	if err != nil {
		return nil, false, err
	}

	data, _, err := c.Get(path)
	if err != nil {
		if errors.Is(err, zk.ErrNoNode) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("zookeeper: get %q: %w", path, err)
	}

	return data, true, nil
}

// Set writes value at path.
//
// The direct update is optimistic: when all ancestors already exist this is
// a single round trip. A "no node" failure hands over to the ancestor
// creator, which materializes the whole chain and the leaf with this value.
func (a *Adapter) Set(ctx context.Context, path string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c, err := a.getConnection()
	if err != nil {
		return err
	}

	if _, err := c.Set(path, value, anyVersion); err != nil {
		if errors.Is(err, zk.ErrNoNode) {
			return a.createNestedNode(path, value)
		}
		return fmt.Errorf("zookeeper: set %q: %w", path, err)
	}

	return nil
}

// Delete removes the node at path.
//
// Only the leaf is removed; ancestors materialized on its behalf remain.
// Deleting an absent node succeeds (idempotent delete).
func (a *Adapter) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c, err := a.getConnection()
	if err != nil {
		return err
	}

	if err := c.Delete(path, anyVersion); err != nil {
		if errors.Is(err, zk.ErrNoNode) {
			return nil
		}
		return fmt.Errorf("zookeeper: delete %q: %w", path, err)
	}

	return nil
}

// anyVersion disables ZooKeeper's optimistic version check on set/delete.
const anyVersion = int32(-1)
