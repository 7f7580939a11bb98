package zookeeper

import (
	"strings"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"
)

// fakeServer is an in-process stand-in for a ZooKeeper ensemble. It enforces
// the property this adapter exists to work around: a node cannot be created
// unless its parent already exists.
//
// Every session handed out by dial shares the same namespace, and the server
// counts dials, auth submissions and per-operation calls so tests can assert
// on round-trip behavior (connection reuse, probe counts).
type fakeServer struct {
	mu    sync.Mutex
	nodes map[string][]byte

	dials   int
	closes  int
	dialErr error

	auths   []string
	authErr error

	// creates records every attempted create path, successful or not.
	creates []string
	sets    int
	gets    int
	deletes int

	// afterCreate, if set, runs after a successful create while still
	// holding the lock. Tests use it to interleave a concurrent creator.
	afterCreate func(nodes map[string][]byte, path string)
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		// The root pre-exists, as on a real ensemble.
		nodes: map[string][]byte{"/": nil},
	}
}

func (s *fakeServer) dial(endpoint string, timeout time.Duration) (conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dialErr != nil {
		return nil, s.dialErr
	}
	s.dials++
	return &fakeConn{srv: s}, nil
}

// exists reports whether a node is present (test helper).
func (s *fakeServer) exists(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.nodes[path]
	return ok
}

// seed inserts nodes directly, bypassing the parent check (test setup only).
func (s *fakeServer) seed(path string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[path] = value
}

type fakeConn struct {
	srv *fakeServer
}

func (c *fakeConn) AddAuth(scheme string, auth []byte) error {
	s := c.srv
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authErr != nil {
		return s.authErr
	}
	s.auths = append(s.auths, scheme+":"+string(auth))
	return nil
}

func (c *fakeConn) Create(path string, data []byte, flags int32, acl []zk.ACL) (string, error) {
	s := c.srv
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creates = append(s.creates, path)

	if _, ok := s.nodes[path]; ok {
		return "", zk.ErrNodeExists
	}

	parent := path[:strings.LastIndexByte(path, '/')]
	if parent == "" {
		parent = "/"
	}
	if _, ok := s.nodes[parent]; !ok {
		return "", zk.ErrNoNode
	}

	s.nodes[path] = append([]byte(nil), data...)
	if s.afterCreate != nil {
		s.afterCreate(s.nodes, path)
	}
	return path, nil
}

func (c *fakeConn) Get(path string) ([]byte, *zk.Stat, error) {
	s := c.srv
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gets++

	data, ok := s.nodes[path]
	if !ok {
		return nil, nil, zk.ErrNoNode
	}
	return append([]byte(nil), data...), &zk.Stat{}, nil
}

func (c *fakeConn) Set(path string, data []byte, version int32) (*zk.Stat, error) {
	s := c.srv
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sets++

	if _, ok := s.nodes[path]; !ok {
		return nil, zk.ErrNoNode
	}
	s.nodes[path] = append([]byte(nil), data...)
	return &zk.Stat{}, nil
}

func (c *fakeConn) Delete(path string, version int32) error {
	s := c.srv
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deletes++

	if _, ok := s.nodes[path]; !ok {
		return zk.ErrNoNode
	}
	delete(s.nodes, path)
	return nil
}

func (c *fakeConn) Close() {
	s := c.srv
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closes++
}
