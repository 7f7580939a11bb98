package memory

import (
	"context"
	"testing"

	"github.com/marmos91/dittokv/pkg/kv"
	kvtesting "github.com/marmos91/dittokv/pkg/kv/testing"
)

// TestMemoryAdapter runs the complete adapter contract suite against the
// in-memory implementation.
func TestMemoryAdapter(t *testing.T) {
	suite := &kvtesting.AdapterTestSuite{
		NewAdapter: func() kv.Adapter {
			adapter, err := New(context.Background())
			if err != nil {
				t.Fatalf("Failed to create memory adapter: %v", err)
			}
			return adapter
		},
	}

	suite.Run(t)
}

// TestMemoryAdapter_ValueIsolation verifies callers cannot mutate stored
// data through the slices they pass in or get back.
func TestMemoryAdapter_ValueIsolation(t *testing.T) {
	adapter, err := New(context.Background())
	if err != nil {
		t.Fatalf("Failed to create memory adapter: %v", err)
	}
	ctx := context.Background()

	value := []byte{1, 2, 3}
	if err := adapter.Set(ctx, "/iso", value); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Mutating the caller's slice must not affect the stored entry.
	value[0] = 99

	got, found, err := adapter.Get(ctx, "/iso")
	if err != nil || !found {
		t.Fatalf("Get failed: found=%v err=%v", found, err)
	}
	if got[0] != 1 {
		t.Errorf("stored value aliased caller buffer: got %v", got)
	}

	// Mutating the returned slice must not affect a later read.
	got[1] = 99

	again, _, err := adapter.Get(ctx, "/iso")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if again[1] != 2 {
		t.Errorf("returned value aliased stored buffer: got %v", again)
	}
}
