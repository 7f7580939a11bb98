package testing

import (
	"context"
	"testing"

	"github.com/marmos91/dittokv/pkg/kv"
)

// AdapterTestSuite is a reusable contract test suite for kv.Adapter
// implementations. It tests the interface contract, not implementation
// details, making it reusable across backends (memory, badger, s3,
// zookeeper, etc.).
//
// Usage:
//
//	func TestMyAdapter(t *testing.T) {
//	    suite := &testing.AdapterTestSuite{
//	        NewAdapter: func() kv.Adapter {
//	            return myadapter.New()
//	        },
//	    }
//	    suite.Run(t)
//	}
type AdapterTestSuite struct {
	// NewAdapter is a factory function that creates a fresh adapter for
	// each test. This ensures test isolation; register any teardown with
	// t.Cleanup inside the closure.
	NewAdapter func() kv.Adapter
}

// Run executes all tests in the suite.
func (suite *AdapterTestSuite) Run(t *testing.T) {
	t.Run("BasicOperations", suite.RunBasicTests)
	t.Run("WriteOperations", suite.RunWriteTests)
	t.Run("Facade", suite.RunFacadeTests)
}

// testContext returns a standard test context.
func testContext() context.Context {
	return context.Background()
}
