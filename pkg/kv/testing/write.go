package testing

import (
	"errors"
	"testing"

	"github.com/marmos91/dittokv/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunWriteTests executes all write-path contract tests.
func (suite *AdapterTestSuite) RunWriteTests(t *testing.T) {
	t.Run("Set_Overwrite", suite.testSetOverwrite)
	t.Run("Set_DeepPath", suite.testSetDeepPath)
	t.Run("Set_SiblingKeys", suite.testSetSiblingKeys)
	t.Run("Delete_Idempotent", suite.testDeleteIdempotent)
	t.Run("Delete_ThenAbsent", suite.testDeleteThenAbsent)
}

func (suite *AdapterTestSuite) testSetOverwrite(t *testing.T) {
	adapter := suite.NewAdapter()

	mustSet(t, adapter, "/overwrite", []byte("first"))
	mustSet(t, adapter, "/overwrite", []byte("second"))

	got := mustGet(t, adapter, "/overwrite")
	assert.Equal(t, []byte("second"), got)
}

func (suite *AdapterTestSuite) testSetDeepPath(t *testing.T) {
	adapter := suite.NewAdapter()

	// No ancestor of this path exists; hierarchical adapters must
	// materialize the whole chain.
	value := []byte("deep")
	mustSet(t, adapter, "/a/b/c/d", value)

	got := mustGet(t, adapter, "/a/b/c/d")
	assert.Equal(t, value, got)
}

func (suite *AdapterTestSuite) testSetSiblingKeys(t *testing.T) {
	adapter := suite.NewAdapter()

	mustSet(t, adapter, "/shared/one", []byte("1"))
	mustSet(t, adapter, "/shared/two", []byte("2"))

	assert.Equal(t, []byte("1"), mustGet(t, adapter, "/shared/one"))
	assert.Equal(t, []byte("2"), mustGet(t, adapter, "/shared/two"))
}

func (suite *AdapterTestSuite) testDeleteIdempotent(t *testing.T) {
	adapter := suite.NewAdapter()

	// Never written: both deletes must succeed.
	require.NoError(t, adapter.Delete(testContext(), "/missing"))
	require.NoError(t, adapter.Delete(testContext(), "/missing"))
}

func (suite *AdapterTestSuite) testDeleteThenAbsent(t *testing.T) {
	adapter := suite.NewAdapter()

	mustSet(t, adapter, "/doomed", []byte("bye"))
	require.NoError(t, adapter.Delete(testContext(), "/doomed"))

	assertAbsent(t, adapter, "/doomed")

	// Second delete after removal still succeeds.
	require.NoError(t, adapter.Delete(testContext(), "/doomed"))
}

// RunFacadeTests exercises the adapter through the kv.Store facade,
// covering key canonicalization and error narrowing.
func (suite *AdapterTestSuite) RunFacadeTests(t *testing.T) {
	t.Run("Get_NotFoundError", suite.testFacadeNotFound)
	t.Run("RelativeKey_RoundTrip", suite.testFacadeRelativeKey)
	t.Run("Has", suite.testFacadeHas)
}

func (suite *AdapterTestSuite) testFacadeNotFound(t *testing.T) {
	store := kv.NewStore(suite.NewAdapter())

	_, err := store.Get(testContext(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, kv.ErrKeyNotFound))
}

func (suite *AdapterTestSuite) testFacadeRelativeKey(t *testing.T) {
	store := kv.NewStore(suite.NewAdapter())

	// Relative and rooted spellings address the same entry.
	value := []byte{1, 2, 3}
	require.NoError(t, store.Set(testContext(), "foo/bar", value))

	got, err := store.Get(testContext(), "/foo/bar")
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func (suite *AdapterTestSuite) testFacadeHas(t *testing.T) {
	store := kv.NewStore(suite.NewAdapter())

	found, err := store.Has(testContext(), "present")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(testContext(), "present", []byte("x")))

	found, err = store.Has(testContext(), "present")
	require.NoError(t, err)
	assert.True(t, found)
}
