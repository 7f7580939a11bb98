package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunBasicTests executes all read-path contract tests.
func (suite *AdapterTestSuite) RunBasicTests(t *testing.T) {
	t.Run("Metadata_DeclaresCoreCapabilities", suite.testMetadataCapabilities)
	t.Run("Get_Absent", suite.testGetAbsent)
	t.Run("Get_RoundTrip", suite.testGetRoundTrip)
	t.Run("Get_EmptyValue", suite.testGetEmptyValue)
	t.Run("Get_BinaryValue", suite.testGetBinaryValue)
	t.Run("Get_LargeValue", suite.testGetLargeValue)
}

func (suite *AdapterTestSuite) testMetadataCapabilities(t *testing.T) {
	adapter := suite.NewAdapter()

	meta := adapter.Metadata()
	assert.NotEmpty(t, meta.Scheme)
	assert.NotEmpty(t, meta.Name)
	assert.True(t, meta.Capability.Read, "suite requires read support")
	assert.True(t, meta.Capability.Write, "suite requires write support")
	assert.True(t, meta.Capability.Delete, "suite requires delete support")
}

func (suite *AdapterTestSuite) testGetAbsent(t *testing.T) {
	adapter := suite.NewAdapter()

	assertAbsent(t, adapter, "/never/written")
}

func (suite *AdapterTestSuite) testGetRoundTrip(t *testing.T) {
	adapter := suite.NewAdapter()

	value := []byte("Hello, World!")
	mustSet(t, adapter, "/roundtrip", value)

	got := mustGet(t, adapter, "/roundtrip")
	assert.Equal(t, value, got)
}

func (suite *AdapterTestSuite) testGetEmptyValue(t *testing.T) {
	adapter := suite.NewAdapter()

	mustSet(t, adapter, "/empty", []byte{})

	got, found, err := adapter.Get(testContext(), "/empty")
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, got)
}

func (suite *AdapterTestSuite) testGetBinaryValue(t *testing.T) {
	adapter := suite.NewAdapter()

	value := []byte{0x00, 0xFF, 0x7F, 0x80, 0x0A, 0x0D}
	mustSet(t, adapter, "/binary", value)

	got := mustGet(t, adapter, "/binary")
	assert.Equal(t, value, got)
}

func (suite *AdapterTestSuite) testGetLargeValue(t *testing.T) {
	adapter := suite.NewAdapter()

	// 256KB keeps the suite fast while exceeding typical inline buffers.
	value := generateValue(256 * 1024)
	mustSet(t, adapter, "/large", value)

	got := mustGet(t, adapter, "/large")
	assert.Equal(t, value, got)
}
