package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittokv/pkg/kv"
	"github.com/marmos91/dittokv/pkg/kv/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	adapter, err := memory.New(context.Background())
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(kv.NewStore(adapter)))
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url string, body []byte) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestGateway_RoundTrip(t *testing.T) {
	srv := newTestServer(t)

	value := []byte{0x01, 0x02, 0xFF}
	resp := doRequest(t, http.MethodPut, srv.URL+"/v1/keys/foo/bar", value)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, srv.URL+"/v1/keys/foo/bar", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestGateway_GetMissingKey(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/v1/keys/absent", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "key not found", body["error"])
}

func TestGateway_DeleteIsIdempotent(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, http.MethodPut, srv.URL+"/v1/keys/doomed", []byte("x"))
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// First delete removes, second delete of the now-missing key still 204s.
	for i := 0; i < 2; i++ {
		resp = doRequest(t, http.MethodDelete, srv.URL+"/v1/keys/doomed", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	}

	resp = doRequest(t, http.MethodGet, srv.URL+"/v1/keys/doomed", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGateway_EmptyValue(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, http.MethodPut, srv.URL+"/v1/keys/empty", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, srv.URL+"/v1/keys/empty", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGateway_ValueTooLarge(t *testing.T) {
	srv := newTestServer(t)

	oversized := make([]byte, maxValueSize+1)
	resp := doRequest(t, http.MethodPut, srv.URL+"/v1/keys/big", oversized)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestGateway_Health(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["store"])
}
