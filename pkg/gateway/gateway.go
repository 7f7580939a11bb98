// Package gateway exposes a kv.Store over HTTP.
//
// The surface is deliberately minimal: one resource (/v1/keys/*) with GET,
// PUT and DELETE mapping directly onto the store operations. Values travel
// as raw request/response bodies; errors are a small JSON envelope.
package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/marmos91/dittokv/internal/logger"
)

// maxValueSize bounds PUT bodies. ZooKeeper rejects node data above 1MB, so
// the gateway enforces the same ceiling for every backend.
const maxValueSize = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("gateway: json encode failed: %v", err)
	}
}

type errResponse struct {
	Error string `json:"error"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}
