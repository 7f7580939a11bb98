package gateway

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/marmos91/dittokv/internal/logger"
	"github.com/marmos91/dittokv/pkg/kv"
)

// Handler holds gateway route handlers.
type Handler struct {
	store *kv.Store
}

// NewHandler creates a new Handler.
func NewHandler(store *kv.Store) *Handler {
	return &Handler{store: store}
}

// keyFromRequest extracts the key from the URL (everything after /v1/keys/).
func keyFromRequest(r *http.Request) string {
	return strings.TrimPrefix(chi.URLParam(r, "*"), "/")
}

// GetKey handles GET /v1/keys/*.
//
// The stored value is returned verbatim as the response body. A missing key
// yields 404 with a JSON error envelope.
func (h *Handler) GetKey(w http.ResponseWriter, r *http.Request) {
	key := keyFromRequest(r)
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("key is required"))
		return
	}

	value, err := h.store.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("key not found"))
			return
		}
		logger.Error("gateway: get %q failed: %v", key, err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(value); err != nil {
		logger.Error("gateway: write response for %q failed: %v", key, err)
	}
}

// PutKey handles PUT /v1/keys/*.
//
// The request body is stored verbatim as the value; an empty body stores an
// empty value. Returns 204 on success.
func (h *Handler) PutKey(w http.ResponseWriter, r *http.Request) {
	key := keyFromRequest(r)
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("key is required"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxValueSize)
	value, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("value too large"))
		return
	}

	if err := h.store.Set(r.Context(), key, value); err != nil {
		if errors.Is(err, kv.ErrInvalidKey) {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid key"))
			return
		}
		logger.Error("gateway: put %q failed: %v", key, err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteKey handles DELETE /v1/keys/*.
//
// Deleting a key that does not exist still returns 204: the store's delete
// is idempotent and the gateway preserves that.
func (h *Handler) DeleteKey(w http.ResponseWriter, r *http.Request) {
	key := keyFromRequest(r)
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("key is required"))
		return
	}

	if err := h.store.Delete(r.Context(), key); err != nil {
		if errors.Is(err, kv.ErrInvalidKey) {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid key"))
			return
		}
		logger.Error("gateway: delete %q failed: %v", key, err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"store":  h.store.Metadata().Scheme,
	})
}
