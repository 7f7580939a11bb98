package gateway

import (
	"github.com/go-chi/chi/v5"

	"github.com/marmos91/dittokv/pkg/kv"
)

// NewRouter creates a chi router with all gateway routes mounted.
func NewRouter(store *kv.Store) chi.Router {
	h := NewHandler(store)

	r := chi.NewRouter()

	r.Route("/v1", func(r chi.Router) {
		// Key-value CRUD. The wildcard captures slashes, so hierarchical
		// keys like foo/bar address one entry.
		r.Get("/keys/*", h.GetKey)
		r.Put("/keys/*", h.PutKey)
		r.Delete("/keys/*", h.DeleteKey)
	})

	// Liveness probe.
	r.Get("/healthz", h.Health)

	return r
}
