// internal/app/features/clientconfig/routes.go
package clientconfig

import (
	"github.com/go-chi/chi/v5"
)

// Routes wires the boot-config endpoint; this will be mounted under
// /client-config.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeConfig)

	return r
}
