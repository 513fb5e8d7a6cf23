// internal/app/features/departments/routes.go
package departments

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the department endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)           // this will be mounted under /departments
	r.Get("/options", h.ServeOptions) // catalog for filter dropdowns
	r.Get("/{id}", h.ServeDetail)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
