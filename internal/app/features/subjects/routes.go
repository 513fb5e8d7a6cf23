// internal/app/features/subjects/routes.go
package subjects

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the subject endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)           // this will be mounted under /subjects
	r.Get("/options", h.ServeOptions) // catalog, narrowed by departmentId or staffId
	r.Get("/{id}", h.ServeDetail)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
