// internal/app/features/staff/routes.go
package staff

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the staff endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)           // this will be mounted under /staff
	r.Get("/options", h.ServeOptions) // catalog, narrowed by departmentId
	r.Get("/{id}", h.ServeDetail)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
