// internal/app/features/announcements/routes.go
package announcements

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the announcement endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)         // this will be mounted under /announcements
	r.Get("/active", h.ServeActive) // visibility-window filtered, for dashboards
	r.Get("/{id}", h.ServeDetail)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
