// internal/app/features/feedback/routes.go
package feedback

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the feedback moderation endpoints.
// There is deliberately no POST or PUT here.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList) // this will be mounted under /feedback
	r.Get("/{id}", h.ServeDetail)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
