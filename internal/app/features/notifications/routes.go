// internal/app/features/notifications/routes.go
package notifications

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the notification endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/panel", h.ServePanel) // this will be mounted under /notifications
	r.Post("/{id}/read", h.HandleMarkRead)
	r.Post("/read-all", h.HandleMarkAllRead)
	return r
}
