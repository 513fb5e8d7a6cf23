// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
)

// Routes wires the role dashboards; this will be mounted under /dashboard.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/admin", h.ServeAdmin)
	r.Get("/staff/{staffID}", h.ServeStaff)
	r.Get("/student/{studentID}", h.ServeStudent)

	return r
}
