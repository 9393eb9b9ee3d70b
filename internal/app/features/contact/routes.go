package contact

import (
	"github.com/go-chi/chi/v5"

	"github.com/fcunirea/clubsite/internal/app/system/auth"
)

// Routes returns the contact router. Submission is public; the inbox and its
// mutations are admin only.
func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Submit)

	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.RequireAuth)
		r.Use(sessionMgr.RequireAdmin)
		r.Get("/", h.List)
		r.Put("/{id}/status", h.UpdateStatus)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
