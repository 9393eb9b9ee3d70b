package news

import (
	"github.com/go-chi/chi/v5"

	"github.com/fcunirea/clubsite/internal/app/system/auth"
)

// Routes returns the news resource router.
func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.RequireAuth)
		r.Use(sessionMgr.RequireAdmin)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
