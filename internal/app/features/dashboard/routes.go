package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/fcunirea/clubsite/internal/app/system/auth"
)

// Routes returns the admin dashboard router, mounted at /api/admin.
func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Use(sessionMgr.RequireAuth)
	r.Use(sessionMgr.RequireAdmin)
	r.Get("/stats", h.Stats)

	return r
}
