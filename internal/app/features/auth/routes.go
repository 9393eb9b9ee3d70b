package auth

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/fcunirea/clubsite/internal/app/system/auth"
)

// Routes returns the auth router, mounted at /api/auth.
func Routes(h *Handler, sessionMgr *sysauth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.With(sessionMgr.RequireAuth).Get("/profile", h.Profile)

	return r
}
