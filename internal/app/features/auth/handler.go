// Package auth implements account registration, login, logout, and profile.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
	"github.com/fcunirea/clubsite/internal/app/store/users"
	sysauth "github.com/fcunirea/clubsite/internal/app/system/auth"
	"github.com/fcunirea/clubsite/internal/app/system/jsonutil"
)

// UserStore is the account persistence surface the handler needs.
type UserStore interface {
	Create(ctx context.Context, u users.User) (users.User, error)
	GetByEmail(ctx context.Context, email string) (users.User, error)
}

// Handler handles authentication HTTP requests.
type Handler struct {
	users      UserStore
	sessionMgr *sysauth.SessionManager
	logger     *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(userStore UserStore, sessionMgr *sysauth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{users: userStore, sessionMgr: sessionMgr, logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register. New accounts always get the user
// role; admins come from the seed configuration or manual promotion.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		jsonutil.Error(w, "Name, email and password are required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	hash, err := sysauth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}

	user, err := h.users.Create(r.Context(), users.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         users.RoleUser,
	})
	if errors.Is(err, crud.ErrDuplicate) {
		jsonutil.Error(w, "Email already registered", jsonutil.CodeDuplicate, http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login: verifies credentials and issues the
// session cookie. Unknown email and wrong password are indistinguishable.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if errors.Is(err, crud.ErrNotFound) || (err == nil && !sysauth.CheckPassword(user.PasswordHash, req.Password)) {
		jsonutil.Error(w, "Invalid email or password", jsonutil.CodeUnauthorized, http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger.Error("failed to look up user", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}

	if err := h.sessionMgr.IssueSession(r.Context(), w, user.ID); err != nil {
		h.logger.Error("failed to issue session", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessionMgr.ClearSession(r.Context(), w, r)
	jsonutil.Message(w, http.StatusOK, "Logged out successfully")
}

// Profile handles GET /api/auth/profile. The route is wrapped in RequireAuth.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := sysauth.UserFromContext(r.Context())
	if !ok {
		jsonutil.Error(w, "Authentication required", jsonutil.CodeUnauthorized, http.StatusUnauthorized)
		return
	}
	jsonutil.Respond(w, http.StatusOK, user)
}
