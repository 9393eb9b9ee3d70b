// Package auth provides the session-cookie identity layer: issuing and
// clearing sessions, loading the session user into the request context, and
// the RequireAuth/RequireAdmin gates that wrap mutating routes.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fcunirea/clubsite/internal/app/store/sessions"
	"github.com/fcunirea/clubsite/internal/app/store/users"
	"github.com/fcunirea/clubsite/internal/app/system/jsonutil"
)

type contextKey string

const userContextKey contextKey = "sessionUser"

// SessionStore is the subset of the sessions store the manager needs.
type SessionStore interface {
	Create(ctx context.Context, token string, userID primitive.ObjectID, maxAge time.Duration) error
	GetByToken(ctx context.Context, token string) (sessions.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

// UserFetcher resolves a session's user id to a fresh user record on every
// request, so role changes take effect immediately.
type UserFetcher interface {
	GetByID(ctx context.Context, id string) (users.User, error)
}

// SessionManager issues, loads, and destroys login sessions.
type SessionManager struct {
	sessions   SessionStore
	userSource UserFetcher
	cookieName string
	maxAge     time.Duration
	secure     bool
	logger     *zap.Logger
}

// NewSessionManager creates a session manager. Secure cookies should be
// enabled in production.
func NewSessionManager(sessions SessionStore, userSource UserFetcher, cookieName string, maxAge time.Duration, secure bool, logger *zap.Logger) *SessionManager {
	return &SessionManager{
		sessions:   sessions,
		userSource: userSource,
		cookieName: cookieName,
		maxAge:     maxAge,
		secure:     secure,
		logger:     logger,
	}
}

// IssueSession creates a session for the user and sets the HTTP-only cookie.
func (m *SessionManager) IssueSession(ctx context.Context, w http.ResponseWriter, userID primitive.ObjectID) error {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	token := hex.EncodeToString(buf)

	if err := m.sessions.Create(ctx, token, userID, m.maxAge); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearSession destroys the request's session server-side and expires the cookie.
func (m *SessionManager) ClearSession(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		if err := m.sessions.DeleteByToken(ctx, cookie.Value); err != nil {
			m.logger.Warn("failed to delete session", zap.Error(err))
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// LoadSessionUser loads the session user into the request context when a
// valid session cookie is present. Requests without a session pass through
// unchanged; the Require* middleware decides whether that matters.
func (m *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := m.sessions.GetByToken(r.Context(), cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.userSource.GetByID(r.Context(), sess.UserID.Hex())
		if err != nil {
			m.logger.Warn("session resolved to missing user",
				zap.String("userId", sess.UserID.Hex()),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the session user loaded by LoadSessionUser.
func UserFromContext(ctx context.Context) (users.User, bool) {
	u, ok := ctx.Value(userContextKey).(users.User)
	return u, ok
}

// RequireAuth rejects requests that carry no authenticated user with 401.
func (m *SessionManager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			jsonutil.Error(w, "Authentication required", jsonutil.CodeUnauthorized, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects authenticated non-admin users with 403. It must run
// after RequireAuth.
func (m *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			jsonutil.Error(w, "Authentication required", jsonutil.CodeUnauthorized, http.StatusUnauthorized)
			return
		}
		if !user.IsAdmin() {
			jsonutil.Error(w, "Admin access required", jsonutil.CodeForbidden, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
