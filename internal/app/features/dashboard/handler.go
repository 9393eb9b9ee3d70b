// Package dashboard serves the admin overview counters.
package dashboard

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/fcunirea/clubsite/internal/app/system/jsonutil"
)

// Counts summarizes the content collections for the admin overview.
type Counts struct {
	Players        int64 `json:"players"`
	Matches        int64 `json:"matches"`
	News           int64 `json:"news"`
	Gallery        int64 `json:"gallery"`
	Sponsors       int64 `json:"sponsors"`
	Contacts       int64 `json:"contacts"`
	UnreadContacts int64 `json:"unreadContacts"`
}

// Store is the counting surface the handler needs.
type Store interface {
	Counts(ctx context.Context) (Counts, error)
}

// Handler handles dashboard HTTP requests.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a dashboard handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Stats handles GET /api/admin/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.Counts(r.Context())
	if err != nil {
		h.logger.Error("failed to load dashboard counts", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, counts)
}
