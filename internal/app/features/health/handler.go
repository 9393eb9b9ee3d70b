// Package health serves the health-check endpoint for load balancers.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/fcunirea/clubsite/internal/app/system/jsonutil"
)

const pingTimeout = 2 * time.Second

// Status is the health response body.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Handler handles health-check requests.
type Handler struct {
	client *mongo.Client
	logger *zap.Logger
}

// NewHandler creates a health handler.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{client: client, logger: logger}
}

// Check handles GET /api/health. A failing Mongo ping degrades the status.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		h.logger.Warn("health check mongo ping failed", zap.Error(err))
		jsonutil.Respond(w, http.StatusServiceUnavailable, Status{
			Status:  "degraded",
			Message: "Database unreachable",
		})
		return
	}
	jsonutil.Respond(w, http.StatusOK, Status{
		Status:  "OK",
		Message: "Server is running",
	})
}

// Routes returns the health router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	return r
}
