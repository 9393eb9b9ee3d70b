package matches

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
	"github.com/fcunirea/clubsite/internal/app/system/jsonutil"
)

// Store is the match persistence surface the handler needs.
type Store interface {
	List(ctx context.Context) ([]Match, error)
	ListByStatus(ctx context.Context, status string) ([]Match, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]Match, error)
	Get(ctx context.Context, id string) (Match, error)
	Create(ctx context.Context, m Match) (Match, error)
	Update(ctx context.Context, id string, set bson.M) (Match, error)
	Delete(ctx context.Context, id string) error
}

// ResultRow is a completed match with its derived club-side result attached.
type ResultRow struct {
	Match
	Result Result `json:"result"`
}

// Handler handles match HTTP requests. The clock is injected so the upcoming
// cutoff is testable.
type Handler struct {
	store  Store
	clock  clockwork.Clock
	logger *zap.Logger
}

// NewHandler creates a match handler using the real clock.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return NewHandlerWithClock(store, clockwork.NewRealClock(), logger)
}

// NewHandlerWithClock creates a match handler with an explicit clock.
func NewHandlerWithClock(store Store, clock clockwork.Clock, logger *zap.Logger) *Handler {
	return &Handler{store: store, clock: clock, logger: logger}
}

// List handles GET /api/matches.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list matches", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, docs)
}

// Upcoming handles GET /api/matches/upcoming: matches after now that are
// still in the upcoming status, soonest first.
func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListUpcoming(r.Context(), h.clock.Now().UTC())
	if err != nil {
		h.logger.Error("failed to list upcoming matches", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, docs)
}

// Results handles GET /api/matches/results: completed matches newest first,
// each with the derived club-side result. An optional ?outcome=win|draw|loss
// narrows the list.
func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	outcome := r.URL.Query().Get("outcome")
	if outcome != "" && outcome != OutcomeWin && outcome != OutcomeDraw && outcome != OutcomeLoss {
		jsonutil.Error(w, "Invalid outcome filter", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	docs, err := h.store.ListByStatus(r.Context(), StatusCompleted)
	if err != nil {
		h.logger.Error("failed to list results", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}

	rows := []ResultRow{}
	for _, m := range docs {
		res := Derive(m)
		if outcome != "" && res.Outcome != outcome {
			continue
		}
		rows = append(rows, ResultRow{Match: m, Result: res})
	}
	jsonutil.Respond(w, http.StatusOK, rows)
}

// Stats handles GET /api/matches/stats: season totals over all completed
// matches, unaffected by any result filter.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListByStatus(r.Context(), StatusCompleted)
	if err != nil {
		h.logger.Error("failed to load season stats", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, ComputeStats(docs))
}

// Get handles GET /api/matches/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Match not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to get match", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, doc)
}

// Create handles POST /api/matches.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseMatchForm(r)
	if err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Opponent == nil || *form.Opponent == "" {
		jsonutil.Error(w, "Opponent is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Date == nil || *form.Date == "" {
		jsonutil.Error(w, "Date is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	date, err := parseMatchDate(*form.Date)
	if err != nil {
		jsonutil.Error(w, "Invalid date", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Time == nil || *form.Time == "" {
		jsonutil.Error(w, "Time is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Venue == nil || *form.Venue == "" {
		jsonutil.Error(w, "Venue is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	m := Match{
		Opponent:  *form.Opponent,
		Date:      date,
		Time:      *form.Time,
		Venue:     *form.Venue,
		IsHome:    true,
		Status:    StatusUpcoming,
		HomeScore: form.HomeScore,
		AwayScore: form.AwayScore,
	}
	if form.IsHome != nil {
		m.IsHome = *form.IsHome
	}
	if form.Status != nil {
		if !validStatuses[*form.Status] {
			jsonutil.Error(w, "Invalid status", jsonutil.CodeValidation, http.StatusBadRequest)
			return
		}
		m.Status = *form.Status
	}
	if form.Description != nil {
		m.Description = *form.Description
	}

	created, err := h.store.Create(r.Context(), m)
	if err != nil {
		h.logger.Error("failed to create match", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusCreated, created)
}

// Update handles PUT /api/matches/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	form, err := parseMatchForm(r)
	if err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if form.Opponent != nil {
		set["opponent"] = *form.Opponent
	}
	if form.Date != nil {
		date, err := parseMatchDate(*form.Date)
		if err != nil {
			jsonutil.Error(w, "Invalid date", jsonutil.CodeValidation, http.StatusBadRequest)
			return
		}
		set["date"] = date
	}
	if form.Time != nil {
		set["time"] = *form.Time
	}
	if form.Venue != nil {
		set["venue"] = *form.Venue
	}
	if form.IsHome != nil {
		set["isHome"] = *form.IsHome
	}
	if form.Status != nil {
		if !validStatuses[*form.Status] {
			jsonutil.Error(w, "Invalid status", jsonutil.CodeValidation, http.StatusBadRequest)
			return
		}
		set["status"] = *form.Status
	}
	if form.HomeScore != nil {
		set["homeScore"] = *form.HomeScore
	}
	if form.AwayScore != nil {
		set["awayScore"] = *form.AwayScore
	}
	if form.Description != nil {
		set["description"] = *form.Description
	}

	updated, err := h.store.Update(r.Context(), chi.URLParam(r, "id"), set)
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Match not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to update match", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/matches/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Match not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete match", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Message(w, http.StatusOK, "Match deleted successfully")
}
