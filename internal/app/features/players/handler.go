package players

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
	"github.com/fcunirea/clubsite/internal/app/system/jsonutil"
	"github.com/fcunirea/clubsite/internal/app/system/upload"
)

// Store is the player persistence surface the handler needs.
type Store interface {
	List(ctx context.Context) ([]Player, error)
	Get(ctx context.Context, id string) (Player, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, id string, set bson.M) (Player, error)
	Delete(ctx context.Context, id string) error
}

// Handler handles player HTTP requests.
type Handler struct {
	store   Store
	uploads *upload.Saver
	logger  *zap.Logger
}

// NewHandler creates a player handler.
func NewHandler(store Store, uploads *upload.Saver, logger *zap.Logger) *Handler {
	return &Handler{store: store, uploads: uploads, logger: logger}
}

// List handles GET /api/players.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list players", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, docs)
}

// Get handles GET /api/players/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Player not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to get player", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, doc)
}

// Create handles POST /api/players. The request may be JSON or multipart with
// an optional photo under the "photo" field.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	file, err := h.uploads.FromRequest(r, "photo")
	if err != nil {
		h.logger.Warn("player photo upload failed", zap.Error(err))
		jsonutil.Error(w, "Invalid upload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	form, err := parsePlayerForm(r)
	if err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Name == nil || *form.Name == "" {
		jsonutil.Error(w, "Name is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Position == nil || *form.Position == "" {
		jsonutil.Error(w, "Position is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	position := canonicalPosition(*form.Position)
	if !validPositions[position] {
		jsonutil.Error(w, "Invalid position", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.JerseyNumber == nil {
		jsonutil.Error(w, "Jersey number is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Age == nil {
		jsonutil.Error(w, "Age is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	p := Player{
		Name:         *form.Name,
		Position:     position,
		JerseyNumber: *form.JerseyNumber,
		Age:          *form.Age,
	}
	if form.Height != nil {
		p.Height = *form.Height
	}
	if form.Weight != nil {
		p.Weight = *form.Weight
	}
	if form.Bio != nil {
		p.Bio = *form.Bio
	}
	if file != nil {
		p.Photo = file.PublicPath
	}

	created, err := h.store.Create(r.Context(), p)
	if errors.Is(err, crud.ErrDuplicate) {
		jsonutil.Error(w, "Jersey number already exists", jsonutil.CodeDuplicate, http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("failed to create player", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusCreated, created)
}

// Update handles PUT /api/players/{id}. Only supplied fields are merged; a
// new photo replaces the stored path.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	file, err := h.uploads.FromRequest(r, "photo")
	if err != nil {
		h.logger.Warn("player photo upload failed", zap.Error(err))
		jsonutil.Error(w, "Invalid upload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	form, err := parsePlayerForm(r)
	if err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if form.Name != nil {
		set["name"] = *form.Name
	}
	if form.Position != nil {
		position := canonicalPosition(*form.Position)
		if !validPositions[position] {
			jsonutil.Error(w, "Invalid position", jsonutil.CodeValidation, http.StatusBadRequest)
			return
		}
		set["position"] = position
	}
	if form.JerseyNumber != nil {
		set["jerseyNumber"] = *form.JerseyNumber
	}
	if form.Age != nil {
		set["age"] = *form.Age
	}
	if form.Height != nil {
		set["height"] = *form.Height
	}
	if form.Weight != nil {
		set["weight"] = *form.Weight
	}
	if form.Bio != nil {
		set["bio"] = *form.Bio
	}
	if file != nil {
		set["photo"] = file.PublicPath
	}

	updated, err := h.store.Update(r.Context(), chi.URLParam(r, "id"), set)
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Player not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if errors.Is(err, crud.ErrDuplicate) {
		jsonutil.Error(w, "Jersey number already exists", jsonutil.CodeDuplicate, http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("failed to update player", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/players/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Player not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete player", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Message(w, http.StatusOK, "Player deleted successfully")
}
