package gallery

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

// Store is the gallery persistence surface the handler needs.
type Store interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Create(ctx context.Context, it Item) (Item, error)
	Update(ctx context.Context, id string, set bson.M) (Item, error)
	Delete(ctx context.Context, id string) error
}

// Handler handles gallery HTTP requests.
type Handler struct {
	store   Store
	uploads *upload.Saver
	logger  *zap.Logger
}

// NewHandler creates a gallery handler.
func NewHandler(store Store, uploads *upload.Saver, logger *zap.Logger) *Handler {
	return &Handler{store: store, uploads: uploads, logger: logger}
}

// List handles GET /api/gallery.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list gallery", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, docs)
}

// Get handles GET /api/gallery/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Gallery item not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to get gallery item", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, doc)
}

// Create handles POST /api/gallery. The media file under "media" is required;
// its MIME major type decides image versus video, and videos use the media
// URL as their thumbnail.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	file, err := h.uploads.FromRequest(r, "media")
	if err != nil {
		h.logger.Warn("gallery media upload failed", zap.Error(err))
		jsonutil.Error(w, "Invalid upload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if file == nil {
		jsonutil.Error(w, "Media file is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	form, err := parseItemForm(r)
	if err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Title == nil || *form.Title == "" {
		jsonutil.Error(w, "Title is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	it := Item{
		Title: *form.Title,
		Type:  TypeImage,
		URL:   file.PublicPath,
	}
	if form.Description != nil {
		it.Description = *form.Description
	}
	if file.IsVideo() {
		it.Type = TypeVideo
		it.Thumbnail = file.PublicPath
	}

	created, err := h.store.Create(r.Context(), it)
	if err != nil {
		h.logger.Error("failed to create gallery item", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusCreated, created)
}

// Update handles PUT /api/gallery/{id}. A new media file replaces the URL and
// re-derives the type; text fields merge as usual.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	file, err := h.uploads.FromRequest(r, "media")
	if err != nil {
		h.logger.Warn("gallery media upload failed", zap.Error(err))
		jsonutil.Error(w, "Invalid upload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	form, err := parseItemForm(r)
	if err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if form.Title != nil {
		set["title"] = *form.Title
	}
	if form.Description != nil {
		set["description"] = *form.Description
	}
	if file != nil {
		set["url"] = file.PublicPath
		if file.IsVideo() {
			set["type"] = TypeVideo
			set["thumbnail"] = file.PublicPath
		} else {
			set["type"] = TypeImage
		}
	}

	updated, err := h.store.Update(r.Context(), chi.URLParam(r, "id"), set)
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Gallery item not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to update gallery item", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/gallery/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Gallery item not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete gallery item", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Message(w, http.StatusOK, "Gallery item deleted successfully")
}
