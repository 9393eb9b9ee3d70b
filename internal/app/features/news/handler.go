package news

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

// Store is the news persistence surface the handler needs.
type Store interface {
	List(ctx context.Context, publishedMode string) ([]Article, error)
	Get(ctx context.Context, id string) (Article, error)
	Create(ctx context.Context, a Article) (Article, error)
	Update(ctx context.Context, id string, set bson.M) (Article, error)
	Delete(ctx context.Context, id string) error
}

// Handler handles news HTTP requests.
type Handler struct {
	store   Store
	uploads *upload.Saver
	logger  *zap.Logger
}

// NewHandler creates a news handler.
func NewHandler(store Store, uploads *upload.Saver, logger *zap.Logger) *Handler {
	return &Handler{store: store, uploads: uploads, logger: logger}
}

// List handles GET /api/news. With no query parameter only published (or
// legacy, field-less) articles are returned; ?published=all returns
// everything; ?published=false returns only unpublished articles.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.List(r.Context(), r.URL.Query().Get("published"))
	if err != nil {
		h.logger.Error("failed to list news", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, docs)
}

// Get handles GET /api/news/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "News item not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to get news item", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, doc)
}

// Create handles POST /api/news with an optional image under the "image" field.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	file, err := h.uploads.FromRequest(r, "image")
	if err != nil {
		h.logger.Warn("news image upload failed", zap.Error(err))
		jsonutil.Error(w, "Invalid upload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	form, err := parseArticleForm(r)
	if err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Title == nil || *form.Title == "" {
		jsonutil.Error(w, "Title is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Content == nil || *form.Content == "" {
		jsonutil.Error(w, "Content is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Author == nil || *form.Author == "" {
		jsonutil.Error(w, "Author is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	published := true
	a := Article{
		Title:     *form.Title,
		Content:   *form.Content,
		Author:    *form.Author,
		Category:  CategoryGeneral,
		Published: &published,
	}
	if form.Category != nil {
		if !validCategories[*form.Category] {
			jsonutil.Error(w, "Invalid category", jsonutil.CodeValidation, http.StatusBadRequest)
			return
		}
		a.Category = *form.Category
	}
	if form.Published != nil {
		a.Published = form.Published
	}
	if file != nil {
		a.Image = file.PublicPath
	}

	created, err := h.store.Create(r.Context(), a)
	if err != nil {
		h.logger.Error("failed to create news item", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusCreated, created)
}

// Update handles PUT /api/news/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	file, err := h.uploads.FromRequest(r, "image")
	if err != nil {
		h.logger.Warn("news image upload failed", zap.Error(err))
		jsonutil.Error(w, "Invalid upload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	form, err := parseArticleForm(r)
	if err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if form.Title != nil {
		set["title"] = *form.Title
	}
	if form.Content != nil {
		set["content"] = *form.Content
	}
	if form.Author != nil {
		set["author"] = *form.Author
	}
	if form.Category != nil {
		if !validCategories[*form.Category] {
			jsonutil.Error(w, "Invalid category", jsonutil.CodeValidation, http.StatusBadRequest)
			return
		}
		set["category"] = *form.Category
	}
	if form.Published != nil {
		set["published"] = *form.Published
	}
	if file != nil {
		set["image"] = file.PublicPath
	}

	updated, err := h.store.Update(r.Context(), chi.URLParam(r, "id"), set)
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "News item not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to update news item", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/news/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "News item not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete news item", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Message(w, http.StatusOK, "News item deleted successfully")
}
