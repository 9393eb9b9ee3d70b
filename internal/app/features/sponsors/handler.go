package sponsors

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

// Store is the sponsor persistence surface the handler needs.
type Store interface {
	List(ctx context.Context) ([]Sponsor, error)
	Get(ctx context.Context, id string) (Sponsor, error)
	Create(ctx context.Context, sp Sponsor) (Sponsor, error)
	Update(ctx context.Context, id string, set bson.M) (Sponsor, error)
	Delete(ctx context.Context, id string) error
}

// Handler handles sponsor HTTP requests.
type Handler struct {
	store   Store
	uploads *upload.Saver
	logger  *zap.Logger
}

// NewHandler creates a sponsor handler.
func NewHandler(store Store, uploads *upload.Saver, logger *zap.Logger) *Handler {
	return &Handler{store: store, uploads: uploads, logger: logger}
}

// List handles GET /api/sponsors.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list sponsors", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, docs)
}

// Get handles GET /api/sponsors/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Sponsor not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to get sponsor", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, doc)
}

// Create handles POST /api/sponsors. The logo under the "logo" field is a
// required attachment.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	file, err := h.uploads.FromRequest(r, "logo")
	if err != nil {
		h.logger.Warn("sponsor logo upload failed", zap.Error(err))
		jsonutil.Error(w, "Invalid upload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if file == nil {
		jsonutil.Error(w, "Logo is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	form, err := parseSponsorForm(r)
	if err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if form.Name == nil || *form.Name == "" {
		jsonutil.Error(w, "Name is required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	sp := Sponsor{
		Name: *form.Name,
		Logo: file.PublicPath,
		Tier: TierPartner,
	}
	if form.Website != nil {
		sp.Website = *form.Website
	}
	if form.Tier != nil {
		if !validTiers[*form.Tier] {
			jsonutil.Error(w, "Invalid tier", jsonutil.CodeValidation, http.StatusBadRequest)
			return
		}
		sp.Tier = *form.Tier
	}
	if form.Description != nil {
		sp.Description = *form.Description
	}

	created, err := h.store.Create(r.Context(), sp)
	if err != nil {
		h.logger.Error("failed to create sponsor", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusCreated, created)
}

// Update handles PUT /api/sponsors/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	file, err := h.uploads.FromRequest(r, "logo")
	if err != nil {
		h.logger.Warn("sponsor logo upload failed", zap.Error(err))
		jsonutil.Error(w, "Invalid upload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	form, err := parseSponsorForm(r)
	if err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if form.Name != nil {
		set["name"] = *form.Name
	}
	if form.Website != nil {
		set["website"] = *form.Website
	}
	if form.Tier != nil {
		if !validTiers[*form.Tier] {
			jsonutil.Error(w, "Invalid tier", jsonutil.CodeValidation, http.StatusBadRequest)
			return
		}
		set["tier"] = *form.Tier
	}
	if form.Description != nil {
		set["description"] = *form.Description
	}
	if file != nil {
		set["logo"] = file.PublicPath
	}

	updated, err := h.store.Update(r.Context(), chi.URLParam(r, "id"), set)
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Sponsor not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to update sponsor", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/sponsors/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Sponsor not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete sponsor", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Message(w, http.StatusOK, "Sponsor deleted successfully")
}
