package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fcunirea/clubsite/internal/app/store/crud"
	"github.com/fcunirea/clubsite/internal/app/system/jsonutil"
)

// notifyTimeout bounds the background email dispatch.
const notifyTimeout = 15 * time.Second

// Store is the contact persistence surface the handler needs.
type Store interface {
	List(ctx context.Context) ([]Message, error)
	Create(ctx context.Context, m Message) (Message, error)
	UpdateStatus(ctx context.Context, id, status string) (Message, error)
	Delete(ctx context.Context, id string) error
}

// Notifier dispatches the operator notification email.
type Notifier interface {
	Enabled() bool
	SendContactNotification(ctx context.Context, to, name, email, subject, message string) error
}

// Handler handles contact HTTP requests.
type Handler struct {
	store    Store
	notifier Notifier
	notifyTo string
	logger   *zap.Logger
}

// NewHandler creates a contact handler. notifyTo may be empty to disable
// email notification.
func NewHandler(store Store, notifier Notifier, notifyTo string, logger *zap.Logger) *Handler {
	return &Handler{store: store, notifier: notifier, notifyTo: notifyTo, logger: logger}
}

// Submit handles POST /api/contact. The message is persisted first; the
// notification email is fire-and-forget and never fails the request.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		jsonutil.Error(w, "Name, email, subject and message are required", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	msg, err := h.store.Create(r.Context(), Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  StatusNew,
	})
	if err != nil {
		h.logger.Error("failed to save contact message", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}

	if h.notifier != nil && h.notifyTo != "" && h.notifier.Enabled() {
		go func(m Message) {
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := h.notifier.SendContactNotification(ctx, h.notifyTo, m.Name, m.Email, m.Subject, m.Message); err != nil {
				h.logger.Error("contact notification email failed",
					zap.String("messageId", m.ID.Hex()),
					zap.Error(err),
				)
			}
		}(msg)
	}

	jsonutil.Message(w, http.StatusCreated, "Contact form submitted successfully")
}

// List handles GET /api/contact (admin only).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list contact messages", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, docs)
}

// UpdateStatus handles PUT /api/contact/{id}/status (admin only).
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonutil.Error(w, "Invalid request payload", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}
	if !validStatuses[req.Status] {
		jsonutil.Error(w, "Invalid status", jsonutil.CodeValidation, http.StatusBadRequest)
		return
	}

	updated, err := h.store.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Contact not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to update contact status", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Respond(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/contact/{id} (admin only).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, crud.ErrNotFound) {
		jsonutil.Error(w, "Contact not found", jsonutil.CodeNotFound, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete contact message", zap.Error(err))
		jsonutil.ServerError(w)
		return
	}
	jsonutil.Message(w, http.StatusOK, "Contact deleted successfully")
}
