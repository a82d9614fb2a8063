package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
)

type notificationService interface {
	ListForUser(ctx context.Context) ([]domain.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
}

// NotificationHandler serves notification REST endpoints.
type NotificationHandler struct {
	svc      notificationService
	comments commentService
	log      *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler. comments supplies the
// policy and clock used to render comment previews.
func NewNotificationHandler(svc notificationService, comments commentService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, comments: comments, log: logger.With("handler", "notification")}
}

type notificationsResponse struct {
	Notifications []notificationView `json:"notifications"`
}

type countResponse struct {
	Count int `json:"count"`
}

type markAllReadResponse struct {
	Updated int `json:"updated"`
}

// List handles GET /notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListForUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p := newPresenter(r.Context(), h.comments.Policy(), h.comments.Now())
	views, err := p.notifications(r.Context(), list)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notificationsResponse{Notifications: views})
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.UnreadCount(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// MarkRead handles PATCH /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationView(*n))
}

// MarkAllRead handles PATCH /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.MarkAllRead(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, markAllReadResponse{Updated: n})
}
