package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
	"github.com/heartmarshall/threadline-backend/internal/service/comment"
)

// warningNotificationFailed is attached to a create response whose reply
// notification could not be stored.
const warningNotificationFailed = "notification delivery failed"

type commentService interface {
	ListThreads(ctx context.Context) ([]*domain.ThreadNode, error)
	GetThread(ctx context.Context, commentID uuid.UUID) (*domain.ThreadNode, error)
	CreateComment(ctx context.Context, input comment.CreateCommentInput) (*comment.CreateResult, error)
	EditComment(ctx context.Context, input comment.EditCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	RestoreComment(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	Policy() domain.LifecyclePolicy
	Now() time.Time
}

// CommentHandler serves comment REST endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type createCommentRequest struct {
	Content  string     `json:"content"`
	ParentID *uuid.UUID `json:"parentId"`
}

type editCommentRequest struct {
	Content string `json:"content"`
}

type threadsResponse struct {
	Threads []*commentView `json:"threads"`
}

type createCommentResponse struct {
	Comment  *commentView `json:"comment"`
	Warnings []string     `json:"warnings,omitempty"`
}

func (h *CommentHandler) presenter(ctx context.Context) *presenter {
	return newPresenter(ctx, h.svc.Policy(), h.svc.Now())
}

// List handles GET /comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	roots, err := h.svc.ListThreads(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	views, err := h.presenter(r.Context()).threads(r.Context(), roots)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, threadsResponse{Threads: views})
}

// Get handles GET /comments/{id}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	node, err := h.svc.GetThread(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	views, err := h.presenter(r.Context()).threads(r.Context(), []*domain.ThreadNode{node})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views[0])
}

// Create handles POST /comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.CreateComment(r.Context(), comment.CreateCommentInput{
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.presenter(r.Context()).single(r.Context(), result.Comment)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := createCommentResponse{Comment: view}
	if errors.Is(result.NotificationErr, domain.ErrNotificationDeliveryFailed) {
		resp.Warnings = append(resp.Warnings, warningNotificationFailed)
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Edit handles PATCH /comments/{id}.
func (h *CommentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req editCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.EditComment(r.Context(), comment.EditCommentInput{CommentID: id, Content: req.Content})
	h.respondComment(w, r, c, err)
}

// Delete handles DELETE /comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.DeleteComment)
}

// Restore handles POST /comments/{id}/restore.
func (h *CommentHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.RestoreComment)
}

func (h *CommentHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, uuid.UUID) (*domain.Comment, error),
) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := fn(r.Context(), id)
	h.respondComment(w, r, c, err)
}

func (h *CommentHandler) respondComment(w http.ResponseWriter, r *http.Request, c *domain.Comment, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.presenter(r.Context()).single(r.Context(), c)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
