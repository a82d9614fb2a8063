package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/config"
	"github.com/heartmarshall/threadline-backend/internal/transport/dataloader"
	"github.com/heartmarshall/threadline-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Logger        *slog.Logger
	Auth          *AuthHandler
	Comments      *CommentHandler
	Notifications *NotificationHandler
	Health        *HealthHandler
	Live          http.Handler
	Tokens        tokenValidator
	Loaders       *dataloader.Repos
	Limiter       *middleware.RateLimiter
	CORS          config.CORSConfig
	RateLimit     config.RateLimitConfig
}

// NewRouter builds the HTTP handler with the global middleware chain applied.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	authLimit := d.Limiter.Limit("auth", d.RateLimit.AuthPerMinute)
	writeLimit := d.Limiter.Limit("writes", d.RateLimit.WritesPerMinute)

	public := func(h http.HandlerFunc) http.Handler { return h }
	signedIn := func(h http.HandlerFunc) http.Handler { return middleware.Route(h, middleware.RequireAuth) }
	write := func(h http.HandlerFunc) http.Handler { return middleware.Route(h, middleware.RequireAuth, writeLimit) }

	mux.Handle("GET /live", public(d.Health.Live))
	mux.Handle("GET /ready", public(d.Health.Ready))
	mux.Handle("GET /health", public(d.Health.Health))

	mux.Handle("POST /auth/register", middleware.Route(d.Auth.Register, authLimit))
	mux.Handle("POST /auth/login", middleware.Route(d.Auth.Login, authLimit))

	mux.Handle("GET /comments", public(d.Comments.List))
	mux.Handle("GET /comments/{id}", public(d.Comments.Get))
	mux.Handle("POST /comments", write(d.Comments.Create))
	mux.Handle("PATCH /comments/{id}", write(d.Comments.Edit))
	mux.Handle("DELETE /comments/{id}", write(d.Comments.Delete))
	mux.Handle("POST /comments/{id}/restore", write(d.Comments.Restore))

	mux.Handle("GET /notifications", signedIn(d.Notifications.List))
	mux.Handle("GET /notifications/unread-count", signedIn(d.Notifications.UnreadCount))
	mux.Handle("PATCH /notifications/{id}/read", write(d.Notifications.MarkRead))
	mux.Handle("PATCH /notifications/read-all", write(d.Notifications.MarkAllRead))

	if d.Live != nil {
		mux.Handle("GET /ws/notifications", middleware.RequireAuth(d.Live))
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
		middleware.CaptureUser,
		dataloader.Middleware(d.Loaders),
	)(mux)
}
