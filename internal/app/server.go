package app

import (
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/threadline-backend/internal/adapter/redis/unread"
	jwtauth "github.com/heartmarshall/threadline-backend/internal/auth"
	"github.com/heartmarshall/threadline-backend/internal/config"
	"github.com/heartmarshall/threadline-backend/internal/domain"
	authsvc "github.com/heartmarshall/threadline-backend/internal/service/auth"
	"github.com/heartmarshall/threadline-backend/internal/service/comment"
	"github.com/heartmarshall/threadline-backend/internal/service/notification"
	"github.com/heartmarshall/threadline-backend/internal/transport/dataloader"
	"github.com/heartmarshall/threadline-backend/internal/transport/middleware"
	"github.com/heartmarshall/threadline-backend/internal/transport/rest"
	"github.com/heartmarshall/threadline-backend/internal/transport/ws"
)

// Server is the assembled HTTP application.
type Server struct {
	Handler http.Handler

	hub     *ws.Hub
	limiter *middleware.RateLimiter
}

// NewServer wires services and transport on top of stores. cache may be nil.
func NewServer(cfg *config.Config, logger *slog.Logger, clock clockwork.Clock, stores *Stores, cache *unread.Cache) *Server {
	hub := ws.NewHub(logger, cfg.CORS.AllowedOrigins)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	var notifications *notification.Service
	if cache != nil {
		notifications = notification.NewService(logger, clock, stores.Notifications, cache, hub)
	} else {
		notifications = notification.NewService(logger, clock, stores.Notifications, nil, hub)
	}

	policy := domain.LifecyclePolicy{
		EditWindow:    cfg.Comments.EditWindow,
		RestoreWindow: cfg.Comments.RestoreWindow,
	}
	comments := comment.NewService(logger, clock, policy, stores.Tx, stores.Comments, notifications, cfg.Comments.MaxContentLength)

	jwt := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock)
	auth := authsvc.NewService(logger, clock, stores.Users, jwt, cfg.Auth)

	health := append([]rest.Component(nil), stores.Health...)
	if cache != nil {
		health = append(health, rest.Component{Name: "redis", Pinger: cache})
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:        logger,
		Auth:          rest.NewAuthHandler(auth, logger),
		Comments:      rest.NewCommentHandler(comments, logger),
		Notifications: rest.NewNotificationHandler(notifications, comments, logger),
		Health:        rest.NewHealthHandler(clock, Version, health...),
		Live:          hub,
		Tokens:        auth,
		Loaders:       &dataloader.Repos{User: stores.Users, Comment: stores.Comments},
		Limiter:       limiter,
		CORS:          cfg.CORS,
		RateLimit:     cfg.RateLimit,
	})

	return &Server{Handler: handler, hub: hub, limiter: limiter}
}

// Close disconnects websocket clients and stops background work. Safe to call twice.
func (s *Server) Close() {
	s.hub.Close()
	s.limiter.Stop()
}
