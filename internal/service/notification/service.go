// Package notification implements the reply notification dispatcher.
package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/threadline-backend/internal/domain"
)

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

// unreadCache is a cache-aside store for unread counts. Get reports a
// generation on a miss; Fill writes only if no Invalidate happened since.
type unreadCache interface {
	Get(ctx context.Context, userID uuid.UUID) (n int, ok bool, gen int64, err error)
	Fill(ctx context.Context, userID uuid.UUID, n int, gen int64) (bool, error)
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// Service creates and reads reply notifications.
type Service struct {
	notifications notificationRepo
	cache         unreadCache
	pub           publisher
	clock         clockwork.Clock
	log           *slog.Logger
}

// NewService creates a new Notification service. cache and pub may be nil.
func NewService(
	log *slog.Logger,
	clock clockwork.Clock,
	notifications notificationRepo,
	cache unreadCache,
	pub publisher,
) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if pub == nil {
		pub = noopPublisher{}
	}
	return &Service{
		notifications: notifications,
		cache:         cache,
		pub:           pub,
		clock:         clock,
		log:           log.With("service", "notification"),
	}
}

// invalidate drops the cached unread count. Errors are logged; the entry
// still expires on its TTL.
func (s *Service) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "invalidate unread count",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}

type noopCache struct{}

func (noopCache) Get(context.Context, uuid.UUID) (int, bool, int64, error)  { return 0, false, 0, nil }
func (noopCache) Fill(context.Context, uuid.UUID, int, int64) (bool, error) { return false, nil }
func (noopCache) Invalidate(context.Context, uuid.UUID) error               { return nil }

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, domain.Notification) error { return nil }
