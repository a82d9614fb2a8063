// Package comment implements the comment lifecycle: create, edit, delete,
// restore and threaded listing.
package comment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/threadline-backend/internal/domain"
)

type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListRoots(ctx context.Context) ([]domain.Comment, error)
	ListReplies(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string, updatedAt time.Time) (*domain.Comment, error)
	UpdateDeletion(ctx context.Context, id uuid.UUID, deletedAt *time.Time) (*domain.Comment, error)
}

type notifier interface {
	Notify(ctx context.Context, recipientID, commentID uuid.UUID) (*domain.Notification, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultMaxContentLength bounds comment content when no limit is configured.
const DefaultMaxContentLength = 5000

// Service provides comment lifecycle operations.
type Service struct {
	comments commentRepo
	notifier notifier
	tx       txManager
	policy   domain.LifecyclePolicy
	clock    clockwork.Clock
	maxLen   int
	log      *slog.Logger
}

// NewService creates a new Comment service.
func NewService(
	log *slog.Logger,
	clock clockwork.Clock,
	policy domain.LifecyclePolicy,
	tx txManager,
	comments commentRepo,
	notifier notifier,
	maxContentLength int,
) *Service {
	if maxContentLength <= 0 {
		maxContentLength = DefaultMaxContentLength
	}
	return &Service{
		comments: comments,
		notifier: notifier,
		tx:       tx,
		policy:   policy,
		clock:    clock,
		maxLen:   maxContentLength,
		log:      log.With("service", "comment"),
	}
}

// Policy returns the lifecycle policy, for callers that render derived state.
func (s *Service) Policy() domain.LifecyclePolicy {
	return s.policy
}

// Now returns the service clock's current time in UTC.
func (s *Service) Now() time.Time {
	return s.clock.Now().UTC()
}

// CreateResult is the outcome of CreateComment.
type CreateResult struct {
	Comment *domain.Comment
	// Notification is set when a reply notified the parent author.
	Notification *domain.Notification
	// NotificationErr wraps domain.ErrNotificationDeliveryFailed when the
	// comment was stored but its notification was not.
	NotificationErr error
}
