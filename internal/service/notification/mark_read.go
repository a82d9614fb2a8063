package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
	"github.com/heartmarshall/threadline-backend/pkg/ctxutil"
)

// MarkRead marks one of the caller's notifications as read.
// Marking an already-read notification succeeds without writing.
func (s *Service) MarkRead(ctx context.Context, notificationID uuid.UUID) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	if !n.IsRecipient(userID) {
		return nil, domain.NewForbiddenError(domain.ReasonNotRecipient)
	}
	if n.IsRead {
		return n, nil
	}

	if err := s.notifications.MarkRead(ctx, notificationID); err != nil {
		return nil, fmt.Errorf("mark read: %w", err)
	}
	n.IsRead = true

	s.invalidate(ctx, userID)

	s.log.InfoContext(ctx, "notification read",
		slog.String("user_id", userID.String()),
		slog.String("notification_id", notificationID.String()),
	)

	return n, nil
}

// MarkAllRead marks every unread notification of the caller as read and
// returns how many changed.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	changed, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	if changed > 0 {
		s.invalidate(ctx, userID)
		s.log.InfoContext(ctx, "notifications read",
			slog.String("user_id", userID.String()),
			slog.Int("count", changed),
		)
	}

	return changed, nil
}
