package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
)

// Notify records that commentID replied to one of recipientID's comments.
// Callers guarantee one call per reply; Notify does not deduplicate.
func (s *Service) Notify(ctx context.Context, recipientID, commentID uuid.UUID) (*domain.Notification, error) {
	created, err := s.notifications.Create(ctx, &domain.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		CommentID:   commentID,
		IsRead:      false,
		CreatedAt:   s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	s.invalidate(ctx, recipientID)

	if err := s.pub.Publish(ctx, *created); err != nil {
		s.log.WarnContext(ctx, "publish notification",
			slog.String("notification_id", created.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "notification created",
		slog.String("notification_id", created.ID.String()),
		slog.String("recipient_id", recipientID.String()),
		slog.String("comment_id", commentID.String()),
	)

	return created, nil
}
