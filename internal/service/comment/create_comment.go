package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
	"github.com/heartmarshall/threadline-backend/pkg/ctxutil"
)

// CreateComment stores a new root comment or reply for the caller.
//
// A reply to someone else's comment notifies the parent author exactly once,
// after the comment is stored. A failed notification does not undo the
// comment: it is logged and reported in CreateResult.NotificationErr.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*CreateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.maxLen); err != nil {
		return nil, err
	}

	var parent *domain.Comment
	if input.ParentID != nil {
		p, err := s.comments.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("get parent: %w", err)
		}
		parent = p
	}

	now := s.Now()
	created, err := s.comments.Create(ctx, &domain.Comment{
		ID:        uuid.New(),
		AuthorID:  userID,
		ParentID:  input.ParentID,
		Content:   strings.TrimSpace(input.Content),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", created.ID.String()),
		slog.Bool("reply", created.IsReply()),
	)

	result := &CreateResult{Comment: created}
	if parent == nil || parent.IsAuthor(userID) {
		return result, nil
	}

	n, err := s.notifier.Notify(ctx, parent.AuthorID, created.ID)
	if err != nil {
		result.NotificationErr = fmt.Errorf("%w: %w", domain.ErrNotificationDeliveryFailed, err)
		s.log.WarnContext(ctx, "reply notification failed",
			slog.String("comment_id", created.ID.String()),
			slog.String("recipient_id", parent.AuthorID.String()),
			slog.String("error", err.Error()),
		)
		return result, nil
	}
	result.Notification = n

	return result, nil
}
