package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/threadline-backend/internal/domain"
	"github.com/heartmarshall/threadline-backend/pkg/ctxutil"
)

// EditComment replaces the content of the caller's comment within the edit
// window. createdAt and parentID are never changed; updatedAt becomes now.
func (s *Service) EditComment(ctx context.Context, input EditCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.maxLen); err != nil {
		return nil, err
	}

	var updated *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByIDForUpdate(txCtx, input.CommentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}

		now := s.Now()
		if err := s.policy.CheckEdit(c, userID, now); err != nil {
			return err
		}

		updated, err = s.comments.UpdateContent(txCtx, c.ID, strings.TrimSpace(input.Content), now)
		if err != nil {
			return fmt.Errorf("update comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment edited",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", input.CommentID.String()),
	)

	return updated, nil
}
