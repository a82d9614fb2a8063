package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
	"github.com/heartmarshall/threadline-backend/pkg/ctxutil"
)

// DeleteComment tombstones the caller's comment. Content is kept and replies
// are untouched. Deleting an already deleted comment is Forbidden.
func (s *Service) DeleteComment(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var deleted *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByIDForUpdate(txCtx, commentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}

		now := s.Now()
		if err := s.policy.CheckDelete(c, userID, now); err != nil {
			return err
		}

		deleted, err = s.comments.UpdateDeletion(txCtx, c.ID, &now)
		if err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", commentID.String()),
	)

	return deleted, nil
}

// RestoreComment clears the deletion of the caller's comment within the
// restore window, which starts at deletion time.
func (s *Service) RestoreComment(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var restored *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByIDForUpdate(txCtx, commentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}

		if err := s.policy.CheckRestore(c, userID, s.Now()); err != nil {
			return err
		}

		restored, err = s.comments.UpdateDeletion(txCtx, c.ID, nil)
		if err != nil {
			return fmt.Errorf("restore comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment restored",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", commentID.String()),
	)

	return restored, nil
}
