package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/threadline-backend/internal/domain"
	"github.com/heartmarshall/threadline-backend/pkg/ctxutil"
)

// ListForUser returns the caller's notifications, newest first.
func (s *Service) ListForUser(ctx context.Context) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.notifications.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

// UnreadCount returns the caller's unread count, served from the cache when
// possible. Cache errors fall through to the store. The fill after a miss is
// dropped if a mutation invalidated the count in the meantime.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, hit, gen, err := s.cache.Get(ctx, userID)
	fill := err == nil
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "read unread count cache",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	case hit:
		return n, nil
	}

	n, err = s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}

	if fill {
		if _, err := s.cache.Fill(ctx, userID, n, gen); err != nil {
			s.log.WarnContext(ctx, "write unread count cache",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return n, nil
}
