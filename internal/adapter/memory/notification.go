package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
)

type notificationRecord struct {
	domain.Notification
}

// NotificationRepo is the notification store over a Store.
type NotificationRepo struct {
	s *Store
}

// NewNotificationRepo creates a notification repository.
func NewNotificationRepo(s *Store) *NotificationRepo {
	return &NotificationRepo{s: s}
}

// GetByID returns a notification by id.
func (r *NotificationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.notifications[id]
	if !ok {
		return nil, fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	n := rec.Notification
	return &n, nil
}

// ListByRecipient returns notifications for userID, newest first.
func (r *NotificationRepo) ListByRecipient(_ context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.Notification{}
	for _, rec := range r.s.notifications {
		if rec.RecipientID == userID {
			out = append(out, rec.Notification)
		}
	}
	slices.SortFunc(out, func(a, b domain.Notification) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID.String(), a.ID.String())
	})
	return out, nil
}

// CountUnread returns how many unread notifications userID has.
func (r *NotificationRepo) CountUnread(_ context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, rec := range r.s.notifications {
		if rec.RecipientID == userID && !rec.IsRead {
			n++
		}
	}
	return n, nil
}

// Create stores a notification. The recipient and comment must exist.
func (r *NotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.notifications[n.ID]; ok {
		return nil, fmt.Errorf("notification %s: %w", n.ID, domain.ErrAlreadyExists)
	}
	if _, ok := r.s.users[n.RecipientID]; !ok {
		return nil, fmt.Errorf("notification %s: recipient %s: %w", n.ID, n.RecipientID, domain.ErrNotFound)
	}
	if _, ok := r.s.comments[n.CommentID]; !ok {
		return nil, fmt.Errorf("notification %s: comment %s: %w", n.ID, n.CommentID, domain.ErrNotFound)
	}

	r.s.notifications[n.ID] = notificationRecord{Notification: *n}
	out := *n
	return &out, nil
}

// MarkRead sets IsRead on id. Already-read notifications are unchanged.
func (r *NotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.notifications[id]
	if !ok {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	rec.IsRead = true
	r.s.notifications[id] = rec
	return nil
}

// MarkAllRead flips every unread notification of userID and returns how many changed.
func (r *NotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	changed := 0
	for id, rec := range r.s.notifications {
		if rec.RecipientID == userID && !rec.IsRead {
			rec.IsRead = true
			r.s.notifications[id] = rec
			changed++
		}
	}
	return changed, nil
}
