package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification tells RecipientID that CommentID replied to one of their comments.
// IsRead only ever goes from false to true.
type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	CommentID   uuid.UUID
	IsRead      bool
	CreatedAt   time.Time
}

// IsRecipient reports whether userID owns the notification.
func (n *Notification) IsRecipient(userID uuid.UUID) bool {
	return n.RecipientID == userID
}
