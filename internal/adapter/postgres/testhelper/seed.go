package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/threadline-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current time at Postgres precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser inserts a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := Now()
	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + suffix,
		Email:     "user-" + suffix + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, "$2a$10$placeholderplaceholderplaceholderplaceholde", user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedComment inserts a comment by authorID created at createdAt.
// parentID may be nil for a root comment.
func SeedComment(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, parentID *uuid.UUID, createdAt time.Time) domain.Comment {
	t.Helper()

	c := domain.Comment{
		ID:        uuid.New(),
		AuthorID:  authorID,
		ParentID:  parentID,
		Content:   "comment " + uniqueSuffix(),
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
	c.UpdatedAt = c.CreatedAt

	_, err := pool.Exec(context.Background(),
		`INSERT INTO comments (id, author_id, parent_id, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.AuthorID, c.ParentID, c.Content, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}

	return c
}

// SeedNotification inserts an unread notification for recipientID about commentID.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, recipientID, commentID uuid.UUID, createdAt time.Time) domain.Notification {
	t.Helper()

	n := domain.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		CommentID:   commentID,
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notifications (id, recipient_id, comment_id, is_read, created_at)
		 VALUES ($1, $2, $3, false, $4)`,
		n.ID, n.RecipientID, n.CommentID, n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNotification: %v", err)
	}

	return n
}
