// Package notification implements the Notification store using PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/threadline-backend/internal/adapter/postgres"
	"github.com/heartmarshall/threadline-backend/internal/domain"
)

const (
	table  = "notifications"
	entity = "notification"
)

var columns = []string{"id", "recipient_id", "comment_id", "is_read", "created_at"}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a notification by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Expr("id = ?", id)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get notification: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	n := toDomain(dst)
	return &n, nil
}

// ListByRecipient returns all notifications for userID, newest first.
func (r *Repo) ListByRecipient(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Expr("recipient_id = ?", userID)).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notifications: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list notifications for %s: %w", userID, err)
	}

	out := make([]domain.Notification, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

// CountUnread returns how many unread notifications userID has.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(sq.Expr("recipient_id = ?", userID)).
		Where(sq.Eq{"is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count unread: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread for %s: %w", userID, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a notification. Unknown recipient or comment maps to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(n.ID, n.RecipientID, n.CommentID, n.IsRead, n.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert notification: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, n.ID)
	}
	created := toDomain(dst)
	return &created, nil
}

// MarkRead sets is_read. Already-read rows are left as they are.
// Returns domain.ErrNotFound if the id does not exist.
func (r *Repo) MarkRead(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Update(table).
		Set("is_read", true).
		Where(sq.Expr("id = ?", id)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark read: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead flips every unread notification of userID and returns how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("is_read", true).
		Where(sq.Expr("recipient_id = ?", userID)).
		Where(sq.Eq{"is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark all read: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("mark all read for %s: %w", userID, err)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteReadBefore removes read notifications created before threshold.
// Unread notifications are never removed.
func (r *Repo) DeleteReadBefore(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"is_read": true}).
		Where(sq.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete read: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type row struct {
	ID          uuid.UUID `db:"id"`
	RecipientID uuid.UUID `db:"recipient_id"`
	CommentID   uuid.UUID `db:"comment_id"`
	IsRead      bool      `db:"is_read"`
	CreatedAt   time.Time `db:"created_at"`
}

func toDomain(r row) domain.Notification {
	return domain.Notification{
		ID:          r.ID,
		RecipientID: r.RecipientID,
		CommentID:   r.CommentID,
		IsRead:      r.IsRead,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}
