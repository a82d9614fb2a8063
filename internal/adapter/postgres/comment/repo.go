// Package comment implements the Comment store using PostgreSQL.
package comment

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
	table  = "comments"
	entity = "comment"
)

var columns = []string{"id", "author_id", "parent_id", "content", "created_at", "updated_at", "deleted_at"}

// Repo provides comment persistence backed by PostgreSQL.
// Comments are never hard-deleted; deletion only sets deleted_at.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a comment by primary key, deleted or not.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Expr("id = ?", id)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get comment: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// GetByIDForUpdate is GetByID with a row lock held until the enclosing
// transaction ends. Concurrent transitions on the same id queue here.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Expr("id = ?", id)).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get comment for update: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// GetByIDs returns the comments found among ids in no particular order.
// Missing ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Comment, error) {
	if len(ids) == 0 {
		return []domain.Comment{}, nil
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Expr("id = ANY(?)", ids)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get comments by ids: %w", err)
	}
	return r.list(ctx, query, args)
}

// ListRoots returns non-deleted root comments, newest first.
func (r *Repo) ListRoots(ctx context.Context) ([]domain.Comment, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"parent_id": nil, "deleted_at": nil}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list roots: %w", err)
	}
	return r.list(ctx, query, args)
}

// ListReplies returns the direct replies of every parent in parentIDs,
// oldest first. Deleted replies are included.
func (r *Repo) ListReplies(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error) {
	if len(parentIDs) == 0 {
		return []domain.Comment{}, nil
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Expr("parent_id = ANY(?)", parentIDs)).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list replies: %w", err)
	}
	return r.list(ctx, query, args)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a comment. A parent_id that does not exist maps to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.AuthorID, c.ParentID, c.Content, c.CreatedAt, c.UpdatedAt, c.DeletedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert comment: %w", err)
	}
	return r.getOne(ctx, c.ID, query, args)
}

// UpdateContent replaces content and bumps updated_at.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, content string, updatedAt time.Time) (*domain.Comment, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("content", content).
		Set("updated_at", updatedAt).
		Where(sq.Expr("id = ?", id)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update content: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// UpdateDeletion sets deleted_at; nil clears it (restore).
func (r *Repo) UpdateDeletion(ctx context.Context, id uuid.UUID, deletedAt *time.Time) (*domain.Comment, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("deleted_at", deletedAt).
		Where(sq.Expr("id = ?", id)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update deletion: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type row struct {
	ID        uuid.UUID  `db:"id"`
	AuthorID  uuid.UUID  `db:"author_id"`
	ParentID  *uuid.UUID `db:"parent_id"`
	Content   string     `db:"content"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.Comment, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	c := toDomain(dst)
	return &c, nil
}

func (r *Repo) list(ctx context.Context, query string, args []any) ([]domain.Comment, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	out := make([]domain.Comment, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

func toDomain(r row) domain.Comment {
	c := domain.Comment{
		ID:        r.ID,
		AuthorID:  r.AuthorID,
		ParentID:  r.ParentID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
	if r.DeletedAt != nil {
		d := r.DeletedAt.UTC()
		c.DeletedAt = &d
	}
	return c
}
