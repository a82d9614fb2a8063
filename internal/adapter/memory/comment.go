package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
)

type commentRecord struct {
	domain.Comment
}

func (r commentRecord) clone() domain.Comment {
	c := r.Comment
	if r.ParentID != nil {
		p := *r.ParentID
		c.ParentID = &p
	}
	if r.DeletedAt != nil {
		d := *r.DeletedAt
		c.DeletedAt = &d
	}
	return c
}

// CommentRepo is the comment store over a Store.
type CommentRepo struct {
	s *Store
}

// NewCommentRepo creates a comment repository.
func NewCommentRepo(s *Store) *CommentRepo {
	return &CommentRepo{s: s}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a comment by id.
func (r *CommentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	c := rec.clone()
	return &c, nil
}

// GetByIDForUpdate locks the comment until the enclosing RunInTx returns.
func (r *CommentRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if err := r.s.lock(ctx, id); err != nil {
		return nil, fmt.Errorf("lock comment %s: %w", id, err)
	}
	return r.GetByID(ctx, id)
}

// GetByIDs returns the comments found among ids.
func (r *CommentRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Comment, 0, len(ids))
	for _, id := range ids {
		if rec, ok := r.s.comments[id]; ok {
			out = append(out, rec.clone())
		}
	}
	return out, nil
}

// ListRoots returns non-deleted roots, newest first.
func (r *CommentRepo) ListRoots(_ context.Context) ([]domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.Comment
	for _, rec := range r.s.comments {
		if rec.ParentID == nil && rec.DeletedAt == nil {
			out = append(out, rec.clone())
		}
	}
	slices.SortFunc(out, func(a, b domain.Comment) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID.String(), a.ID.String())
	})
	return out, nil
}

// ListReplies returns every direct reply of parentIDs, deleted ones included,
// oldest first.
func (r *CommentRepo) ListReplies(_ context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error) {
	if len(parentIDs) == 0 {
		return []domain.Comment{}, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.Comment
	for _, rec := range r.s.comments {
		if rec.ParentID != nil && slices.Contains(parentIDs, *rec.ParentID) {
			out = append(out, rec.clone())
		}
	}
	slices.SortFunc(out, func(a, b domain.Comment) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create stores a new comment. The author and the parent, if any, must exist.
func (r *CommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	if strings.TrimSpace(c.Content) == "" {
		return nil, fmt.Errorf("comment %s: %w", c.ID, domain.ErrValidation)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[c.ID]; ok {
		return nil, fmt.Errorf("comment %s: %w", c.ID, domain.ErrAlreadyExists)
	}
	if _, ok := r.s.users[c.AuthorID]; !ok {
		return nil, fmt.Errorf("comment %s: author %s: %w", c.ID, c.AuthorID, domain.ErrNotFound)
	}
	if c.ParentID != nil {
		if _, ok := r.s.comments[*c.ParentID]; !ok {
			return nil, fmt.Errorf("comment %s: parent %s: %w", c.ID, *c.ParentID, domain.ErrNotFound)
		}
	}

	rec := commentRecord{Comment: *c}
	r.s.comments[c.ID] = commentRecord{Comment: rec.clone()}
	out := rec.clone()
	return &out, nil
}

// UpdateContent replaces content and updatedAt.
func (r *CommentRepo) UpdateContent(_ context.Context, id uuid.UUID, content string, updatedAt time.Time) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment %s: %w", id, domain.ErrValidation)
	}
	return r.update(id, func(c *domain.Comment) {
		c.Content = content
		c.UpdatedAt = updatedAt
	})
}

// UpdateDeletion sets or clears deletedAt.
func (r *CommentRepo) UpdateDeletion(_ context.Context, id uuid.UUID, deletedAt *time.Time) (*domain.Comment, error) {
	return r.update(id, func(c *domain.Comment) {
		if deletedAt == nil {
			c.DeletedAt = nil
			return
		}
		d := *deletedAt
		c.DeletedAt = &d
	})
}

func (r *CommentRepo) update(id uuid.UUID, fn func(*domain.Comment)) (*domain.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	c := rec.clone()
	fn(&c)
	r.s.comments[id] = commentRecord{Comment: c}

	out := commentRecord{Comment: c}.clone()
	return &out, nil
}
