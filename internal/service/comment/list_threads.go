package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
	"github.com/heartmarshall/threadline-backend/internal/service/thread"
)

// ListThreads returns every non-deleted root, newest first, with its full
// reply tree. Deleted replies stay in the tree.
func (s *Service) ListThreads(ctx context.Context) ([]*domain.ThreadNode, error) {
	roots, err := s.comments.ListRoots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roots: %w", err)
	}
	if len(roots) == 0 {
		return []*domain.ThreadNode{}, nil
	}

	replies, err := s.descendants(ctx, roots)
	if err != nil {
		return nil, err
	}

	return thread.Assemble(roots, replies), nil
}

// GetThread returns one comment, deleted or not, with its reply tree.
func (s *Service) GetThread(ctx context.Context, commentID uuid.UUID) (*domain.ThreadNode, error) {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	replies, err := s.descendants(ctx, []domain.Comment{*c})
	if err != nil {
		return nil, err
	}

	return thread.Assemble([]domain.Comment{*c}, replies)[0], nil
}

// descendants loads replies level by level, one query per depth.
func (s *Service) descendants(ctx context.Context, from []domain.Comment) ([]domain.Comment, error) {
	seen := make(map[uuid.UUID]bool, len(from))
	frontier := make([]uuid.UUID, 0, len(from))
	for _, c := range from {
		seen[c.ID] = true
		frontier = append(frontier, c.ID)
	}

	var all []domain.Comment
	for len(frontier) > 0 {
		level, err := s.comments.ListReplies(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("list replies: %w", err)
		}

		var next []uuid.UUID
		for _, c := range level {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			all = append(all, c)
			next = append(next, c.ID)
		}
		frontier = next
	}
	return all, nil
}
