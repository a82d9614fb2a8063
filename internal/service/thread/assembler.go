// Package thread builds ordered reply trees from a flat comment snapshot.
package thread

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
)

// Assemble returns one tree per root. Roots are ordered newest first and
// replies under each parent oldest first; equal timestamps fall back to id
// order. comments may include the roots themselves and any unrelated rows,
// which are ignored. Deleted replies stay in the tree.
//
// The inputs are not modified.
func Assemble(roots, comments []domain.Comment) []*domain.ThreadNode {
	children := make(map[uuid.UUID][]domain.Comment)
	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c)
	}
	for _, list := range children {
		slices.SortFunc(list, oldestFirst)
	}

	ordered := slices.Clone(roots)
	slices.SortFunc(ordered, func(a, b domain.Comment) int { return oldestFirst(b, a) })

	visited := make(map[uuid.UUID]bool, len(comments))
	out := make([]*domain.ThreadNode, 0, len(ordered))
	for _, r := range ordered {
		if visited[r.ID] {
			continue
		}
		out = append(out, build(r, children, visited))
	}
	return out
}

func build(c domain.Comment, children map[uuid.UUID][]domain.Comment, visited map[uuid.UUID]bool) *domain.ThreadNode {
	visited[c.ID] = true
	node := &domain.ThreadNode{Comment: c, Replies: []*domain.ThreadNode{}}
	for _, child := range children[c.ID] {
		if visited[child.ID] {
			continue
		}
		node.Replies = append(node.Replies, build(child, children, visited))
	}
	return node
}

func oldestFirst(a, b domain.Comment) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}
