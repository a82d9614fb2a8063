package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommentStatus is derived from DeletedAt and never stored.
type CommentStatus string

const (
	CommentStatusActive  CommentStatus = "ACTIVE"
	CommentStatusDeleted CommentStatus = "DELETED"
)

func (s CommentStatus) String() string { return string(s) }

// IsValid checks if the CommentStatus is a known value.
func (s CommentStatus) IsValid() bool {
	switch s {
	case CommentStatusActive, CommentStatusDeleted:
		return true
	}
	return false
}

// Comment is a single post in a thread. A non-nil ParentID makes it a reply.
type Comment struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	ParentID  *uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted reports whether the comment is a tombstone.
func (c *Comment) IsDeleted() bool {
	return c.DeletedAt != nil
}

// IsReply reports whether the comment has a parent.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

// Status returns the derived lifecycle status.
func (c *Comment) Status() CommentStatus {
	if c.IsDeleted() {
		return CommentStatusDeleted
	}
	return CommentStatusActive
}

// IsAuthor reports whether userID wrote the comment.
func (c *Comment) IsAuthor(userID uuid.UUID) bool {
	return c.AuthorID == userID
}

// ThreadNode is a comment with its ordered replies.
type ThreadNode struct {
	Comment Comment
	Replies []*ThreadNode
}

// Redacted reports whether the node renders as a [deleted] placeholder.
func (n *ThreadNode) Redacted() bool {
	return n.Comment.IsDeleted()
}

// Walk visits the node and its descendants depth-first, parents before children.
func (n *ThreadNode) Walk(fn func(*ThreadNode)) {
	fn(n)
	for _, r := range n.Replies {
		r.Walk(fn)
	}
}
