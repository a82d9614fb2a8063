package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultEditWindow bounds edit and delete, counted from CreatedAt.
	DefaultEditWindow = 15 * time.Minute
	// DefaultRestoreWindow bounds restore, counted from DeletedAt.
	DefaultRestoreWindow = 15 * time.Minute
)

// LifecyclePolicy decides which transitions a comment allows at a given instant.
// All predicates take now explicitly; the policy never reads a clock.
type LifecyclePolicy struct {
	EditWindow    time.Duration
	RestoreWindow time.Duration
}

// DefaultLifecyclePolicy returns the 15/15 minute policy.
func DefaultLifecyclePolicy() LifecyclePolicy {
	return LifecyclePolicy{
		EditWindow:    DefaultEditWindow,
		RestoreWindow: DefaultRestoreWindow,
	}
}

// CommentState is the set of legal transitions for a comment at one instant.
type CommentState struct {
	Status     CommentStatus
	Editable   bool
	Deletable  bool
	Restorable bool
}

// State evaluates every predicate for c at now.
func (p LifecyclePolicy) State(c *Comment, now time.Time) CommentState {
	return CommentState{
		Status:     c.Status(),
		Editable:   p.CanEdit(c, now),
		Deletable:  p.CanDelete(c, now),
		Restorable: p.CanRestore(c, now),
	}
}

func (p LifecyclePolicy) withinEditWindow(c *Comment, now time.Time) bool {
	return now.Sub(c.CreatedAt) < p.EditWindow
}

// CanEdit reports whether content may still be replaced.
func (p LifecyclePolicy) CanEdit(c *Comment, now time.Time) bool {
	return !c.IsDeleted() && p.withinEditWindow(c, now)
}

// CanDelete shares the edit gate: the window starts at creation.
func (p LifecyclePolicy) CanDelete(c *Comment, now time.Time) bool {
	return !c.IsDeleted() && p.withinEditWindow(c, now)
}

// CanRestore reports whether a tombstone may be revived. The window starts at deletion.
func (p LifecyclePolicy) CanRestore(c *Comment, now time.Time) bool {
	return c.IsDeleted() && now.Sub(*c.DeletedAt) < p.RestoreWindow
}

// CheckEdit returns a ForbiddenError naming the first gate that rejects an edit.
func (p LifecyclePolicy) CheckEdit(c *Comment, callerID uuid.UUID, now time.Time) error {
	return p.checkActiveWithinEditWindow(c, callerID, now)
}

// CheckDelete returns a ForbiddenError naming the first gate that rejects a delete.
func (p LifecyclePolicy) CheckDelete(c *Comment, callerID uuid.UUID, now time.Time) error {
	return p.checkActiveWithinEditWindow(c, callerID, now)
}

// checkActiveWithinEditWindow is the shared edit/delete gate: author, then
// not deleted, then inside the edit window.
func (p LifecyclePolicy) checkActiveWithinEditWindow(c *Comment, callerID uuid.UUID, now time.Time) error {
	if !c.IsAuthor(callerID) {
		return NewForbiddenError(ReasonNotAuthor)
	}
	if c.IsDeleted() {
		return NewForbiddenError(ReasonDeleted)
	}
	if !p.withinEditWindow(c, now) {
		return NewForbiddenError(ReasonEditWindowElapsed)
	}
	return nil
}

// CheckRestore returns a ForbiddenError naming the first gate that rejects a restore.
func (p LifecyclePolicy) CheckRestore(c *Comment, callerID uuid.UUID, now time.Time) error {
	if !c.IsAuthor(callerID) {
		return NewForbiddenError(ReasonNotAuthor)
	}
	if !c.IsDeleted() {
		return NewForbiddenError(ReasonNotDeleted)
	}
	if now.Sub(*c.DeletedAt) >= p.RestoreWindow {
		return NewForbiddenError(ReasonRestoreWindowElapsed)
	}
	return nil
}
