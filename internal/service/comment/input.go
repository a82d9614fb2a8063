package comment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
)

// CreateCommentInput holds the parameters for creating a comment.
type CreateCommentInput struct {
	Content  string
	ParentID *uuid.UUID // nil = root comment
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate(maxLen int) error {
	var errs []domain.FieldError

	errs = validateContent(errs, i.Content, maxLen)
	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditCommentInput holds the parameters for editing a comment.
type EditCommentInput struct {
	CommentID uuid.UUID
	Content   string
}

// Validate checks all fields and collects all errors.
func (i EditCommentInput) Validate(maxLen int) error {
	var errs []domain.FieldError

	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	errs = validateContent(errs, i.Content, maxLen)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateContent(errs []domain.FieldError, content string, maxLen int) []domain.FieldError {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", maxLen)})
	}
	return errs
}
