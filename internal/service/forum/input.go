package forum

import (
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/domain"
)

const (
	maxTitleLen   = 100
	maxContentLen = 20000
)

// CreatePostInput holds the parameters for creating a forum post.
type CreatePostInput struct {
	Title   string
	Topic   string
	Content string
}

// Validate checks all fields and collects all errors.
func (i CreatePostInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}

	if !domain.Topic(i.Topic).IsValid() {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "unknown topic"})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 20000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePostInput holds the parameters for updating a forum post.
// Nil fields are left unchanged.
type UpdatePostInput struct {
	PostID  uuid.UUID
	Title   *string
	Topic   *string
	Content *string
}

// Validate checks all fields and collects all errors.
func (i UpdatePostInput) Validate() error {
	var errs []domain.FieldError

	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if i.Title == nil && i.Topic == nil && i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
		}
	}
	if i.Topic != nil && !domain.Topic(*i.Topic).IsValid() {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "unknown topic"})
	}
	if i.Content != nil {
		content := strings.TrimSpace(*i.Content)
		if content == "" {
			errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
		}
		if len(content) > maxContentLen {
			errs = append(errs, domain.FieldError{Field: "content", Message: "max 20000 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeletePostInput holds the parameters for deleting a forum post.
type DeletePostInput struct {
	PostID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeletePostInput) Validate() error {
	if i.PostID == uuid.Nil {
		return domain.NewValidationError("post_id", "required")
	}
	return nil
}

// ListPostsInput holds the filter parameters for the post listing.
type ListPostsInput struct {
	Search *string
	Topic  *string
	Page   int
}

// Validate checks all fields and collects all errors.
func (i ListPostsInput) Validate() error {
	if i.Topic != nil && !domain.Topic(*i.Topic).IsValid() {
		return domain.NewValidationError("topic", "unknown topic")
	}
	return nil
}

// ToggleLikeInput holds the parameters for toggling a like on a post.
type ToggleLikeInput struct {
	PostID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ToggleLikeInput) Validate() error {
	if i.PostID == uuid.Nil {
		return domain.NewValidationError("post_id", "required")
	}
	return nil
}

// CreateReplyInput holds the parameters for replying to a forum post.
type CreateReplyInput struct {
	PostID  uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors.
func (i CreateReplyInput) Validate() error {
	var errs []domain.FieldError

	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 20000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
