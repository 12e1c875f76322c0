package notes

import (
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/domain"
)

const (
	maxTitleLen   = 100
	maxContentLen = 20000
	maxFileURLLen = 1024
)

// CreateNoteInput holds the parameters for sharing a note.
type CreateNoteInput struct {
	Title      string
	Department string
	Content    string
	FileURL    *string
}

// Validate checks all fields and collects all errors.
func (i CreateNoteInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}

	if !domain.Department(i.Department).IsValid() {
		errs = append(errs, domain.FieldError{Field: "department", Message: "unknown department"})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 20000 characters"})
	}

	if i.FileURL != nil && len(*i.FileURL) > maxFileURLLen {
		errs = append(errs, domain.FieldError{Field: "file_url", Message: "max 1024 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateNoteInput holds the parameters for editing a note. Nil fields are
// left unchanged; FileURL = ptr("") removes the attachment.
type UpdateNoteInput struct {
	NoteID     uuid.UUID
	Title      *string
	Department *string
	Content    *string
	FileURL    *string
}

// Validate checks all fields and collects all errors.
func (i UpdateNoteInput) Validate() error {
	var errs []domain.FieldError

	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}
	if i.Title == nil && i.Department == nil && i.Content == nil && i.FileURL == nil {
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
	if i.Department != nil && !domain.Department(*i.Department).IsValid() {
		errs = append(errs, domain.FieldError{Field: "department", Message: "unknown department"})
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
	if i.FileURL != nil && len(*i.FileURL) > maxFileURLLen {
		errs = append(errs, domain.FieldError{Field: "file_url", Message: "max 1024 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteNoteInput holds the parameters for deleting a note.
type DeleteNoteInput struct {
	NoteID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteNoteInput) Validate() error {
	if i.NoteID == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}
	return nil
}

// ListNotesInput holds the filter parameters for the note listing.
type ListNotesInput struct {
	Search     *string
	Department *string
	Page       int
}

// Validate checks all fields and collects all errors.
func (i ListNotesInput) Validate() error {
	if i.Department != nil && !domain.Department(*i.Department).IsValid() {
		return domain.NewValidationError("department", "unknown department")
	}
	return nil
}

// ToggleLikeInput holds the parameters for toggling a like on a note.
type ToggleLikeInput struct {
	NoteID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ToggleLikeInput) Validate() error {
	if i.NoteID == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}
	return nil
}

// CreateCommentInput holds the parameters for commenting on a note.
type CreateCommentInput struct {
	NoteID  uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
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
