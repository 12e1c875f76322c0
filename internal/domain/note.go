package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is a shared study note, optionally carrying an attached file reference.
type Note struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Title      string
	Department Department
	Content    string
	// FileURL references an uploaded attachment. nil when the note has none.
	FileURL   *string
	CreatedAt time.Time
	UpdatedAt time.Time

	LikeCount int
	LikedByMe bool
}

// NoteUpdateParams carries a partial update; nil fields are left unchanged.
// FileURL set to ptr("") clears the attachment.
type NoteUpdateParams struct {
	Title      *string
	Department *Department
	Content    *string
	FileURL    *string
}
