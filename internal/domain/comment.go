package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply attached to exactly one post or note for its entire
// lifetime. Comments are immutable after creation; they disappear only when
// their parent (or their author) is deleted.
type Comment struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time

	// AuthorName is the display name of the comment author, populated on reads.
	AuthorName string
}
