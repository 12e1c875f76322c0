package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a forum discussion post. Owner and CreatedAt are stamped once at
// creation and never change; edits touch only Title, Topic and Content.
type Post struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Topic     Topic
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// LikeCount is the current cardinality of the post's like set.
	LikeCount int
	// LikedByMe reports whether the requesting user likes the post.
	// Only populated on reads performed for an authenticated user.
	LikedByMe bool
}

// PostUpdateParams carries a partial update; nil fields are left unchanged.
type PostUpdateParams struct {
	Title   *string
	Topic   *Topic
	Content *string
}
