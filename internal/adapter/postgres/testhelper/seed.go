package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username/email.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		Email:        "testuser-" + suffix + "@uoi.gr",
		PasswordHash: "$2a$04$notarealhash" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedPost creates a forum post owned by userID. createdAt controls listing
// order; pass time.Time{} for "now".
func SeedPost(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, topic domain.Topic, createdAt time.Time) domain.Post {
	t.Helper()
	ctx := context.Background()

	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	post := domain.Post{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Topic:     topic,
		Content:   "content of " + title,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO posts (id, user_id, title, topic, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		post.ID, post.UserID, post.Title, string(post.Topic), post.Content, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost insert post: %v", err)
	}

	return post
}

// SeedNote creates a note owned by userID. createdAt controls listing order;
// pass time.Time{} for "now".
func SeedNote(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, dept domain.Department, createdAt time.Time) domain.Note {
	t.Helper()
	ctx := context.Background()

	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	note := domain.Note{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      title,
		Department: dept,
		Content:    "content of " + title,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO notes (id, user_id, title, department, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		note.ID, note.UserID, note.Title, string(note.Department), note.Content, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert note: %v", err)
	}

	return note
}

// SeedPostComment attaches a comment by userID to a post.
func SeedPostComment(t *testing.T, pool *pgxpool.Pool, postID, userID uuid.UUID, content string) domain.Comment {
	t.Helper()
	return seedComment(t, pool, "post_comments", "post_id", postID, userID, content)
}

// SeedNoteComment attaches a comment by userID to a note.
func SeedNoteComment(t *testing.T, pool *pgxpool.Pool, noteID, userID uuid.UUID, content string) domain.Comment {
	t.Helper()
	return seedComment(t, pool, "note_comments", "note_id", noteID, userID, content)
}

func seedComment(t *testing.T, pool *pgxpool.Pool, table, parentCol string, itemID, userID uuid.UUID, content string) domain.Comment {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	comment := domain.Comment{
		ID:        uuid.New(),
		ItemID:    itemID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO `+table+` (id, `+parentCol+`, user_id, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		comment.ID, comment.ItemID, comment.UserID, comment.Content, comment.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seedComment insert into %s: %v", table, err)
	}

	return comment
}

// SeedPostLike adds userID to the like set of a post.
func SeedPostLike(t *testing.T, pool *pgxpool.Pool, postID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)`,
		postID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPostLike: %v", err)
	}
}

// SeedNoteLike adds userID to the like set of a note.
func SeedNoteLike(t *testing.T, pool *pgxpool.Pool, noteID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO note_likes (note_id, user_id) VALUES ($1, $2)`,
		noteID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNoteLike: %v", err)
	}
}
