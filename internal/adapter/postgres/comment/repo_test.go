package comment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/adapter/postgres/comment"
	"github.com/campushub/campushub-backend/internal/adapter/postgres/testhelper"
	"github.com/campushub/campushub-backend/internal/domain"
)

func TestRepo_Create_AndListByItem(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := comment.NewForPosts(pool)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	author := testhelper.SeedUser(t, pool)
	p := testhelper.SeedPost(t, pool, owner.ID, "commented post", domain.TopicSoftware, time.Time{})

	first, err := repo.Create(ctx, &domain.Comment{ItemID: p.ID, UserID: author.ID, Content: "first!"})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Error("expected non-nil comment ID")
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}

	second, err := repo.Create(ctx, &domain.Comment{ItemID: p.ID, UserID: owner.ID, Content: "thanks"})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	got, err := repo.ListByItem(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByItem: got %d comments, want 2", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Error("comments should come back oldest first")
	}
	if got[0].AuthorName != author.Username {
		t.Errorf("AuthorName: got %q, want %q", got[0].AuthorName, author.Username)
	}
}

func TestRepo_Create_MissingParent(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := comment.NewForPosts(pool)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	_, err := repo.Create(ctx, &domain.Comment{ItemID: uuid.New(), UserID: user.ID, Content: "orphan"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound via foreign key, got %v", err)
	}
}

func TestRepo_ListByItem_Empty(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := comment.NewForNotes(pool)
	ctx := context.Background()

	got, err := repo.ListByItem(ctx, uuid.New())
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	if got == nil {
		t.Error("ListByItem should return an empty slice, not nil")
	}
}

func TestRepo_NoteComments(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := comment.NewForNotes(pool)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	n := testhelper.SeedNote(t, pool, owner.ID, "commented note", domain.DepartmentSciences, time.Time{})

	created, err := repo.Create(ctx, &domain.Comment{ItemID: n.ID, UserID: owner.ID, Content: "self note"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ListByItem(ctx, n.ID)
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	if len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("ListByItem: got %d comments, want the created one", len(got))
	}
}
