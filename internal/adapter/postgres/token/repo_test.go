package token_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/adapter/postgres/testhelper"
	"github.com/campushub/campushub-backend/internal/adapter/postgres/token"
	"github.com/campushub/campushub-backend/internal/domain"
)

func newToken(userID uuid.UUID, ttl time.Duration) *domain.RefreshToken {
	return &domain.RefreshToken{
		UserID:    userID,
		TokenHash: "hash-" + uuid.New().String(),
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
}

func TestRepo_Create_AndGetByHash(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := token.New(pool)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	tok := newToken(user.ID, time.Hour)
	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByHash(ctx, tok.TokenHash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if got.UserID != user.ID {
		t.Errorf("UserID: got %s, want %s", got.UserID, user.ID)
	}
	if got.IsRevoked() {
		t.Error("fresh token should not be revoked")
	}
}

func TestRepo_GetByHash_ExpiredNotReturned(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := token.New(pool)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	tok := newToken(user.ID, -time.Minute)
	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := repo.GetByHash(ctx, tok.TokenHash)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for expired token, got %v", err)
	}
}

func TestRepo_RevokeByID(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := token.New(pool)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	tok := newToken(user.ID, time.Hour)
	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("Create: %v", err)
	}
	stored, err := repo.GetByHash(ctx, tok.TokenHash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}

	if err := repo.RevokeByID(ctx, stored.ID); err != nil {
		t.Fatalf("RevokeByID: %v", err)
	}
	if _, err := repo.GetByHash(ctx, tok.TokenHash); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for revoked token, got %v", err)
	}

	// Idempotent.
	if err := repo.RevokeByID(ctx, stored.ID); err != nil {
		t.Fatalf("RevokeByID repeat: %v", err)
	}
}

func TestRepo_RevokeAllByUser(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := token.New(pool)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)

	mine := []*domain.RefreshToken{newToken(user.ID, time.Hour), newToken(user.ID, time.Hour)}
	for _, tok := range mine {
		if err := repo.Create(ctx, tok); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	theirs := newToken(other.ID, time.Hour)
	if err := repo.Create(ctx, theirs); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.RevokeAllByUser(ctx, user.ID); err != nil {
		t.Fatalf("RevokeAllByUser: %v", err)
	}

	for i, tok := range mine {
		if _, err := repo.GetByHash(ctx, tok.TokenHash); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("token %d: expected ErrNotFound after revoke-all, got %v", i, err)
		}
	}
	if _, err := repo.GetByHash(ctx, theirs.TokenHash); err != nil {
		t.Errorf("other user's token should survive: %v", err)
	}
}

func TestRepo_DeleteExpired(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := token.New(pool)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	live := newToken(user.ID, time.Hour)
	expired := newToken(user.ID, -time.Hour)
	for _, tok := range []*domain.RefreshToken{live, expired} {
		if err := repo.Create(ctx, tok); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	// Other parallel tests may have expired tokens of their own, so only
	// check that ours went away and the live one survived.
	if _, err := repo.DeleteExpired(ctx); err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}

	var left int
	if err := pool.QueryRow(ctx,
		`SELECT count(*) FROM refresh_tokens WHERE token_hash = $1`, expired.TokenHash).Scan(&left); err != nil {
		t.Fatalf("count expired: %v", err)
	}
	if left != 0 {
		t.Error("expired token should have been deleted")
	}

	if _, err := repo.GetByHash(ctx, live.TokenHash); err != nil {
		t.Errorf("live token should survive: %v", err)
	}
}

func TestRepo_Create_DuplicateHash(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := token.New(pool)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	tok := newToken(user.ID, time.Hour)
	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := &domain.RefreshToken{UserID: user.ID, TokenHash: tok.TokenHash, ExpiresAt: tok.ExpiresAt}
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
