// Package comment implements comment persistence for forum posts and notes.
// Both comment tables share the same shape, so a single repository is
// instantiated once per table.
package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/campushub/campushub-backend/internal/adapter/postgres"
	"github.com/campushub/campushub-backend/internal/domain"
)

// Repo provides comment persistence for one comment table.
type Repo struct {
	pool      *pgxpool.Pool
	table     string
	parentCol string
}

// NewForPosts creates a repository over the forum post comments table.
func NewForPosts(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, table: "post_comments", parentCol: "post_id"}
}

// NewForNotes creates a repository over the note comments table.
func NewForNotes(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, table: "note_comments", parentCol: "note_id"}
}

// Create inserts a comment under the given parent item. A missing parent
// surfaces as domain.ErrNotFound via the foreign key.
func (r *Repo) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := comment.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, %s, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, %s, user_id, content, created_at`,
		r.table, r.parentCol, r.parentCol)

	row := querier.QueryRow(ctx, query, id, comment.ItemID, comment.UserID, comment.Content)

	var c domain.Comment
	if err := row.Scan(&c.ID, &c.ItemID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
		return nil, mapError(err, id)
	}

	return &c, nil
}

// ListByItem returns all comments under an item, oldest first, with the
// author's username joined in for display.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := fmt.Sprintf(`
		SELECT c.id, c.%s, c.user_id, c.content, c.created_at, u.username
		FROM %s c
		JOIN users u ON u.id = c.user_id
		WHERE c.%s = $1
		ORDER BY c.created_at ASC, c.id ASC`,
		r.parentCol, r.table, r.parentCol)

	rows, err := querier.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var result []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ItemID, &c.UserID, &c.Content, &c.CreatedAt, &c.AuthorName); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	if result == nil {
		result = []domain.Comment{}
	}

	return result, nil
}

func mapError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("comment %s: %w", id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("comment %s: %w", id, domain.ErrAlreadyExists)
		case "23503":
			return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
		case "23514":
			return fmt.Errorf("comment %s: %w", id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("comment %s: %w", id, err)
}
