// Package post implements the forum post repository using PostgreSQL.
// It provides CRUD scoped by ownership, the filtered/paginated listing
// query, and atomic like-set toggling via the post_likes join table.
package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/campushub/campushub-backend/internal/adapter/postgres"
	"github.com/campushub/campushub-backend/internal/domain"
)

// Repo provides forum post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectBuilder returns the post projection including the like-set
// cardinality and the viewer's membership. viewerID may be uuid.Nil for
// anonymous reads, in which case liked_by_me is always false.
func selectBuilder(viewerID uuid.UUID) sq.SelectBuilder {
	return builder.
		Select(
			"p.id", "p.user_id", "p.title", "p.topic", "p.content",
			"p.created_at", "p.updated_at",
			"(SELECT count(*) FROM post_likes pl WHERE pl.post_id = p.id) AS like_count",
		).
		Column("EXISTS(SELECT 1 FROM post_likes pl WHERE pl.post_id = p.id AND pl.user_id = ?) AS liked_by_me", viewerID).
		From("posts p")
}

// applyFilter adds the conjunctive listing filters to a select or count query.
func applyFilter(q sq.SelectBuilder, filter domain.ListFilter) sq.SelectBuilder {
	if filter.HasSearch() {
		q = q.Where(sq.ILike{"p.title": "%" + postgres.EscapeLike(*filter.Search) + "%"})
	}
	if filter.Topic != nil {
		q = q.Where(sq.Eq{"p.topic": string(*filter.Topic)})
	}
	return q
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a post by primary key with its like count and the viewer's
// like membership. Returns domain.ErrNotFound if the post does not exist.
func (r *Repo) GetByID(ctx context.Context, postID, viewerID uuid.UUID) (*domain.Post, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := selectBuilder(viewerID).Where(sq.Eq{"p.id": postID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get post query: %w", err)
	}

	row := querier.QueryRow(ctx, query, args...)
	p, err := scanPost(row)
	if err != nil {
		return nil, mapError(err, "post", postID)
	}

	return p, nil
}

// List returns one page slice of posts matching the filter, ordered most
// recent first with id as a deterministic tiebreak. The filter is applied
// conjunctively; offset/limit bound the slice. Returns an empty slice (not
// nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.ListFilter, viewerID uuid.UUID, offset, limit int) ([]domain.Post, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := applyFilter(selectBuilder(viewerID), filter).
		OrderBy("p.created_at DESC", "p.id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list posts query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

// Count returns the number of posts matching the filter (ignoring paging).
func (r *Repo) Count(ctx context.Context, filter domain.ListFilter) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := applyFilter(builder.Select("count(*)").From("posts p"), filter)

	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count posts query: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertPostSQL = `
INSERT INTO posts (id, user_id, title, topic, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING id, user_id, title, topic, content, created_at, updated_at`

// Create inserts a new post and returns the persisted domain.Post.
func (r *Repo) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := post.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := querier.QueryRow(ctx, insertPostSQL,
		id, post.UserID, post.Title, string(post.Topic), post.Content, time.Now().UTC())

	created, err := scanPostBase(row)
	if err != nil {
		return nil, mapError(err, "post", id)
	}

	return created, nil
}

const updatePostSQL = `
UPDATE posts
SET title      = COALESCE($3, title),
    topic      = COALESCE($4, topic),
    content    = COALESCE($5, content),
    updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, title, topic, content, created_at, updated_at`

// Update modifies a post's title/topic/content; nil params keep the stored
// value. The statement is scoped by (id, user_id): a non-owner's attempt
// matches zero rows and surfaces as domain.ErrNotFound, indistinguishable
// from a missing id. Owner and created_at are never touched.
func (r *Repo) Update(ctx context.Context, userID, postID uuid.UUID, params domain.PostUpdateParams) (*domain.Post, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updatePostSQL,
		postID, userID, params.Title, (*string)(params.Topic), params.Content)

	updated, err := scanPostBase(row)
	if err != nil {
		return nil, mapError(err, "post", postID)
	}

	return updated, nil
}

const deletePostSQL = `DELETE FROM posts WHERE id = $1 AND user_id = $2`

// Delete removes a post; comments and likes go with it via CASCADE.
// Scoped by (id, user_id) like Update: zero rows affected means
// domain.ErrNotFound whether the post is missing or owned by someone else.
func (r *Repo) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deletePostSQL, postID, userID)
	if err != nil {
		return mapError(err, "post", postID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Like set
// ---------------------------------------------------------------------------

const (
	likeInsertSQL = `INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	likeDeleteSQL = `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`
	likeCountSQL  = `SELECT count(*) FROM post_likes WHERE post_id = $1`
)

// ToggleLike flips the actor's membership in the post's like set and returns
// the new membership plus cardinality. The conditional insert keyed on the
// composite primary key is what serializes concurrent toggles by the same
// actor; callers wrap this in a transaction so the membership flip and the
// count read commit together. A missing post surfaces as domain.ErrNotFound
// via the foreign key.
func (r *Repo) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, likeInsertSQL, postID, userID)
	if err != nil {
		return false, 0, mapError(err, "post", postID)
	}

	liked := tag.RowsAffected() == 1
	if !liked {
		// Already a member: this toggle is an unlike.
		if _, err := querier.Exec(ctx, likeDeleteSQL, postID, userID); err != nil {
			return false, 0, mapError(err, "post", postID)
		}
	}

	var count int
	if err := querier.QueryRow(ctx, likeCountSQL, postID).Scan(&count); err != nil {
		return false, 0, fmt.Errorf("count post likes: %w", err)
	}

	return liked, count, nil
}

// Exists reports whether a post with the given id exists, regardless of owner.
func (r *Repo) Exists(ctx context.Context, postID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("post exists: %w", err)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanPost scans a single row from the full projection (base columns plus
// like_count and liked_by_me).
func scanPost(row pgx.Row) (*domain.Post, error) {
	var (
		p     domain.Post
		topic string
	)

	err := row.Scan(&p.ID, &p.UserID, &p.Title, &topic, &p.Content,
		&p.CreatedAt, &p.UpdatedAt, &p.LikeCount, &p.LikedByMe)
	if err != nil {
		return nil, err
	}

	p.Topic = domain.Topic(topic)
	return &p, nil
}

// scanPostBase scans a single row holding only the posts table columns.
func scanPostBase(row pgx.Row) (*domain.Post, error) {
	var (
		p     domain.Post
		topic string
	)

	err := row.Scan(&p.ID, &p.UserID, &p.Title, &topic, &p.Content,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.Topic = domain.Topic(topic)
	return &p, nil
}

// scanPosts scans multiple rows of the full projection.
func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	var result []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Post{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
