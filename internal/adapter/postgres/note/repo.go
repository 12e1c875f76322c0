// Package note implements the notes repository using PostgreSQL.
package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/campushub/campushub-backend/internal/adapter/postgres"
	"github.com/campushub/campushub-backend/internal/domain"
)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func selectBuilder(viewerID uuid.UUID) sq.SelectBuilder {
	return builder.
		Select(
			"n.id", "n.user_id", "n.title", "n.department", "n.content", "n.file_url",
			"n.created_at", "n.updated_at",
			"(SELECT count(*) FROM note_likes nl WHERE nl.note_id = n.id) AS like_count",
		).
		Column("EXISTS(SELECT 1 FROM note_likes nl WHERE nl.note_id = n.id AND nl.user_id = ?) AS liked_by_me", viewerID).
		From("notes n")
}

func applyFilter(q sq.SelectBuilder, filter domain.ListFilter) sq.SelectBuilder {
	if filter.HasSearch() {
		q = q.Where(sq.ILike{"n.title": "%" + postgres.EscapeLike(*filter.Search) + "%"})
	}
	if filter.Department != nil {
		q = q.Where(sq.Eq{"n.department": string(*filter.Department)})
	}
	return q
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a note with its like count and the viewer's like membership.
// Returns domain.ErrNotFound if the note does not exist.
func (r *Repo) GetByID(ctx context.Context, noteID, viewerID uuid.UUID) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := selectBuilder(viewerID).Where(sq.Eq{"n.id": noteID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get note query: %w", err)
	}

	row := querier.QueryRow(ctx, query, args...)
	n, err := scanNote(row)
	if err != nil {
		return nil, mapError(err, "note", noteID)
	}

	return n, nil
}

// List returns one page slice of notes matching the filter, most recent
// first, id ascending on equal timestamps. Returns an empty slice (not nil)
// when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.ListFilter, viewerID uuid.UUID, offset, limit int) ([]domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := applyFilter(selectBuilder(viewerID), filter).
		OrderBy("n.created_at DESC", "n.id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notes query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes, err := scanNotes(rows)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

// Count returns the number of notes matching the filter (ignoring paging).
func (r *Repo) Count(ctx context.Context, filter domain.ListFilter) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := applyFilter(builder.Select("count(*)").From("notes n"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count notes query: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertNoteSQL = `
INSERT INTO notes (id, user_id, title, department, content, file_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING id, user_id, title, department, content, file_url, created_at, updated_at`

// Create inserts a new note and returns the persisted domain.Note.
func (r *Repo) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := note.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := querier.QueryRow(ctx, insertNoteSQL,
		id, note.UserID, note.Title, string(note.Department), note.Content,
		ptrStringToPgText(note.FileURL), time.Now().UTC())

	created, err := scanNoteBase(row)
	if err != nil {
		return nil, mapError(err, "note", id)
	}

	return created, nil
}

const updateNoteSQL = `
UPDATE notes
SET title      = COALESCE($3, title),
    department = COALESCE($4, department),
    content    = COALESCE($5, content),
    file_url   = CASE WHEN $6::bool THEN $7 ELSE file_url END,
    updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, title, department, content, file_url, created_at, updated_at`

// Update modifies a note's mutable fields; nil params keep the stored value,
// and FileURL = ptr("") clears the attachment. Scoped by (id, user_id): a
// non-owner gets domain.ErrNotFound, same as a missing id. Owner and
// created_at are never touched.
func (r *Repo) Update(ctx context.Context, userID, noteID uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	setFile := params.FileURL != nil
	var fileURL pgtype.Text
	if setFile && *params.FileURL != "" {
		fileURL = pgtype.Text{String: *params.FileURL, Valid: true}
	}

	row := querier.QueryRow(ctx, updateNoteSQL,
		noteID, userID, params.Title, (*string)(params.Department), params.Content,
		setFile, fileURL)

	updated, err := scanNoteBase(row)
	if err != nil {
		return nil, mapError(err, "note", noteID)
	}

	return updated, nil
}

const deleteNoteSQL = `DELETE FROM notes WHERE id = $1 AND user_id = $2`

// Delete removes a note; comments and likes go with it via CASCADE.
// Same (id, user_id) scoping as Update.
func (r *Repo) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteNoteSQL, noteID, userID)
	if err != nil {
		return mapError(err, "note", noteID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Like set
// ---------------------------------------------------------------------------

const (
	likeInsertSQL = `INSERT INTO note_likes (note_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	likeDeleteSQL = `DELETE FROM note_likes WHERE note_id = $1 AND user_id = $2`
	likeCountSQL  = `SELECT count(*) FROM note_likes WHERE note_id = $1`
)

// ToggleLike flips the actor's membership in the note's like set and returns
// the new membership plus cardinality. See the post repo for the concurrency
// reasoning; the composite primary key serializes same-pair toggles.
func (r *Repo) ToggleLike(ctx context.Context, noteID, userID uuid.UUID) (bool, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, likeInsertSQL, noteID, userID)
	if err != nil {
		return false, 0, mapError(err, "note", noteID)
	}

	liked := tag.RowsAffected() == 1
	if !liked {
		if _, err := querier.Exec(ctx, likeDeleteSQL, noteID, userID); err != nil {
			return false, 0, mapError(err, "note", noteID)
		}
	}

	var count int
	if err := querier.QueryRow(ctx, likeCountSQL, noteID).Scan(&count); err != nil {
		return false, 0, fmt.Errorf("count note likes: %w", err)
	}

	return liked, count, nil
}

// Exists reports whether a note with the given id exists, regardless of owner.
func (r *Repo) Exists(ctx context.Context, noteID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM notes WHERE id = $1)`, noteID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("note exists: %w", err)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanNote(row pgx.Row) (*domain.Note, error) {
	var (
		n       domain.Note
		dept    string
		fileURL pgtype.Text
	)

	err := row.Scan(&n.ID, &n.UserID, &n.Title, &dept, &n.Content, &fileURL,
		&n.CreatedAt, &n.UpdatedAt, &n.LikeCount, &n.LikedByMe)
	if err != nil {
		return nil, err
	}

	n.Department = domain.Department(dept)
	if fileURL.Valid {
		n.FileURL = &fileURL.String
	}

	return &n, nil
}

func scanNoteBase(row pgx.Row) (*domain.Note, error) {
	var (
		n       domain.Note
		dept    string
		fileURL pgtype.Text
	)

	err := row.Scan(&n.ID, &n.UserID, &n.Title, &dept, &n.Content, &fileURL,
		&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}

	n.Department = domain.Department(dept)
	if fileURL.Valid {
		n.FileURL = &fileURL.String
	}

	return &n, nil
}

func scanNotes(rows pgx.Rows) ([]domain.Note, error) {
	var result []domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Note{}
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

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503":
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514":
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
