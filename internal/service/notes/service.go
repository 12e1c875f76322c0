// Package notes implements the lecture notes use cases: sharing notes with
// optional attachments, comments and the like toggle.
package notes

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/domain"
)

type noteRepo interface {
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	GetByID(ctx context.Context, noteID, viewerID uuid.UUID) (*domain.Note, error)
	Update(ctx context.Context, userID, noteID uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
	List(ctx context.Context, filter domain.ListFilter, viewerID uuid.UUID, offset, limit int) ([]domain.Note, error)
	Count(ctx context.Context, filter domain.ListFilter) (int, error)
	ToggleLike(ctx context.Context, noteID, userID uuid.UUID) (bool, int, error)
}

type commentRepo interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Comment, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type notifier interface {
	SendCommentNotification(ctx context.Context, to, ownerName, commenterName, kind, title, path string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides note operations.
type Service struct {
	notes    noteRepo
	comments commentRepo
	users    userRepo
	mail     notifier
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new notes service.
func NewService(
	log *slog.Logger,
	notes noteRepo,
	comments commentRepo,
	users userRepo,
	mail notifier,
	tx txManager,
) *Service {
	return &Service{
		notes:    notes,
		comments: comments,
		users:    users,
		mail:     mail,
		tx:       tx,
		log:      log.With("service", "notes"),
	}
}

// ToggleLikeResult holds the outcome of a like toggle.
type ToggleLikeResult struct {
	Liked     bool
	LikeCount int
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
