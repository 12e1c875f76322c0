// Package forum implements discussion board use cases: posts, replies and
// the like toggle.
package forum

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/domain"
)

type postRepo interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, postID, viewerID uuid.UUID) (*domain.Post, error)
	Update(ctx context.Context, userID, postID uuid.UUID, params domain.PostUpdateParams) (*domain.Post, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) error
	List(ctx context.Context, filter domain.ListFilter, viewerID uuid.UUID, offset, limit int) ([]domain.Post, error)
	Count(ctx context.Context, filter domain.ListFilter) (int, error)
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, int, error)
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

// Service provides forum post operations.
type Service struct {
	posts    postRepo
	comments commentRepo
	users    userRepo
	mail     notifier
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new forum service.
func NewService(
	log *slog.Logger,
	posts postRepo,
	comments commentRepo,
	users userRepo,
	mail notifier,
	tx txManager,
) *Service {
	return &Service{
		posts:    posts,
		comments: comments,
		users:    users,
		mail:     mail,
		tx:       tx,
		log:      log.With("service", "forum"),
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
