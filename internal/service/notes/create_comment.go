package notes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// CreateComment adds a comment under a note and notifies the note owner by
// email, unless they are commenting on their own note. Notification failures
// are logged and swallowed; the comment itself already committed.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	note, err := s.notes.GetByID(ctx, input.NoteID, userID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	comment, err := s.comments.Create(ctx, &domain.Comment{
		ItemID:  input.NoteID,
		UserID:  userID,
		Content: strings.TrimSpace(input.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "note comment created",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()),
		slog.String("comment_id", comment.ID.String()),
	)

	if note.UserID != userID {
		s.notifyOwner(ctx, note, userID)
	}

	return comment, nil
}

// notifyOwner emails the note owner about a new comment. Best effort only.
func (s *Service) notifyOwner(ctx context.Context, note *domain.Note, commenterID uuid.UUID) {
	owner, err := s.users.GetByID(ctx, note.UserID)
	if err != nil {
		s.log.WarnContext(ctx, "comment notification skipped",
			slog.String("note_id", note.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	commenter, err := s.users.GetByID(ctx, commenterID)
	if err != nil {
		s.log.WarnContext(ctx, "comment notification skipped",
			slog.String("note_id", note.ID.String()),
			slog.String("error", err.Error()))
		return
	}

	err = s.mail.SendCommentNotification(ctx,
		owner.Email, owner.Username, commenter.Username,
		"note", note.Title, "/notes/"+note.ID.String())
	if err != nil {
		s.log.WarnContext(ctx, "comment notification failed",
			slog.String("note_id", note.ID.String()),
			slog.String("error", err.Error()))
	}
}
