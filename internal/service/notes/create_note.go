package notes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// CreateNote shares a new note owned by the authenticated user. The
// attachment, if any, was uploaded beforehand; only its URL is stored here.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	note, err := s.notes.Create(ctx, &domain.Note{
		UserID:     userID,
		Title:      strings.TrimSpace(input.Title),
		Department: domain.Department(input.Department),
		Content:    strings.TrimSpace(input.Content),
		FileURL:    trimOrNil(input.FileURL),
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID.String()),
		slog.String("note_id", note.ID.String()),
		slog.String("department", note.Department.String()),
	)

	return note, nil
}
