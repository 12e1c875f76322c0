package notes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// UpdateNote edits a note the authenticated user owns. Someone else's note
// comes back as domain.ErrNotFound, same as a missing one.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.NoteUpdateParams{
		Title:   trimOrNil(input.Title),
		Content: trimOrNil(input.Content),
	}
	if input.Department != nil {
		dept := domain.Department(*input.Department)
		params.Department = &dept
	}
	if input.FileURL != nil {
		// Empty string clears the attachment, so it must survive here.
		trimmed := strings.TrimSpace(*input.FileURL)
		params.FileURL = &trimmed
	}

	updated, err := s.notes.Update(ctx, userID, input.NoteID, params)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()),
	)

	return updated, nil
}
