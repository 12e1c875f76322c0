package notes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// DeleteNote removes a note the authenticated user owns, along with its
// comments and likes. Non-owners get domain.ErrNotFound.
func (s *Service) DeleteNote(ctx context.Context, input DeleteNoteInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, userID, input.NoteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()),
	)

	return nil
}
