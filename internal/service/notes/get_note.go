package notes

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// NoteDetail bundles a note with its comments for the detail view.
type NoteDetail struct {
	Note     *domain.Note
	Comments []domain.Comment
}

// GetNote returns one note with its comments. Reads are open to anonymous
// visitors; LikedByMe reflects the viewer when one is authenticated.
func (s *Service) GetNote(ctx context.Context, noteID uuid.UUID) (*NoteDetail, error) {
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	if noteID == uuid.Nil {
		return nil, domain.NewValidationError("note_id", "required")
	}

	note, err := s.notes.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	comments, err := s.comments.ListByItem(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &NoteDetail{Note: note, Comments: comments}, nil
}
