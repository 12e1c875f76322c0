package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/internal/service/notes"
)

// notesService defines the minimal interface needed by NotesHandler.
type notesService interface {
	CreateNote(ctx context.Context, input notes.CreateNoteInput) (*domain.Note, error)
	GetNote(ctx context.Context, noteID uuid.UUID) (*notes.NoteDetail, error)
	UpdateNote(ctx context.Context, input notes.UpdateNoteInput) (*domain.Note, error)
	DeleteNote(ctx context.Context, input notes.DeleteNoteInput) error
	ListNotes(ctx context.Context, input notes.ListNotesInput) (*domain.Page[domain.Note], error)
	ToggleLike(ctx context.Context, input notes.ToggleLikeInput) (*notes.ToggleLikeResult, error)
	CreateComment(ctx context.Context, input notes.CreateCommentInput) (*domain.Comment, error)
}

// NotesHandler serves the lecture notes REST endpoints.
type NotesHandler struct {
	svc notesService
	log *slog.Logger
}

// NewNotesHandler creates a NotesHandler.
func NewNotesHandler(svc notesService, logger *slog.Logger) *NotesHandler {
	return &NotesHandler{svc: svc, log: logger.With("handler", "notes")}
}

type createNoteRequest struct {
	Title      string  `json:"title"`
	Department string  `json:"department"`
	Content    string  `json:"content"`
	FileURL    *string `json:"fileUrl"`
}

type updateNoteRequest struct {
	Title      *string `json:"title"`
	Department *string `json:"department"`
	Content    *string `json:"content"`
	FileURL    *string `json:"fileUrl"`
}

type createCommentRequest struct {
	Content string `json:"content"`
}

type noteResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	Title      string  `json:"title"`
	Department string  `json:"department"`
	Content    string  `json:"content"`
	FileURL    *string `json:"fileUrl,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
	LikeCount  int     `json:"likeCount"`
	LikedByMe  bool    `json:"likedByMe"`
}

type noteDetailResponse struct {
	noteResponse
	Comments []commentResponse `json:"comments"`
}

// List handles GET /notes.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	input := notes.ListNotesInput{Page: pageParam(r)}
	if s := r.URL.Query().Get("search_query"); s != "" {
		input.Search = &s
	}
	if dept := r.URL.Query().Get("department"); dept != "" {
		input.Department = &dept
	}

	page, err := h.svc.ListNotes(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]noteResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toNoteResponse(&page.Items[i]))
	}
	writeJSON(w, http.StatusOK, pageResponse[noteResponse]{
		Items:      items,
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		TotalPages: page.TotalPages,
	})
}

// Create handles POST /notes.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.svc.CreateNote(r.Context(), notes.CreateNoteInput{
		Title:      req.Title,
		Department: req.Department,
		Content:    req.Content,
		FileURL:    req.FileURL,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

// Get handles GET /notes/{id}.
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	noteID, ok := idParam(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.GetNote(r.Context(), noteID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := noteDetailResponse{
		noteResponse: toNoteResponse(detail.Note),
		Comments:     make([]commentResponse, 0, len(detail.Comments)),
	}
	for i := range detail.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(&detail.Comments[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /notes/{id}.
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	noteID, ok := idParam(w, r)
	if !ok {
		return
	}

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.svc.UpdateNote(r.Context(), notes.UpdateNoteInput{
		NoteID:     noteID,
		Title:      req.Title,
		Department: req.Department,
		Content:    req.Content,
		FileURL:    req.FileURL,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Delete handles DELETE /notes/{id}.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteNote(r.Context(), notes.DeleteNoteInput{NoteID: noteID}); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleLike handles POST /notes/{id}/like.
func (h *NotesHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	noteID, ok := idParam(w, r)
	if !ok {
		return
	}

	result, err := h.svc.ToggleLike(r.Context(), notes.ToggleLikeInput{NoteID: noteID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, likeResponse{Liked: result.Liked, LikeCount: result.LikeCount})
}

// CreateComment handles POST /notes/{id}/comments.
func (h *NotesHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	noteID, ok := idParam(w, r)
	if !ok {
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.svc.CreateComment(r.Context(), notes.CreateCommentInput{
		NoteID:  noteID,
		Content: req.Content,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(comment))
}

func (h *NotesHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:         n.ID.String(),
		UserID:     n.UserID.String(),
		Title:      n.Title,
		Department: n.Department.String(),
		Content:    n.Content,
		FileURL:    n.FileURL,
		CreatedAt:  n.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  n.UpdatedAt.UTC().Format(time.RFC3339),
		LikeCount:  n.LikeCount,
		LikedByMe:  n.LikedByMe,
	}
}
