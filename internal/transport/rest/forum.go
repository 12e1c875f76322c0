package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/internal/service/forum"
)

// forumService defines the minimal interface needed by ForumHandler.
type forumService interface {
	CreatePost(ctx context.Context, input forum.CreatePostInput) (*domain.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*forum.PostDetail, error)
	UpdatePost(ctx context.Context, input forum.UpdatePostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, input forum.DeletePostInput) error
	ListPosts(ctx context.Context, input forum.ListPostsInput) (*domain.Page[domain.Post], error)
	ToggleLike(ctx context.Context, input forum.ToggleLikeInput) (*forum.ToggleLikeResult, error)
	CreateReply(ctx context.Context, input forum.CreateReplyInput) (*domain.Comment, error)
}

// ForumHandler serves the discussion forum REST endpoints.
type ForumHandler struct {
	svc forumService
	log *slog.Logger
}

// NewForumHandler creates a ForumHandler.
func NewForumHandler(svc forumService, logger *slog.Logger) *ForumHandler {
	return &ForumHandler{svc: svc, log: logger.With("handler", "forum")}
}

type createPostRequest struct {
	Title   string `json:"title"`
	Topic   string `json:"topic"`
	Content string `json:"content"`
}

type updatePostRequest struct {
	Title   *string `json:"title"`
	Topic   *string `json:"topic"`
	Content *string `json:"content"`
}

type createReplyRequest struct {
	Content string `json:"content"`
}

type postResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Topic     string `json:"topic"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	LikeCount int    `json:"likeCount"`
	LikedByMe bool   `json:"likedByMe"`
}

type postDetailResponse struct {
	postResponse
	Replies []commentResponse `json:"replies"`
}

type commentResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
}

type pageResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	TotalPages int `json:"totalPages"`
}

type likeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// List handles GET /forum/posts.
func (h *ForumHandler) List(w http.ResponseWriter, r *http.Request) {
	input := forum.ListPostsInput{Page: pageParam(r)}
	if s := r.URL.Query().Get("search_query"); s != "" {
		input.Search = &s
	}
	if topic := r.URL.Query().Get("topic"); topic != "" {
		input.Topic = &topic
	}

	page, err := h.svc.ListPosts(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]postResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toPostResponse(&page.Items[i]))
	}
	writeJSON(w, http.StatusOK, pageResponse[postResponse]{
		Items:      items,
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		TotalPages: page.TotalPages,
	})
}

// Create handles POST /forum/posts.
func (h *ForumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.svc.CreatePost(r.Context(), forum.CreatePostInput{
		Title:   req.Title,
		Topic:   req.Topic,
		Content: req.Content,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

// Get handles GET /forum/posts/{id}.
func (h *ForumHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.GetPost(r.Context(), postID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := postDetailResponse{
		postResponse: toPostResponse(detail.Post),
		Replies:      make([]commentResponse, 0, len(detail.Replies)),
	}
	for i := range detail.Replies {
		resp.Replies = append(resp.Replies, toCommentResponse(&detail.Replies[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /forum/posts/{id}.
func (h *ForumHandler) Update(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(w, r)
	if !ok {
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.svc.UpdatePost(r.Context(), forum.UpdatePostInput{
		PostID:  postID,
		Title:   req.Title,
		Topic:   req.Topic,
		Content: req.Content,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /forum/posts/{id}.
func (h *ForumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeletePost(r.Context(), forum.DeletePostInput{PostID: postID}); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleLike handles POST /forum/posts/{id}/like.
func (h *ForumHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(w, r)
	if !ok {
		return
	}

	result, err := h.svc.ToggleLike(r.Context(), forum.ToggleLikeInput{PostID: postID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, likeResponse{Liked: result.Liked, LikeCount: result.LikeCount})
}

// CreateReply handles POST /forum/posts/{id}/replies.
func (h *ForumHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(w, r)
	if !ok {
		return
	}

	var req createReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.svc.CreateReply(r.Context(), forum.CreateReplyInput{
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(reply))
}

func (h *ForumHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
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

// idParam parses the {id} path segment. Writes a 404 and returns false when
// it is not a UUID: a malformed id and a missing row look the same.
func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID.String(),
		UserID:    p.UserID.String(),
		Title:     p.Title,
		Topic:     p.Topic.String(),
		Content:   p.Content,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
		LikeCount: p.LikeCount,
		LikedByMe: p.LikedByMe,
	}
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:         c.ID.String(),
		UserID:     c.UserID.String(),
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
