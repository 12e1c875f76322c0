// Package rest exposes the HTTP API: auth, forum posts, lecture notes and
// account management, plus health probes.
package rest

import "net/http"

// NewRouter builds the ServeMux with every API route. Authentication is not
// enforced here; the auth middleware populates the request context and each
// service rejects unauthenticated calls itself.
func NewRouter(
	authH *AuthHandler,
	forumH *ForumHandler,
	notesH *NotesHandler,
	accountH *AccountHandler,
	healthH *HealthHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", authH.Register)
	mux.HandleFunc("POST /auth/login", authH.Login)
	mux.HandleFunc("POST /auth/refresh", authH.Refresh)
	mux.HandleFunc("POST /auth/logout", authH.Logout)

	mux.HandleFunc("GET /forum/posts", forumH.List)
	mux.HandleFunc("POST /forum/posts", forumH.Create)
	mux.HandleFunc("GET /forum/posts/{id}", forumH.Get)
	mux.HandleFunc("PUT /forum/posts/{id}", forumH.Update)
	mux.HandleFunc("DELETE /forum/posts/{id}", forumH.Delete)
	mux.HandleFunc("POST /forum/posts/{id}/like", forumH.ToggleLike)
	mux.HandleFunc("POST /forum/posts/{id}/replies", forumH.CreateReply)

	mux.HandleFunc("GET /notes", notesH.List)
	mux.HandleFunc("POST /notes", notesH.Create)
	mux.HandleFunc("GET /notes/{id}", notesH.Get)
	mux.HandleFunc("PUT /notes/{id}", notesH.Update)
	mux.HandleFunc("DELETE /notes/{id}", notesH.Delete)
	mux.HandleFunc("POST /notes/{id}/like", notesH.ToggleLike)
	mux.HandleFunc("POST /notes/{id}/comments", notesH.CreateComment)

	mux.HandleFunc("GET /me", accountH.Get)
	mux.HandleFunc("PUT /me", accountH.Update)
	mux.HandleFunc("DELETE /me", accountH.Delete)
	mux.HandleFunc("POST /me/password", accountH.ChangePassword)

	mux.HandleFunc("GET /health", healthH.Health)
	mux.HandleFunc("GET /live", healthH.Live)
	mux.HandleFunc("GET /ready", healthH.Ready)

	return mux
}
