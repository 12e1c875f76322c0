// Package app wires configuration, storage, services and the HTTP server
// together and owns the process lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/campushub/campushub-backend/internal/adapter/captcha"
	"github.com/campushub/campushub-backend/internal/adapter/mailer"
	"github.com/campushub/campushub-backend/internal/adapter/postgres"
	commentrepo "github.com/campushub/campushub-backend/internal/adapter/postgres/comment"
	noterepo "github.com/campushub/campushub-backend/internal/adapter/postgres/note"
	postrepo "github.com/campushub/campushub-backend/internal/adapter/postgres/post"
	tokenrepo "github.com/campushub/campushub-backend/internal/adapter/postgres/token"
	userrepo "github.com/campushub/campushub-backend/internal/adapter/postgres/user"
	internalauth "github.com/campushub/campushub-backend/internal/auth"
	"github.com/campushub/campushub-backend/internal/config"
	authsvc "github.com/campushub/campushub-backend/internal/service/auth"
	forumsvc "github.com/campushub/campushub-backend/internal/service/forum"
	notessvc "github.com/campushub/campushub-backend/internal/service/notes"
	usersvc "github.com/campushub/campushub-backend/internal/service/user"
	"github.com/campushub/campushub-backend/internal/transport/middleware"
	"github.com/campushub/campushub-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires every service and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	posts := postrepo.New(pool)
	notes := noterepo.New(pool)
	postComments := commentrepo.NewForPosts(pool)
	noteComments := commentrepo.NewForNotes(pool)

	jwtManager := internalauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var captchaVerifier interface {
		Verify(ctx context.Context, token, remoteIP string) (bool, error)
	} = captcha.Disabled{}
	if cfg.Captcha.Enabled() {
		captchaVerifier = captcha.New(cfg.Captcha.Secret, cfg.Captcha.VerifyURL, logger)
	} else {
		logger.Warn("captcha verification disabled")
	}

	var mail Mailer = mailer.Noop{}
	if cfg.Mail.Enabled() {
		mail = mailer.New(cfg.Mail, cfg.Community.BaseURL, logger)
	} else {
		logger.Warn("outbound mail disabled")
	}

	authService := authsvc.NewService(logger, users, tokens, txManager, captchaVerifier, jwtManager,
		cfg.Auth, cfg.Community.AllowedEmailDomain)
	forumService := forumsvc.NewService(logger, posts, postComments, users, mail, txManager)
	notesService := notessvc.NewService(logger, notes, noteComments, users, mail, txManager)
	userService := usersvc.NewService(logger, users, tokens, mail,
		cfg.Auth.PasswordHashCost, cfg.Community.AllowedEmailDomain)

	mux := rest.NewRouter(
		rest.NewAuthHandler(authService, logger),
		rest.NewForumHandler(forumService, logger),
		rest.NewNotesHandler(notesService, logger),
		rest.NewAccountHandler(userService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Mailer is the union of every notification the services send. The concrete
// implementation is either the SMTP mailer or the no-op one.
type Mailer interface {
	SendCommentNotification(ctx context.Context, to, ownerName, commenterName, kind, title, path string) error
	SendAccountUpdated(ctx context.Context, to, username string) error
}
