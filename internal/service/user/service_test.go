package user

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/campushub-backend/internal/domain"
	"github.com/campushub/campushub-backend/pkg/ctxutil"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockUserRepo struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, username, email, passwordHash *string) (*domain.User, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) Update(ctx context.Context, id uuid.UUID, username, email, passwordHash *string) (*domain.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, username, email, passwordHash)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return domain.ErrNotFound
}

type mockTokenRepo struct {
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error
	revokeCalls         int
}

func (m *mockTokenRepo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	m.revokeCalls++
	if m.RevokeAllByUserFunc != nil {
		return m.RevokeAllByUserFunc(ctx, userID)
	}
	return nil
}

type mockNotifier struct {
	SendAccountUpdatedFunc func(ctx context.Context, to, username string) error
	calls                  int
}

func (m *mockNotifier) SendAccountUpdated(ctx context.Context, to, username string) error {
	m.calls++
	if m.SendAccountUpdatedFunc != nil {
		return m.SendAccountUpdatedFunc(ctx, to, username)
	}
	return nil
}

// ===========================================================================
// Helpers
// ===========================================================================

type testDeps struct {
	users  *mockUserRepo
	tokens *mockTokenRepo
	mail   *mockNotifier
}

func newTestService() (*Service, *testDeps) {
	deps := &testDeps{
		users:  &mockUserRepo{},
		tokens: &mockTokenRepo{},
		mail:   &mockNotifier{},
	}
	svc := NewService(slog.Default(), deps.users, deps.tokens, deps.mail, bcrypt.MinCost, "uoi.gr")
	return svc, deps
}

func authCtx() (context.Context, uuid.UUID) {
	userID := uuid.New()
	return ctxutil.WithUserID(context.Background(), userID), userID
}

func ptrString(s string) *string { return &s }

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ===========================================================================
// GetProfile
// ===========================================================================

func TestGetProfile_Success(t *testing.T) {
	t.Parallel()
	svc, deps := newTestService()
	ctx, userID := authCtx()

	deps.users.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
		assert.Equal(t, userID, id)
		return &domain.User{ID: id, Username: "maria", Email: "maria@uoi.gr"}, nil
	}

	u, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "maria", u.Username)
}

func TestGetProfile_Unauthenticated(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ===========================================================================
// UpdateProfile
// ===========================================================================

func TestUpdateProfile_UpdatesAndNotifies(t *testing.T) {
	t.Parallel()
	svc, deps := newTestService()
	ctx, userID := authCtx()

	deps.users.UpdateFunc = func(ctx context.Context, id uuid.UUID, username, email, passwordHash *string) (*domain.User, error) {
		assert.Equal(t, userID, id)
		require.NotNil(t, username)
		assert.Equal(t, "maria_k", *username)
		require.NotNil(t, email)
		assert.Equal(t, "maria.k@uoi.gr", *email)
		assert.Nil(t, passwordHash)
		return &domain.User{ID: id, Username: *username, Email: *email}, nil
	}

	var notifiedTo string
	deps.mail.SendAccountUpdatedFunc = func(ctx context.Context, to, username string) error {
		notifiedTo = to
		return nil
	}

	u, err := svc.UpdateProfile(ctx, UpdateProfileInput{
		Username: ptrString(" maria_k "),
		Email:    ptrString(" Maria.K@UOI.GR "),
	})
	require.NoError(t, err)
	assert.Equal(t, "maria_k", u.Username)
	assert.Equal(t, "maria.k@uoi.gr", notifiedTo)
}

func TestUpdateProfile_ForeignEmailRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx, _ := authCtx()

	_, err := svc.UpdateProfile(ctx, UpdateProfileInput{Email: ptrString("maria@gmail.com")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateProfile_NoFieldsRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx, _ := authCtx()

	_, err := svc.UpdateProfile(ctx, UpdateProfileInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateProfile_DuplicateUsername(t *testing.T) {
	t.Parallel()
	svc, deps := newTestService()
	ctx, _ := authCtx()

	deps.users.UpdateFunc = func(ctx context.Context, id uuid.UUID, username, email, passwordHash *string) (*domain.User, error) {
		return nil, domain.ErrAlreadyExists
	}

	_, err := svc.UpdateProfile(ctx, UpdateProfileInput{Username: ptrString("taken")})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Zero(t, deps.mail.calls)
}

func TestUpdateProfile_NotificationFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	svc, deps := newTestService()
	ctx, _ := authCtx()

	deps.users.UpdateFunc = func(ctx context.Context, id uuid.UUID, username, email, passwordHash *string) (*domain.User, error) {
		return &domain.User{ID: id, Username: "maria", Email: "maria@uoi.gr"}, nil
	}
	deps.mail.SendAccountUpdatedFunc = func(ctx context.Context, to, username string) error {
		return errors.New("smtp down")
	}

	_, err := svc.UpdateProfile(ctx, UpdateProfileInput{Username: ptrString("maria")})
	require.NoError(t, err)
}

// ===========================================================================
// ChangePassword
// ===========================================================================

func TestChangePassword_Success(t *testing.T) {
	t.Parallel()
	svc, deps := newTestService()
	ctx, userID := authCtx()

	deps.users.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
		return &domain.User{ID: id, Email: "maria@uoi.gr", PasswordHash: hashOf(t, "old-password-1")}, nil
	}

	var newHash *string
	deps.users.UpdateFunc = func(ctx context.Context, id uuid.UUID, username, email, passwordHash *string) (*domain.User, error) {
		assert.Nil(t, username)
		assert.Nil(t, email)
		newHash = passwordHash
		return &domain.User{ID: id, Email: "maria@uoi.gr", Username: "maria"}, nil
	}

	var revokedUser uuid.UUID
	deps.tokens.RevokeAllByUserFunc = func(ctx context.Context, uid uuid.UUID) error {
		revokedUser = uid
		return nil
	}

	err := svc.ChangePassword(ctx, ChangePasswordInput{
		CurrentPassword: "old-password-1",
		NewPassword:     "new-password-2",
	})
	require.NoError(t, err)
	require.NotNil(t, newHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*newHash), []byte("new-password-2")))
	assert.Equal(t, userID, revokedUser)
	assert.Equal(t, 1, deps.mail.calls)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	t.Parallel()
	svc, deps := newTestService()
	ctx, _ := authCtx()

	deps.users.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
		return &domain.User{ID: id, PasswordHash: hashOf(t, "the-real-one")}, nil
	}

	err := svc.ChangePassword(ctx, ChangePasswordInput{
		CurrentPassword: "a-wrong-guess",
		NewPassword:     "new-password-2",
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "current_password", vErr.Errors[0].Field)
	assert.Zero(t, deps.tokens.revokeCalls)
}

func TestChangePassword_WeakNewPasswordRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx, _ := authCtx()

	err := svc.ChangePassword(ctx, ChangePasswordInput{
		CurrentPassword: "old-password-1",
		NewPassword:     "1234567890",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ===========================================================================
// DeleteAccount
// ===========================================================================

func TestDeleteAccount_Success(t *testing.T) {
	t.Parallel()
	svc, deps := newTestService()
	ctx, userID := authCtx()

	var deletedID uuid.UUID
	deps.users.DeleteFunc = func(ctx context.Context, id uuid.UUID) error {
		deletedID = id
		return nil
	}

	require.NoError(t, svc.DeleteAccount(ctx))
	assert.Equal(t, userID, deletedID)
}

func TestDeleteAccount_Unauthenticated(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	assert.ErrorIs(t, svc.DeleteAccount(context.Background()), domain.ErrUnauthorized)
}
