package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	userRepo "github.com/fieldbook/FieldBooking-Service/internal/infra/storage/user"
)

type fakeUserRepo struct {
	nextID  int64
	byID    map[int64]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[int64]*domain.User{},
		byEmail: map[string]*domain.User{},
	}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}
	r.nextID++
	created := *u
	created.ID = r.nextID
	r.byID[created.ID] = &created
	r.byEmail[created.Email] = &created
	return &created, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &domain.User{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: string(hash),
	})
	require.NoError(t, err)

	return NewService(repo, "test-secret", time.Hour, nopLogger{}), repo
}

func TestLoginIssuesParsableToken(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), "Jane@Example.com ", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@example.com", resp.User.Email)

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, wrongPassword := svc.Login(ctx, "jane@example.com", "not-the-password")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "secret1")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "new@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, "New User", "not-an-email", "secret1")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, "New User", "new@example.com", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, "Jane Again", "jane@example.com", "secret1")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetUser(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)

	// Токен может пережить удаление аккаунта
	delete(repo.byID, 1)
	_, err = svc.GetUser(ctx, 1)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), "jane@example.com", "secret1")
	require.NoError(t, err)

	other := NewService(newFakeUserRepo(), "another-secret", time.Hour, nopLogger{})
	_, err = other.ParseToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
