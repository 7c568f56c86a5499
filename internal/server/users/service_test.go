package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/voxlate/voxlate/internal/common"
	"github.com/voxlate/voxlate/internal/server/auth"
	"github.com/voxlate/voxlate/internal/server/config"
)

func newTestService(t *testing.T) (*Service, *InMemoryRepository) {
	t.Helper()
	repo := NewInMemoryRepository()
	cfg := &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
	}
	return NewService(repo, cfg), repo
}

func TestService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	user, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.UserName)
	assert.NotEqual(t, "pw1", user.PasswordHash, "plaintext must not be stored")

	token, loggedIn, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	subject, err := auth.GetUserIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestService_Register_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	_, err := svc.Register(ctx, "bob", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bob", "other")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	// exactly one record remains, holding the first password
	u, err := repo.GetUserByLogin(ctx, "bob")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")))
}

// raceRepo simulates a concurrent registration winning between the
// pre-check and the insert: the lookup sees nothing, the insert conflicts.
type raceRepo struct {
	Repository
}

func (r raceRepo) GetUserByLogin(ctx context.Context, userName string) (*User, error) {
	return nil, common.ErrorNotFound
}

func (r raceRepo) Create(ctx context.Context, user *User) (*User, error) {
	return nil, common.ErrorAlreadyExists
}

func TestService_Register_DuplicateRace(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{SecretKey: "test-secret", TokenValidityDuration: time.Hour}
	svc := NewService(raceRepo{}, cfg)

	_, err := svc.Register(ctx, "bob", "pw")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestService_Register_EmptyFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, "", "pw")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = svc.Register(ctx, "carol", "")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, "dave", "correct")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "dave", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, _, err := svc.Login(ctx, "nobody", "pw")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
