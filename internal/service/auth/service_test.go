package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository/memory"
	"github.com/lifechef-health/careportal-api/internal/session"
	jwtauth "github.com/lifechef-health/careportal-api/pkg/auth"
	"github.com/lifechef-health/careportal-api/pkg/security"
	"github.com/lifechef-health/careportal-api/pkg/sessionstore"
)

const (
	testEmail    = "sarah.johnson@lifechef.health"
	testPassword = "password"
)

func newTestService(t *testing.T, delay time.Duration) (*Service, *sessionstore.Store, string) {
	t.Helper()
	snapshotPath := filepath.Join(t.TempDir(), "sessions.snapshot")
	sessions := sessionstore.New(time.Hour, snapshotPath)
	svc := NewService(
		memory.NewUserRepository(memory.NewStore()),
		jwtauth.NewJWTService("test-secret", time.Hour),
		security.NewBcryptHasher(0),
		sessions,
		session.NewTracker(),
		delay,
	)
	return svc, sessions, snapshotPath
}

func TestLoginSuccess(t *testing.T) {
	svc, sessions, _ := newTestService(t, 0)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    testEmail,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, testEmail, resp.User.Email)

	state := svc.Session(context.Background())
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)
	require.NotNil(t, state.User)
	assert.Equal(t, testEmail, state.User.Email)

	_, ok := sessions.Get(resp.Token)
	assert.True(t, ok)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t, 0)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    testEmail,
		Password: "wrong",
	})
	require.Error(t, err)

	state := svc.Session(context.Background())
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Equal(t, model.ErrInvalidCredentials.Error(), state.Error)
	assert.Nil(t, state.User)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _, _ := newTestService(t, 0)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@lifechef.health",
		Password: testPassword,
	})
	require.Error(t, err)

	state := svc.Session(context.Background())
	assert.Equal(t, model.ErrInvalidCredentials.Error(), state.Error)
}

func TestLoginCancelledDuringDelay(t *testing.T) {
	svc, _, _ := newTestService(t, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, &model.LoginRequest{
		Email:    testEmail,
		Password: testPassword,
	})
	assert.ErrorIs(t, err, context.Canceled)

	// A cancelled attempt leaves no error and no loading flag behind.
	state := svc.Session(context.Background())
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, state.Error)
}

func TestAuthenticateAndLogout(t *testing.T) {
	svc, _, _ := newTestService(t, 0)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &model.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, testEmail, user.Email)

	require.NoError(t, svc.Logout(ctx, resp.Token))

	// The token still verifies but the session marker is gone.
	_, err = svc.Authenticate(ctx, resp.Token)
	assert.Error(t, err)

	state := svc.Session(ctx)
	assert.Equal(t, session.State{}, state)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	svc, _, _ := newTestService(t, 0)

	_, err := svc.Authenticate(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestRestoreAcrossRestart(t *testing.T) {
	ctx := context.Background()
	snapshotPath := filepath.Join(t.TempDir(), "sessions.snapshot")
	users := memory.NewUserRepository(memory.NewStore())
	tokens := jwtauth.NewJWTService("test-secret", time.Hour)
	hasher := security.NewBcryptHasher(0)

	first := NewService(users, tokens, hasher,
		sessionstore.New(time.Hour, snapshotPath), session.NewTracker(), 0)
	_, err := first.Login(ctx, &model.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	// Fresh store and tracker against the same snapshot file.
	second := NewService(users, tokens, hasher,
		sessionstore.New(time.Hour, snapshotPath), session.NewTracker(), 0)
	require.NoError(t, second.Restore(ctx))

	state := second.Session(ctx)
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, testEmail, state.User.Email)
}

func TestRestoreWithoutSnapshotIsNoop(t *testing.T) {
	svc, _, _ := newTestService(t, 0)

	require.NoError(t, svc.Restore(context.Background()))
	assert.Equal(t, session.State{}, svc.Session(context.Background()))
}
