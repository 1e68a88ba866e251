package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaia.climateintel.org/climatedb"
	"gaia.climateintel.org/internal/appconf"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	client, err := climatedb.NewClient(climatedb.NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.SeedIfEmpty(context.Background(), nil))

	return NewService(client.Queries, "test-signing-secret", time.Hour)
}

func TestLogin_SeededAdmin(t *testing.T) {
	service := newTestService(t)

	session, err := service.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "admin", session.Username)
	assert.True(t, session.Admin)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestLogin_WrongPassword(t *testing.T) {
	service := newTestService(t)

	_, err := service.Login(context.Background(), "admin", "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	service := newTestService(t)

	_, err := service.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	service := newTestService(t)

	session, err := service.Login(context.Background(), "demo", "demo123")
	require.NoError(t, err)

	claims, err := service.ValidateToken(session.Token)
	require.NoError(t, err)

	assert.Equal(t, "demo", claims.Username)
	assert.False(t, claims.Admin)
	assert.Equal(t, strconv.FormatInt(session.UserID, 10), claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := newTestService(t)
	other := NewService(nil, "different-secret", time.Hour)

	session, err := service.Login(context.Background(), "demo", "demo123")
	require.NoError(t, err)

	_, err = other.ValidateToken(session.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := newTestService(t)

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	service := newTestService(t)
	service.tokenTTL = -time.Minute

	session, err := service.Login(context.Background(), "demo", "demo123")
	require.NoError(t, err)

	_, err = service.ValidateToken(session.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegister(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	session, err := service.Register(ctx, "newuser", "new@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "newuser", session.Username)
	assert.False(t, session.Admin)

	// The new account can log in with its password.
	_, err = service.Login(ctx, "newuser", "hunter22")
	require.NoError(t, err)

	// Duplicate usernames are rejected.
	_, err = service.Register(ctx, "newuser", "other@example.com", "hunter23")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
