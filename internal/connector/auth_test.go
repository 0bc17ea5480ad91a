package connector_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-dashboard-connector/internal/connector"
	"inventory-dashboard-connector/internal/models"
	"inventory-dashboard-connector/internal/stubserver"
)

func testAdmin() models.Admin {
	return models.Admin{
		FullName:     "Dana Okafor",
		Username:     "dana",
		Password:     "s3cret-pw",
		Email:        "dana.okafor@example.com",
		ProfilePhoto: models.ProfilePhotoMale,
	}
}

func TestAuthLifecycle(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())
	ctx := context.Background()

	// Unauthenticated calls fail fast, before any request is sent.
	_, err := conn.LoggedInAdmin(ctx)
	require.ErrorIs(t, err, connector.ErrUnauthenticated)

	msg, err := conn.Signup(ctx, testAdmin())
	require.NoError(t, err)
	assert.Equal(t, "Admin created successfully!", msg)

	admin, err := conn.Login(ctx, "dana", "s3cret-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.ID, "The server assigns the account id")
	assert.Equal(t, "Dana Okafor", admin.FullName)
	assert.Equal(t, "dana", admin.Username)
	assert.Equal(t, "dana.okafor@example.com", admin.Email)

	current, err := conn.LoggedInAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, current.ID)
	assert.Equal(t, admin.FullName, current.FullName)
	assert.Empty(t, current.Password, "The session lookup never returns the password")

	require.NoError(t, conn.Logout(ctx))

	// The token is gone locally and revoked server-side.
	_, err = conn.LoggedInAdmin(ctx)
	assert.ErrorIs(t, err, connector.ErrUnauthenticated)
}

func TestLoginAcceptsEmail(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())
	ctx := context.Background()

	_, err := conn.Signup(ctx, testAdmin())
	require.NoError(t, err)

	admin, err := conn.Login(ctx, "dana.okafor@example.com", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, "dana", admin.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())
	ctx := context.Background()

	_, err := conn.Signup(ctx, testAdmin())
	require.NoError(t, err)

	_, err = conn.Login(ctx, "dana", "wrong-pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, connector.ErrUnauthenticated)

	var remoteErr *connector.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "Password is incorrect", remoteErr.Message)

	_, err = conn.Login(ctx, "nobody", "s3cret-pw")
	assert.ErrorIs(t, err, connector.ErrUnauthenticated)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())
	ctx := context.Background()

	_, err := conn.Signup(ctx, testAdmin())
	require.NoError(t, err)

	second := testAdmin()
	second.Username = "dana2"
	_, err = conn.Signup(ctx, second)
	require.Error(t, err)

	var remoteErr *connector.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Contains(t, remoteErr.Message, "already registered")
}

func TestLogoutWithoutSessionIsNoOp(t *testing.T) {
	conn := newTestConnector(t, stubserver.SeedStore())

	// No token stored: nothing to do, nothing to fail.
	assert.NoError(t, conn.Logout(context.Background()))
}

func TestLogoutClearsStaleToken(t *testing.T) {
	auth := stubserver.NewAuthManager("test-secret", time.Hour)
	t.Cleanup(auth.Stop)
	server := httptest.NewServer(stubserver.NewRouter(stubserver.SeedStore(), auth))
	t.Cleanup(server.Close)

	tokens := connector.NewMemoryTokenStore()
	require.NoError(t, tokens.Set("not-a-real-token"))
	conn := connector.New(server.URL, tokens)

	// The server rejects the token, but the local session still ends.
	require.NoError(t, conn.Logout(context.Background()))
	_, ok := tokens.Token()
	assert.False(t, ok)
}

func TestLogoutRevokesServerSide(t *testing.T) {
	auth := stubserver.NewAuthManager("test-secret", time.Hour)
	t.Cleanup(auth.Stop)
	server := httptest.NewServer(stubserver.NewRouter(stubserver.SeedStore(), auth))
	t.Cleanup(server.Close)
	ctx := context.Background()

	tokens := connector.NewMemoryTokenStore()
	first := connector.New(server.URL, tokens)
	_, err := first.Signup(ctx, testAdmin())
	require.NoError(t, err)
	_, err = first.Login(ctx, "dana", "s3cret-pw")
	require.NoError(t, err)

	// A second connector holding the same token loses access once the first
	// one logs out.
	token, ok := tokens.Token()
	require.True(t, ok)
	shared := connector.NewMemoryTokenStore()
	require.NoError(t, shared.Set(token))
	second := connector.New(server.URL, shared)

	_, err = second.LoggedInAdmin(ctx)
	require.NoError(t, err)

	require.NoError(t, first.Logout(ctx))

	_, err = second.LoggedInAdmin(ctx)
	assert.ErrorIs(t, err, connector.ErrUnauthenticated)
}
