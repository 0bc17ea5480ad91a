package stubserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	auth := NewAuthManager("test-secret", time.Hour)
	t.Cleanup(auth.Stop)

	token, err := auth.Issue("admin-1", "dana")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	adminID, err := auth.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", adminID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthManager("secret-a", time.Hour)
	t.Cleanup(issuer.Stop)
	verifier := NewAuthManager("secret-b", time.Hour)
	t.Cleanup(verifier.Stop)

	token, err := issuer.Issue("admin-1", "dana")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	auth := NewAuthManager("test-secret", -time.Minute)
	t.Cleanup(auth.Stop)

	token, err := auth.Issue("admin-1", "dana")
	require.NoError(t, err)

	_, err = auth.Validate(token)
	assert.Error(t, err)
}

func TestRevokedTokenFailsValidation(t *testing.T) {
	auth := NewAuthManager("test-secret", time.Hour)
	t.Cleanup(auth.Stop)

	token, err := auth.Issue("admin-1", "dana")
	require.NoError(t, err)

	auth.Revoke(token)

	_, err = auth.Validate(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoked")
}

func TestHashPasswordIsDeterministic(t *testing.T) {
	assert.Equal(t, HashPassword("s3cret-pw"), HashPassword("s3cret-pw"))
	assert.NotEqual(t, HashPassword("s3cret-pw"), HashPassword("other"))
	// hex sha256
	assert.Len(t, HashPassword("anything"), 64)
}

func TestBlacklistExpiry(t *testing.T) {
	b := NewBlacklist(50*time.Millisecond, 10*time.Millisecond)
	t.Cleanup(b.Stop)

	b.Add("tok")
	assert.True(t, b.Contains("tok"))
	assert.False(t, b.Contains("other"))

	assert.Eventually(t, func() bool {
		return !b.Contains("tok")
	}, time.Second, 10*time.Millisecond)
}
