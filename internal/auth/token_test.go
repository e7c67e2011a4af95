package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_IssueAndVerify(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("super-secret", time.Hour)

	tok, err := tokens.Issue(42)
	require.NoError(t, err)

	userID, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokens_Expired(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("secret", time.Hour)

	tok, err := tokens.IssueWithTTL(1, -time.Second)
	require.NoError(t, err)

	_, err = tokens.Verify(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokens_KeyRotationInvalidatesToken(t *testing.T) {
	t.Parallel()

	tok, err := NewTokens("right-secret", time.Hour).Issue(7)
	require.NoError(t, err)

	_, err = NewTokens("wrong-secret", time.Hour).Verify(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokens_TamperedSignature(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("secret", time.Hour)
	tok, err := tokens.Issue(7)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	// flip the first character of the signature segment
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tokens.Verify(tampered)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokens_Malformed(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("secret", time.Hour)

	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		_, err := tokens.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}

func TestTokens_DistinctPerIssue(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("secret", time.Hour)

	first, err := tokens.Issue(7)
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond) // IssuedAt has second granularity

	second, err := tokens.Issue(7)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestNewTokens_DefaultTTL(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("secret", 0)
	assert.Equal(t, DefaultTokenTTL, tokens.ttl)
}
