package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	s := NewTokenService("super-secret", 24*time.Hour)

	tok, err := s.Issue(42)
	require.NoError(t, err)

	got, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}

func TestTokenService_AcceptedUntilWindowElapses(t *testing.T) {
	t.Parallel()

	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issued
	s := NewTokenService("secret", 24*time.Hour)
	s.now = func() time.Time { return clock }

	tok, err := s.Issue(7)
	require.NoError(t, err)

	clock = issued.Add(23*time.Hour + 59*time.Minute)
	got, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	clock = issued.Add(24*time.Hour + time.Second)
	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenService_Verify_Missing(t *testing.T) {
	t.Parallel()

	s := NewTokenService("secret", time.Hour)

	for _, tok := range []string{"", "   "} {
		_, err := s.Verify(tok)
		assert.ErrorIs(t, err, common.ErrMissingToken)
		assert.False(t, errors.Is(err, common.ErrInvalidToken))
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService("right-secret", time.Hour).Issue(2)
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.False(t, errors.Is(err, common.ErrTokenExpired))
}

func TestTokenService_Verify_Tampered(t *testing.T) {
	t.Parallel()

	s := NewTokenService("secret", time.Hour)
	tok, err := s.Issue(3)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	other, err := s.Issue(4)
	require.NoError(t, err)
	forged := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]

	_, err = s.Verify(forged)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("k", time.Hour).Verify("not.a.jwt")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenService_Verify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           1,
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("k", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenService_Verify_RequiresExpiry(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1}).SignedString(secret)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(tok, secret, time.Now)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
