package utils

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := NewAccessCode()
		require.NoError(t, err)
		assert.Len(t, code, AccessCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}
	// 32^6 codes; 100 draws colliding would point at a broken RNG
	assert.Greater(t, len(seen), 95)
}

func TestAccessCodeAlphabetAvoidsAmbiguousGlyphs(t *testing.T) {
	for _, r := range "0O1I" {
		assert.NotContains(t, codeAlphabet, string(r))
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	tok, err := NewAccessToken(secret, 42, "ana@example.com", "PHOTOGRAPHER", 15)
	require.NoError(t, err)

	parsed, err := jwt.Parse(tok.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "ana@example.com", claims["email"])
	assert.Equal(t, "PHOTOGRAPHER", claims["role"])
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	tok, err := NewAccessToken("right", 1, "a@b.c", "PHOTOGRAPHER", 15)
	require.NoError(t, err)

	_, err = jwt.Parse(tok.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong"), nil
	})
	assert.Error(t, err)
}

func TestRefreshTokenHashIsStable(t *testing.T) {
	ref, err := NewRefreshToken(7)
	require.NoError(t, err)
	assert.Len(t, ref.Raw, 96)

	assert.Equal(t, HashRefreshRaw(ref.Raw), HashRefreshRaw(ref.Raw))
	other, err := NewRefreshToken(7)
	require.NoError(t, err)
	assert.NotEqual(t, HashRefreshRaw(ref.Raw), HashRefreshRaw(other.Raw))
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("hunter22", 4)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "hunter22"))
	assert.False(t, VerifyPassword(hash, "hunter23"))
}
