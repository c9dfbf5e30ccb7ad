package utility

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndParseToken(t *testing.T) {
	tokenString, err := CreateToken("secret", "64f0c1e2a3b4c5d6e7f80910", "manager", 1)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ParseToken("secret", tokenString)
	require.NoError(t, err)
	assert.Equal(t, "64f0c1e2a3b4c5d6e7f80910", claims.Subject)
	assert.Equal(t, "manager", claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenString, err := CreateToken("secret", "user-id", "member", 1)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", tokenString)
	assert.Error(t, err)
}

func TestParseToken_ExpiredToken(t *testing.T) {
	tokenString, err := CreateToken("secret", "user-id", "member", -1)
	require.NoError(t, err)

	_, err = ParseToken("secret", tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-token")
	assert.Error(t, err)
}
