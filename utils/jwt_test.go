package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("user-1", "Test Player", "player@example.com", "User", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Test Player", claims.FullName)
	assert.Equal(t, "player@example.com", claims.Email)
	assert.Equal(t, "User", claims.Role)
}

func TestExtractClaimsRejectsExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-1", "Test Player", "player@example.com", "User", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestExtractClaimsRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken("user-1", "Test Player", "player@example.com", "User", time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ExtractClaimsFromToken(tampered)
	assert.Error(t, err)
}

func TestHashTokenStableAndDistinct(t *testing.T) {
	a := HashToken("token-a")
	assert.Equal(t, a, HashToken("token-a"))
	assert.NotEqual(t, a, HashToken("token-b"))
	assert.Len(t, a, 64)
}
