package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2-hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2-hunter2", hash)
	require.True(t, CheckPasswordHash("hunter2-hunter2", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("unit-test-secret")

	token, err := GenerateJWT(secret, "user-1", "dentist")
	require.NoError(t, err)

	claims, err := ValidateJWT(secret, token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "dentist", claims.Role)

	_, err = ValidateJWT([]byte("other-secret"), token)
	require.Error(t, err)
}

func TestJWT_RequiresSecret(t *testing.T) {
	_, err := GenerateJWT(nil, "user-1", "staff")
	require.Error(t, err)
	_, err = ValidateJWT(nil, "whatever")
	require.Error(t, err)
}
