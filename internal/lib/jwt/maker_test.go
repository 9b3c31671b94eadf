package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParse(t *testing.T) {
	maker := NewJWTMaker("test-secret", 15*time.Minute, 720*time.Hour)

	token, err := maker.GenerateToken(42, Access)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestMaker_RefreshLivesLonger(t *testing.T) {
	maker := NewJWTMaker("test-secret", 15*time.Minute, 720*time.Hour)

	access, err := maker.GenerateToken(1, Access)
	require.NoError(t, err)
	refresh, err := maker.GenerateToken(1, Refresh)
	require.NoError(t, err)

	accessClaims, err := maker.ParseToken(access)
	require.NoError(t, err)
	refreshClaims, err := maker.ParseToken(refresh)
	require.NoError(t, err)

	assert.True(t, refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt.Time))
}

func TestMaker_ExpiredToken(t *testing.T) {
	maker := NewJWTMaker("test-secret", -time.Minute, 720*time.Hour)

	token, err := maker.GenerateToken(42, Access)
	require.NoError(t, err)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
}

func TestMaker_WrongSecret(t *testing.T) {
	maker := NewJWTMaker("test-secret", 15*time.Minute, 720*time.Hour)
	other := NewJWTMaker("another-secret", 15*time.Minute, 720*time.Hour)

	token, err := maker.GenerateToken(42, Access)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestMaker_GarbageToken(t *testing.T) {
	maker := NewJWTMaker("test-secret", 15*time.Minute, 720*time.Hour)

	_, err := maker.ParseToken("not.a.token")
	assert.Error(t, err)
}
