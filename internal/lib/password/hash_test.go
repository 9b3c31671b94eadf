package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash_CompareHash(t *testing.T) {
	hash, err := GetHash("secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, CompareHash(hash, "secret123"))
	assert.Error(t, CompareHash(hash, "wrongpassword"))
}

func TestGetHash_DifferentSalts(t *testing.T) {
	first, err := GetHash("secret123")
	require.NoError(t, err)
	second, err := GetHash("secret123")
	require.NoError(t, err)

	// bcrypt генерирует соль на каждый вызов
	assert.NotEqual(t, first, second)
	assert.NoError(t, CompareHash(first, "secret123"))
	assert.NoError(t, CompareHash(second, "secret123"))
}

func TestCompareHash_MalformedHash(t *testing.T) {
	// некорректный хэш неотличим от неверного пароля
	assert.Error(t, CompareHash("not-a-bcrypt-hash", "secret123"))
}
