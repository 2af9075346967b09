package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-password1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password1", hash)

	assert.True(t, CheckPassword(hash, "secret-password1"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword("not-a-hash", "secret-password1"))
}
