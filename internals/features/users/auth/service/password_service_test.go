package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cret!motdepasse")
	require.NoError(t, err)
	assert.NotEqual(t, "S3cret!motdepasse", hash)

	assert.True(t, CheckPassword(hash, "S3cret!motdepasse"))
	assert.False(t, CheckPassword(hash, "mauvais"))
}
