package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials_GeneratesWhenEmpty(t *testing.T) {
	creds, err := NewCredentials("")

	require.NoError(t, err)
	assert.True(t, creds.Generated)
	assert.Len(t, creds.Password, 2*TemporaryPasswordBytes)
	assert.True(t, CheckPasswordHash(creds.Password, creds.Hash))
}

func TestNewCredentials_KeepsSuppliedPassword(t *testing.T) {
	creds, err := NewCredentials("s3cret-pass")

	require.NoError(t, err)
	assert.False(t, creds.Generated)
	assert.Equal(t, "s3cret-pass", creds.Password)
	assert.True(t, CheckPasswordHash("s3cret-pass", creds.Hash))
	assert.False(t, CheckPasswordHash("other", creds.Hash))
}
