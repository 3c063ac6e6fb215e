package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	dealDate := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(dealDate, createdAt)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "=")
	assert.NotContains(t, token, "+")

	cursor, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, dealDate.Equal(cursor.SortDate))
	assert.True(t, createdAt.Equal(cursor.CreatedAt))
}

func TestDecodeTokenZeroTimes(t *testing.T) {
	cursor, err := DecodeToken(EncodeToken(time.Time{}, time.Time{}))
	require.NoError(t, err)
	assert.True(t, cursor.SortDate.IsZero())
	assert.True(t, cursor.CreatedAt.IsZero())
}

func TestDecodeTokenError(t *testing.T) {
	testCases := []struct {
		name     string
		token    string
		contains string
	}{
		{name: "not base64", token: "this is not base64!", contains: "base64 decode"},
		{name: "missing separator", token: base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z")), contains: "split"},
		{name: "bad sort date", token: base64.RawURLEncoding.EncodeToString([]byte("yesterday|2023-05-15T00:00:00Z")), contains: "sort date"},
		{name: "bad created at", token: base64.RawURLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|later")), contains: "created_at"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeToken(tc.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}
