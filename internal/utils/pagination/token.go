package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
)

const timeFormat = time.RFC3339Nano

// Cursor is the keyset position of the last row of a page.
type Cursor struct {
	SortDate  time.Time
	CreatedAt time.Time
}

// EncodeToken creates an opaque, URL-safe token from a row's sort date and creation time.
func EncodeToken(sortDate time.Time, createdAt time.Time) string {
	tokenStr := fmt.Sprintf("%s|%s", sortDate.Format(timeFormat), createdAt.Format(timeFormat))
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
// Malformed tokens are reported as apperrors.ErrValidation.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (base64 decode): %v", apperrors.ErrValidation, err)
	}

	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (split)", apperrors.ErrValidation)
	}

	sortDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (sort date parse): %v", apperrors.ErrValidation, err)
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (created_at parse): %v", apperrors.ErrValidation, err)
	}

	return Cursor{SortDate: sortDate, CreatedAt: createdAt}, nil
}
