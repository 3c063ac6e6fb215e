package models

// User represents a row of the users table.
type User struct {
	UserID         string  `db:"user_id"`
	OrganizationID string  `db:"organization_id"`
	TeamID         *string `db:"team_id"` // Nullable
	FullName       string  `db:"full_name"`
	Email          string  `db:"email"`
	PasswordHash   string  `db:"password_hash"`
	Role           string  `db:"role"`
	AuditFields
}
