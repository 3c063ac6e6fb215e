package models

// Client represents a row of the clients table.
type Client struct {
	ClientID       string `db:"client_id"`
	OrganizationID string `db:"organization_id"`
	ClientCode     string `db:"client_code"`
	FullName       string `db:"full_name"`
	Email          string `db:"email"`
	Nationality    string `db:"nationality"`
	Contact        string `db:"contact"`
	UserID         string `db:"user_id"`
	AuditFields
}
