package models

// Team represents a row of the teams table.
type Team struct {
	TeamID         string `db:"team_id"`
	OrganizationID string `db:"organization_id"`
	TeamCode       string `db:"team_code"`
	TeamName       string `db:"team_name"`
	AuditFields
	MemberCount int `db:"member_count"` // computed, not stored
}
