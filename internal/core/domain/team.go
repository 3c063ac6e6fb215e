package domain

// Team groups users of one organization.
type Team struct {
	TeamID         string `json:"teamID"`
	OrganizationID string `json:"organizationID"`
	TeamCode       string `json:"teamCode"` // sequential, e.g. ORG-TM-004
	TeamName       string `json:"teamName"`
	MemberCount    int    `json:"memberCount"`
	AuditFields
}
