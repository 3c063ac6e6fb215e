package domain

// Client is a customer of the organization, owned by the user who registered it.
type Client struct {
	ClientID       string `json:"clientID"`
	OrganizationID string `json:"organizationID"`
	ClientCode     string `json:"clientCode"` // sequential, e.g. ORG-CL-003
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Nationality    string `json:"nationality"`
	Contact        string `json:"contact"`
	UserID         string `json:"userID"`
	AuditFields
	Deals []Deal `json:"deals,omitempty"`
}
