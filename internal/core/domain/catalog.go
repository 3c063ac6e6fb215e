package domain

import "time"

// WorkType classifies the kind of work sold in a deal.
type WorkType struct {
	WorkTypeID     string    `json:"workTypeID"`
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}

// SourceType records where a deal came from.
type SourceType struct {
	SourceTypeID   string    `json:"sourceTypeID"`
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}
