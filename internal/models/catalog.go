package models

import "time"

// WorkType represents a row of the work_types table.
type WorkType struct {
	WorkTypeID     string    `db:"work_type_id"`
	OrganizationID string    `db:"organization_id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	CreatedAt      time.Time `db:"created_at"`
	CreatedBy      string    `db:"created_by"`
}

// SourceType represents a row of the source_types table.
type SourceType struct {
	SourceTypeID   string    `db:"source_type_id"`
	OrganizationID string    `db:"organization_id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	CreatedAt      time.Time `db:"created_at"`
	CreatedBy      string    `db:"created_by"`
}
