package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer represents a row of the offers table.
type Offer struct {
	OfferID        string          `db:"offer_id"`
	OrganizationID string          `db:"organization_id"`
	OfferAmount    decimal.Decimal `db:"offer_amount"`
	Bonus          string          `db:"bonus"`
	Target         decimal.Decimal `db:"target"`
	Remarks        string          `db:"remarks"`
	OfferDate      time.Time       `db:"offer_date"`
	TeamID         *string         `db:"team_id"`
	AuditFields
	TeamName *string `db:"team_name"` // joined, not stored
}
