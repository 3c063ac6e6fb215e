package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer is a sales incentive. It may be assigned to at most one team.
type Offer struct {
	OfferID        string          `json:"offerID"`
	OrganizationID string          `json:"organizationID"`
	OfferAmount    decimal.Decimal `json:"offerAmount"`
	Bonus          string          `json:"bonus"`
	Target         decimal.Decimal `json:"target"` // deal value to reach within the offer's month
	Remarks        string          `json:"remarks"`
	OfferDate      time.Time       `json:"offerDate"`
	TeamID         *string         `json:"teamID,omitempty"`
	TeamName       string          `json:"teamName,omitempty"`
	AuditFields
}

// TargetPeriod is the calendar month containing the offer date, in loc.
func (o Offer) TargetPeriod(loc *time.Location) Period {
	return MonthPeriod(o.OfferDate, loc)
}

// OfferTargetProgress compares the deal value booked in an offer's month with its target.
type OfferTargetProgress struct {
	Offer                Offer           `json:"offer"`
	Period               Period          `json:"period"`
	TotalSales           decimal.Decimal `json:"totalSales"`
	TotalDeals           int             `json:"totalDeals"`
	AttainmentPercentage decimal.Decimal `json:"attainmentPercentage"`
	TargetMet            bool            `json:"targetMet"`
}
