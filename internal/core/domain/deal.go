package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal is a sales engagement. It is active on every day from DealDate to DueDate inclusive.
type Deal struct {
	DealID         string          `json:"dealID"`
	OrganizationID string          `json:"organizationID"`
	DealCode       string          `json:"dealCode"` // sequential, e.g. ORG-DL-012
	ClientID       string          `json:"clientID"`
	DealName       string          `json:"dealName"`
	WorkTypeID     string          `json:"workTypeID"`
	SourceTypeID   string          `json:"sourceTypeID"`
	UserID         string          `json:"userID"` // owner
	DealValue      decimal.Decimal `json:"dealValue"`
	DealDate       time.Time       `json:"dealDate"`
	DueDate        time.Time       `json:"dueDate"`
	Remarks        string          `json:"remarks"`
	AuditFields

	// Denormalized for reporting.
	ClientName     string  `json:"clientName,omitempty"`
	WorkTypeName   string  `json:"workTypeName,omitempty"`
	SourceTypeName string  `json:"sourceTypeName,omitempty"`
	UserName       string  `json:"userName,omitempty"`
	TeamID         *string `json:"teamID,omitempty"`
	TeamName       string  `json:"teamName,omitempty"`

	Payments []Payment `json:"payments"`
}

// ActiveDuring reports whether the deal's activity window overlaps p.
func (d Deal) ActiveDuring(p Period) bool {
	return p.Overlaps(d.DealDate, d.DueDate)
}

// BookedWithin reports whether the deal was closed during p.
func (d Deal) BookedWithin(p Period) bool {
	return p.Contains(d.DealDate)
}

// VerifiedPaidWithin sums the deal's VERIFIED payments dated inside p.
func (d Deal) VerifiedPaidWithin(p Period) decimal.Decimal {
	paid := decimal.Zero
	for _, payment := range d.Payments {
		if payment.CountsWithin(p) {
			paid = paid.Add(payment.ReceivedAmount)
		}
	}
	return paid
}

// VerifiedPaid sums all VERIFIED payments regardless of date.
func (d Deal) VerifiedPaid() decimal.Decimal {
	paid := decimal.Zero
	for _, payment := range d.Payments {
		if payment.PaymentStatus == PaymentVerified {
			paid = paid.Add(payment.ReceivedAmount)
		}
	}
	return paid
}
