package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row of the payments table.
type Payment struct {
	PaymentID      string          `db:"payment_id"`
	OrganizationID string          `db:"organization_id"`
	DealID         string          `db:"deal_id"`
	ReceivedAmount decimal.Decimal `db:"received_amount"`
	PaymentDate    time.Time       `db:"payment_date"`
	PaymentStatus  string          `db:"payment_status"`
	Remarks        string          `db:"remarks"`
	ReceiptURL     string          `db:"receipt_url"`
	VerifierID     *string         `db:"verifier_id"`
	DenialRemarks  string          `db:"denial_remarks"`
	VerifiedAt     *time.Time      `db:"verified_at"`
	IsEdited       bool            `db:"is_edited"`
	EditedAt       *time.Time      `db:"edited_at"`
	AuditFields
}

// PaymentStatusSummary is one GROUP BY payment_status row.
type PaymentStatusSummary struct {
	PaymentStatus string          `db:"payment_status"`
	Count         int             `db:"payment_count"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
}
