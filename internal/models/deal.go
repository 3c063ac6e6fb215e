package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal represents a row of the deals table.
type Deal struct {
	DealID         string          `db:"deal_id"`
	OrganizationID string          `db:"organization_id"`
	DealCode       string          `db:"deal_code"`
	ClientID       string          `db:"client_id"`
	DealName       string          `db:"deal_name"`
	WorkTypeID     string          `db:"work_type_id"`
	SourceTypeID   string          `db:"source_type_id"`
	UserID         string          `db:"user_id"`
	DealValue      decimal.Decimal `db:"deal_value"`
	DealDate       time.Time       `db:"deal_date"`
	DueDate        time.Time       `db:"due_date"`
	Remarks        string          `db:"remarks"`
	AuditFields
}

// SalesDeal is a deal row joined with the names the sales reports group by.
type SalesDeal struct {
	Deal
	ClientName     string  `db:"client_name"`
	WorkTypeName   string  `db:"work_type_name"`
	SourceTypeName string  `db:"source_type_name"`
	UserName       string  `db:"user_name"`
	TeamID         *string `db:"team_id"`
	TeamName       *string `db:"team_name"`
}
