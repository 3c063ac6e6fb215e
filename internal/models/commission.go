package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission represents a row of the commissions table.
type Commission struct {
	CommissionID        string          `db:"commission_id"`
	OrganizationID      string          `db:"organization_id"`
	Name                string          `db:"name"`
	TotalSales          decimal.Decimal `db:"total_sales"`
	Currency            string          `db:"currency"`
	CommissionPercent   decimal.Decimal `db:"commission_percent"`
	Rate                decimal.Decimal `db:"rate"`
	Bonus               decimal.Decimal `db:"bonus"`
	TotalCommission     decimal.Decimal `db:"total_commission"`
	TotalReceivedAmount decimal.Decimal `db:"total_received_amount"`
	ConvertedAmount     decimal.Decimal `db:"converted_amount"`
	BaseCurrency        string          `db:"base_currency"`
	CommissionDate      time.Time       `db:"commission_date"`
	CreatedAt           time.Time       `db:"created_at"`
	CreatedBy           string          `db:"created_by"`
}
