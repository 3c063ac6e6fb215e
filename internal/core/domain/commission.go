package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission is one row of a commission sheet for an employee and month.
type Commission struct {
	CommissionID        string          `json:"commissionID"`
	OrganizationID      string          `json:"organizationID"`
	Name                string          `json:"name"`
	TotalSales          decimal.Decimal `json:"totalSales"`
	Currency            string          `json:"currency"`
	CommissionPercent   decimal.Decimal `json:"commissionPercent"`
	Rate                decimal.Decimal `json:"rate"` // Currency -> BaseCurrency
	Bonus               decimal.Decimal `json:"bonus"`
	TotalCommission     decimal.Decimal `json:"totalCommission"`
	TotalReceivedAmount decimal.Decimal `json:"totalReceivedAmount"`
	ConvertedAmount     decimal.Decimal `json:"convertedAmount"`
	BaseCurrency        string          `json:"baseCurrency"`
	CommissionDate      time.Time       `json:"commissionDate"`
	CreatedAt           time.Time       `json:"createdAt"`
	CreatedBy           string          `json:"createdBy"`
}

// Calculate derives TotalCommission and ConvertedAmount from the sheet inputs.
func (c *Commission) Calculate() {
	hundred := decimal.NewFromInt(100)
	c.TotalCommission = c.TotalSales.Mul(c.CommissionPercent).Div(hundred).Add(c.Bonus).Round(2)
	c.ConvertedAmount = c.TotalCommission.Mul(c.Rate).Round(2)
}
