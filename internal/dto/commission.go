package dto

import (
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveCommissionsRequest stores a commission sheet for one month.
type SaveCommissionsRequest struct {
	CommissionDate string            `json:"commissionDate" binding:"required,datetime=2006-01-02"`
	BaseCurrency   string            `json:"baseCurrency" binding:"required,len=3,uppercase"`
	Entries        []CommissionEntry `json:"entries" binding:"required,min=1,dive"`
}

// CommissionEntry is one employee row. TotalCommission and ConvertedAmount are computed server side.
type CommissionEntry struct {
	Name                string          `json:"name" binding:"required"`
	TotalSales          decimal.Decimal `json:"totalSales"`
	Currency            string          `json:"currency" binding:"required,len=3,uppercase"`
	CommissionPercent   decimal.Decimal `json:"commissionPercent"`
	Rate                decimal.Decimal `json:"rate"`
	Bonus               decimal.Decimal `json:"bonus"`
	TotalReceivedAmount decimal.Decimal `json:"totalReceivedAmount"`
}

// ListCommissionsParams selects the month containing Date.
type ListCommissionsParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type CommissionResponse struct {
	CommissionID        string          `json:"commissionID"`
	Name                string          `json:"name"`
	TotalSales          decimal.Decimal `json:"totalSales"`
	Currency            string          `json:"currency"`
	CommissionPercent   decimal.Decimal `json:"commissionPercent"`
	Rate                decimal.Decimal `json:"rate"`
	Bonus               decimal.Decimal `json:"bonus"`
	TotalCommission     decimal.Decimal `json:"totalCommission"`
	TotalReceivedAmount decimal.Decimal `json:"totalReceivedAmount"`
	ConvertedAmount     decimal.Decimal `json:"convertedAmount"`
	BaseCurrency        string          `json:"baseCurrency"`
	CommissionDate      string          `json:"commissionDate"`
	CreatedAt           time.Time       `json:"createdAt"`
}

type ListCommissionsResponse struct {
	Commissions []CommissionResponse `json:"commissions"`
}

func ToCommissionResponse(c domain.Commission) CommissionResponse {
	return CommissionResponse{
		CommissionID:        c.CommissionID,
		Name:                c.Name,
		TotalSales:          c.TotalSales,
		Currency:            c.Currency,
		CommissionPercent:   c.CommissionPercent,
		Rate:                c.Rate,
		Bonus:               c.Bonus,
		TotalCommission:     c.TotalCommission,
		TotalReceivedAmount: c.TotalReceivedAmount,
		ConvertedAmount:     c.ConvertedAmount,
		BaseCurrency:        c.BaseCurrency,
		CommissionDate:      c.CommissionDate.Format(domain.DateLayout),
		CreatedAt:           c.CreatedAt,
	}
}

func ToListCommissionsResponse(commissions []domain.Commission) ListCommissionsResponse {
	resp := ListCommissionsResponse{Commissions: make([]CommissionResponse, len(commissions))}
	for i, c := range commissions {
		resp.Commissions[i] = ToCommissionResponse(c)
	}
	return resp
}
