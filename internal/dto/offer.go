package dto

import (
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOfferRequest defines a new sales incentive. Target is the deal value to book in the offer's month.
type CreateOfferRequest struct {
	OfferAmount decimal.Decimal `json:"offerAmount"`
	Bonus       string          `json:"bonus"`
	Target      decimal.Decimal `json:"target"`
	Remarks     string          `json:"remarks"`
	OfferDate   string          `json:"offerDate" binding:"required,datetime=2006-01-02"`
}

// UpdateOfferRequest changes an offer's terms. Omitted fields are kept.
type UpdateOfferRequest struct {
	OfferAmount *decimal.Decimal `json:"offerAmount"`
	Bonus       *string          `json:"bonus"`
	Target      *decimal.Decimal `json:"target"`
	Remarks     *string          `json:"remarks"`
}

// AssignOfferRequest names the team an offer applies to.
type AssignOfferRequest struct {
	TeamID string `json:"teamID" binding:"required"`
}

type OfferResponse struct {
	OfferID     string          `json:"offerID"`
	OfferAmount decimal.Decimal `json:"offerAmount"`
	Bonus       string          `json:"bonus"`
	Target      decimal.Decimal `json:"target"`
	Remarks     string          `json:"remarks"`
	OfferDate   string          `json:"offerDate"`
	TeamID      *string         `json:"teamID,omitempty"`
	TeamName    string          `json:"teamName,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ListOffersResponse struct {
	Offers []OfferResponse `json:"offers"`
}

// OfferTargetResponse reports how far the offer's team got towards the target.
type OfferTargetResponse struct {
	Offer                OfferResponse   `json:"offer"`
	Period               PeriodResponse  `json:"period"`
	TotalSales           decimal.Decimal `json:"totalSales"`
	TotalDeals           int             `json:"totalDeals"`
	AttainmentPercentage decimal.Decimal `json:"attainmentPercentage"`
	TargetMet            bool            `json:"targetMet"`
}

func ToOfferResponse(o domain.Offer) OfferResponse {
	return OfferResponse{
		OfferID:     o.OfferID,
		OfferAmount: o.OfferAmount,
		Bonus:       o.Bonus,
		Target:      o.Target,
		Remarks:     o.Remarks,
		OfferDate:   o.OfferDate.Format(domain.DateLayout),
		TeamID:      o.TeamID,
		TeamName:    o.TeamName,
		CreatedAt:   o.CreatedAt,
	}
}

func ToListOffersResponse(offers []domain.Offer) ListOffersResponse {
	resp := ListOffersResponse{Offers: make([]OfferResponse, len(offers))}
	for i, o := range offers {
		resp.Offers[i] = ToOfferResponse(o)
	}
	return resp
}

func ToOfferTargetResponse(p domain.OfferTargetProgress) OfferTargetResponse {
	return OfferTargetResponse{
		Offer:                ToOfferResponse(p.Offer),
		Period:               ToPeriodResponse(p.Period),
		TotalSales:           p.TotalSales,
		TotalDeals:           p.TotalDeals,
		AttainmentPercentage: p.AttainmentPercentage,
		TargetMet:            p.TargetMet,
	}
}
