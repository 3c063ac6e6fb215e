package dto

import (
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDealRequest proposes a deal code; the stored code may be the next free one.
// Required fields are checked by the service so that every missing field is reported at once.
type CreateDealRequest struct {
	DealCode       string                 `json:"dealCode"`
	ClientID       string                 `json:"clientID"`
	DealName       string                 `json:"dealName"`
	WorkTypeID     string                 `json:"workTypeID"`
	SourceTypeID   string                 `json:"sourceTypeID"`
	DealValue      *decimal.Decimal       `json:"dealValue"`
	DealDate       string                 `json:"dealDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate        string                 `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Remarks        string                 `json:"remarks"`
	InitialPayment *InitialPaymentRequest `json:"initialPayment" binding:"omitempty"`
}

// InitialPaymentRequest records money received together with the deal.
type InitialPaymentRequest struct {
	ReceivedAmount decimal.Decimal `json:"receivedAmount"`
	PaymentDate    string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Remarks        string          `json:"remarks"`
	ReceiptURL     string          `json:"receiptURL" binding:"omitempty,url"`
}

// MissingFields names the required fields left empty, in request order.
func (r CreateDealRequest) MissingFields() []string {
	var missing []string
	check := func(name string, empty bool) {
		if empty {
			missing = append(missing, name)
		}
	}
	check("dealCode", r.DealCode == "")
	check("clientID", r.ClientID == "")
	check("dealName", r.DealName == "")
	check("workTypeID", r.WorkTypeID == "")
	check("sourceTypeID", r.SourceTypeID == "")
	check("dealValue", r.DealValue == nil)
	check("dealDate", r.DealDate == "")
	check("dueDate", r.DueDate == "")
	return missing
}

// UpdateDealRequest uses pointers to differentiate between omitted fields and zero-value fields.
type UpdateDealRequest struct {
	DealName     *string          `json:"dealName"`
	WorkTypeID   *string          `json:"workTypeID"`
	SourceTypeID *string          `json:"sourceTypeID"`
	DealValue    *decimal.Decimal `json:"dealValue"`
	DealDate     *string          `json:"dealDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate      *string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Remarks      *string          `json:"remarks"`
}

// ListDealsParams defines query parameters for listing deals.
type ListDealsParams struct {
	ClientID  string `form:"clientID"`
	UserID    string `form:"userID"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

type DealResponse struct {
	DealID         string            `json:"dealID"`
	DealCode       string            `json:"dealCode"`
	ClientID       string            `json:"clientID"`
	ClientName     string            `json:"clientName,omitempty"`
	DealName       string            `json:"dealName"`
	WorkTypeID     string            `json:"workTypeID"`
	WorkTypeName   string            `json:"workTypeName,omitempty"`
	SourceTypeID   string            `json:"sourceTypeID"`
	SourceTypeName string            `json:"sourceTypeName,omitempty"`
	UserID         string            `json:"userID"`
	UserName       string            `json:"userName,omitempty"`
	DealValue      decimal.Decimal   `json:"dealValue"`
	DealDate       string            `json:"dealDate"`
	DueDate        string            `json:"dueDate"`
	Remarks        string            `json:"remarks"`
	TotalPaid      decimal.Decimal   `json:"totalPaid"`
	CreatedAt      time.Time         `json:"createdAt"`
	Payments       []PaymentResponse `json:"payments"`
}

type ListDealsResponse struct {
	Deals     []DealResponse `json:"deals"`
	NextToken string         `json:"nextToken,omitempty"`
}

func ToDealResponse(d domain.Deal) DealResponse {
	resp := DealResponse{
		DealID:         d.DealID,
		DealCode:       d.DealCode,
		ClientID:       d.ClientID,
		ClientName:     d.ClientName,
		DealName:       d.DealName,
		WorkTypeID:     d.WorkTypeID,
		WorkTypeName:   d.WorkTypeName,
		SourceTypeID:   d.SourceTypeID,
		SourceTypeName: d.SourceTypeName,
		UserID:         d.UserID,
		UserName:       d.UserName,
		DealValue:      d.DealValue,
		DealDate:       d.DealDate.Format(domain.DateLayout),
		DueDate:        d.DueDate.Format(domain.DateLayout),
		Remarks:        d.Remarks,
		TotalPaid:      d.VerifiedPaid(),
		CreatedAt:      d.CreatedAt,
		Payments:       make([]PaymentResponse, len(d.Payments)),
	}
	for i, p := range d.Payments {
		resp.Payments[i] = ToPaymentResponse(p)
	}
	return resp
}

func ToListDealsResponse(deals []domain.Deal, nextToken string) ListDealsResponse {
	resp := ListDealsResponse{Deals: make([]DealResponse, len(deals)), NextToken: nextToken}
	for i, d := range deals {
		resp.Deals[i] = ToDealResponse(d)
	}
	return resp
}
