package dto

import (
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
)

// CreateClientRequest proposes a client code; the stored code may be the next free one.
type CreateClientRequest struct {
	ClientCode  string `json:"clientCode" binding:"required"`
	FullName    string `json:"fullName" binding:"required,max=255"`
	Email       string `json:"email" binding:"omitempty,email"`
	Nationality string `json:"nationality"`
	Contact     string `json:"contact"`
}

// UpdateClientRequest uses pointers to differentiate between omitted fields and zero-value fields.
type UpdateClientRequest struct {
	FullName    *string `json:"fullName" binding:"omitempty,max=255"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Nationality *string `json:"nationality"`
	Contact     *string `json:"contact"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

type ClientResponse struct {
	ClientID    string         `json:"clientID"`
	ClientCode  string         `json:"clientCode"`
	FullName    string         `json:"fullName"`
	Email       string         `json:"email"`
	Nationality string         `json:"nationality"`
	Contact     string         `json:"contact"`
	UserID      string         `json:"userID"`
	CreatedAt   time.Time      `json:"createdAt"`
	Deals       []DealResponse `json:"deals,omitempty"`
}

type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// LatestCodeResponse reports the newest code of an identifier sequence.
type LatestCodeResponse struct {
	LatestCode string `json:"latestCode"`
	NextCode   string `json:"nextCode"`
}

func ToClientResponse(c domain.Client) ClientResponse {
	resp := ClientResponse{
		ClientID:    c.ClientID,
		ClientCode:  c.ClientCode,
		FullName:    c.FullName,
		Email:       c.Email,
		Nationality: c.Nationality,
		Contact:     c.Contact,
		UserID:      c.UserID,
		CreatedAt:   c.CreatedAt,
	}
	for _, d := range c.Deals {
		resp.Deals = append(resp.Deals, ToDealResponse(d))
	}
	return resp
}

func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	resp := ListClientsResponse{Clients: make([]ClientResponse, len(clients))}
	for i, c := range clients {
		resp.Clients[i] = ToClientResponse(c)
	}
	return resp
}
