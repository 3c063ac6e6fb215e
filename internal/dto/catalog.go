package dto

import "github.com/SscSPs/sales_crm_app/internal/core/domain"

// CreateCatalogEntryRequest creates a work type or a source type.
type CreateCatalogEntryRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

type CatalogEntryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ListCatalogEntriesResponse struct {
	Entries []CatalogEntryResponse `json:"entries"`
}

func ToWorkTypeResponse(w domain.WorkType) CatalogEntryResponse {
	return CatalogEntryResponse{ID: w.WorkTypeID, Name: w.Name, Description: w.Description}
}

func ToSourceTypeResponse(s domain.SourceType) CatalogEntryResponse {
	return CatalogEntryResponse{ID: s.SourceTypeID, Name: s.Name, Description: s.Description}
}

func ToWorkTypesResponse(workTypes []domain.WorkType) ListCatalogEntriesResponse {
	resp := ListCatalogEntriesResponse{Entries: make([]CatalogEntryResponse, len(workTypes))}
	for i, w := range workTypes {
		resp.Entries[i] = ToWorkTypeResponse(w)
	}
	return resp
}

func ToSourceTypesResponse(sourceTypes []domain.SourceType) ListCatalogEntriesResponse {
	resp := ListCatalogEntriesResponse{Entries: make([]CatalogEntryResponse, len(sourceTypes))}
	for i, s := range sourceTypes {
		resp.Entries[i] = ToSourceTypeResponse(s)
	}
	return resp
}
