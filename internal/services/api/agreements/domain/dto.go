// Package domain holds DTOs and ports for the agreements catalog
package domain

// Date bounds travel as plain YYYY-MM-DD strings
// The service parses them; the core only ever sees time instants

// SearchInput is the catalog search payload
// Absent filter fields mean no constraint; zero page and limit pick up the
// documented defaults (page 1, limit 10)
type SearchInput struct {
	Status    string   `json:"status,omitempty" validate:"omitempty,min=1" example:"Active"`
	Statuses  []string `json:"statuses,omitempty" validate:"omitempty,min=1,dive,min=1"`
	DateFrom  string   `json:"dateFrom,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	DateTo    string   `json:"dateTo,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-12-31"`
	Search    string   `json:"search,omitempty" example:"universidad"`
	SortBy    string   `json:"sortBy,omitempty" validate:"omitempty,oneof=name status startDate endDate createdAt" example:"startDate"`
	SortOrder string   `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc" example:"asc"`
	Page      int      `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	Limit     int      `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"10"`
}

// AgreementRow is one record in a search response
type AgreementRow struct {
	ID          string `json:"id" example:"5e7d1c6e-0b6a-4f1e-9c2d-3a8f5b1c9d70"`
	Name        string `json:"name" example:"Convenio Marco Universidad Nacional"`
	Description string `json:"description,omitempty" example:"Intercambio académico y doble titulación"`
	Status      string `json:"status" example:"Active"`
	StartDate   string `json:"startDate" example:"2023-03-01"`
	EndDate     string `json:"endDate" example:"2026-02-28"`
	CreatedAt   string `json:"createdAt" example:"2023-02-20T10:00:00Z"`
}

// SearchOutput is the service result before the transport envelope
// Page and Limit are the normalized values the run actually used
type SearchOutput struct {
	Items []AgreementRow
	Total int
	Page  int
	Limit int
}

// StatusesOutput lists the distinct status labels present in the catalog
type StatusesOutput struct {
	Statuses []string `json:"statuses"`
}
