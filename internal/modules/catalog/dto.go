package catalog

import "wellbook/internal/domain"

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"category_id" binding:"required"`
	Duration    int     `json:"duration" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Notes       string  `json:"notes"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	CategoryID  *int64   `json:"category_id"`
	Duration    *int     `json:"duration"`
	Price       *float64 `json:"price"`
	Notes       *string  `json:"notes"`
	IsActive    *bool    `json:"is_active"`
}

type ServiceListQuery struct {
	CategoryID *int64 `form:"category_id"`
	IsActive   *bool  `form:"is_active"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

type ServiceListResult struct {
	Services []*domain.Service `json:"services"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// ServiceProvider is a company offering a given service, with the price it
// charges for it.
type ServiceProvider struct {
	CompanyID        int64   `json:"company_id"`
	CompanyName      string  `json:"company_name"`
	CompanySlug      string  `json:"company_slug"`
	CompanyServiceID int64   `json:"company_service_id"`
	Price            float64 `json:"price"`
	Notes            string  `json:"notes,omitempty"`
}
