package domain

import "time"

type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Slug      string    `json:"slug" validate:"required"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyService layers a per-company price/availability override on top of a
// global catalog service. The (company, service) pair is unique.
type CompanyService struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id" validate:"required"`
	ServiceID   int64     `json:"service_id" validate:"required"`
	CustomPrice *float64  `json:"custom_price,omitempty" validate:"omitempty,gte=0"`
	IsActive    bool      `json:"is_active"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
