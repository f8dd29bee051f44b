package domain

import "time"

type ServiceCategoryType string

const (
	CategoryTherapy ServiceCategoryType = "THERAPY"
	CategorySpa     ServiceCategoryType = "SPA"
)

func ValidCategoryType(t string) bool {
	switch ServiceCategoryType(t) {
	case CategoryTherapy, CategorySpa:
		return true
	}
	return false
}

type ServiceCategory struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name" validate:"required"`
	Type        ServiceCategoryType `json:"type" validate:"required"`
	Slug        string              `json:"slug" validate:"required"`
	IsActive    bool                `json:"is_active"`
	Description string              `json:"description,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	CategoryID  int64     `json:"category_id" validate:"required"`
	Duration    int       `json:"duration" validate:"required,gte=1"` // minutes
	Price       float64   `json:"price" validate:"gte=0"`
	IsActive    bool      `json:"is_active"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
