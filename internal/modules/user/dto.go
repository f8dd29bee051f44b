package user

import "wellbook/internal/domain"

type UpdateUserRequest struct {
	Role      *string `json:"role"`
	CompanyID *int64  `json:"company_id"`
	IsActive  *bool   `json:"is_active"`
	Password  *string `json:"password"`
}

type ListQuery struct {
	Role      string `form:"role"`
	CompanyID *int64 `form:"company_id"`
	IsActive  *bool  `form:"is_active"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

type ListResult struct {
	Users []*domain.User `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
