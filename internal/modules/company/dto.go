package company

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCompanyRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

type AddOfferingRequest struct {
	ServiceID   int64    `json:"service_id" binding:"required"`
	CustomPrice *float64 `json:"custom_price"`
	Notes       string   `json:"notes"`
}

type UpdateOfferingRequest struct {
	CustomPrice *float64 `json:"custom_price"`
	Notes       *string  `json:"notes"`
	IsActive    *bool    `json:"is_active"`
}

type ListQuery struct {
	Page     int   `form:"page"`
	Limit    int   `form:"limit"`
	IsActive *bool `form:"is_active"`
}
