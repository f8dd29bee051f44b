package booking

import "wellbook/internal/domain"

type BookingServiceInput struct {
	ServiceID        int64    `json:"service_id" binding:"required"`
	CompanyServiceID *int64   `json:"company_service_id"`
	Quantity         int      `json:"quantity" binding:"required,min=1"`
	CustomPrice      *float64 `json:"custom_price"`
}

type CreateBookingRequest struct {
	Services      []BookingServiceInput `json:"services" binding:"required,min=1"`
	BookingDate   string                `json:"booking_date" binding:"required"`
	BookingTime   string                `json:"booking_time" binding:"required"`
	CustomerNotes string                `json:"customer_notes" binding:"max=500"`
}

type UpdateStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	PaymentStatus string `json:"payment_status"`
	AdminNotes    string `json:"admin_notes" binding:"max=1000"`
}

type UpdateNotesRequest struct {
	AdminNotes string `json:"admin_notes" binding:"required,max=1000"`
}

type AssignRequest struct {
	CompanyID  *int64 `json:"company_id"`
	UserID     *int64 `json:"user_id"`
	AdminNotes string `json:"admin_notes" binding:"max=1000"`
}

type AssignToMemberRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	AdminNotes string `json:"admin_notes" binding:"max=1000"`
}

type ListQuery struct {
	Page              int    `form:"page"`
	Limit             int    `form:"limit"`
	Status            string `form:"status"`
	PaymentStatus     string `form:"payment_status"`
	CustomerID        *int64 `form:"customer_id"`
	AssignedCompanyID *int64 `form:"assigned_company_id"`
	AssignedUserID    *int64 `form:"assigned_user_id"`
	StartDate         string `form:"start_date"`
	EndDate           string `form:"end_date"`
	SortBy            string `form:"sort_by"`
	SortOrder         string `form:"sort_order"`
}

type ListResult struct {
	Bookings []*domain.Booking `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
