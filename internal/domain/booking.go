package domain

import "time"

type BookingStatus string

const (
	BookingPending           BookingStatus = "pending"
	BookingAssignedToCompany BookingStatus = "assigned_to_company"
	BookingAssignedToMember  BookingStatus = "assigned_to_member"
	BookingConfirmed         BookingStatus = "confirmed"
	BookingInProgress        BookingStatus = "in_progress"
	BookingCompleted         BookingStatus = "completed"
	BookingCancelled         BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// MaxBookingDuration caps the summed duration of a booking at 8 hours.
const MaxBookingDuration = 480

// Note length limits, in characters.
const (
	MaxCustomerNotesLen = 500
	MaxAdminNotesLen    = 1000
)

// BookingService is one line item of a booking: a catalog service, an optional
// per-company override, a quantity and an optional custom unit price.
type BookingService struct {
	ServiceID        int64    `json:"service_id" validate:"required"`
	CompanyServiceID *int64   `json:"company_service_id,omitempty"`
	Quantity         int      `json:"quantity" validate:"gte=1"`
	CustomPrice      *float64 `json:"custom_price,omitempty" validate:"omitempty,gte=0"`
}

type Booking struct {
	ID                int64            `json:"id"`
	CustomerID        int64            `json:"customer_id" validate:"required"`
	Services          []BookingService `json:"services" validate:"required,min=1"`
	BookingDate       time.Time        `json:"booking_date" validate:"required"`
	BookingTime       string           `json:"booking_time" validate:"required"` // HH:MM, 24h
	Duration          int              `json:"duration"`                         // minutes, 1..480
	TotalPrice        float64          `json:"total_price"`
	Status            BookingStatus    `json:"status"`
	PaymentStatus     PaymentStatus    `json:"payment_status"`
	AssignedCompanyID *int64           `json:"assigned_company_id,omitempty"`
	AssignedUserID    *int64           `json:"assigned_user_id,omitempty"`
	AssignedBy        *int64           `json:"assigned_by,omitempty"`
	CustomerNotes     string           `json:"customer_notes,omitempty"`
	AdminNotes        string           `json:"admin_notes,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// IsTerminal reports whether no further status transition is possible.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}
