package repository

import (
	"context"
	"time"

	"wellbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	CustomerID        int64     `gorm:"column:customer_id"`
	BookingDate       time.Time `gorm:"column:booking_date"`
	BookingTime       string    `gorm:"column:booking_time"`
	Duration          int       `gorm:"column:duration"`
	TotalPrice        float64   `gorm:"column:total_price"`
	Status            string    `gorm:"column:status"`
	PaymentStatus     string    `gorm:"column:payment_status"`
	AssignedCompanyID *int64    `gorm:"column:assigned_company_id"`
	AssignedUserID    *int64    `gorm:"column:assigned_user_id"`
	AssignedBy        *int64    `gorm:"column:assigned_by"`
	CustomerNotes     *string   `gorm:"column:customer_notes"`
	AdminNotes        *string   `gorm:"column:admin_notes"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

type bookingServiceModel struct {
	ID               int64    `gorm:"column:id;primaryKey"`
	BookingID        int64    `gorm:"column:booking_id;index"`
	ServiceID        int64    `gorm:"column:service_id"`
	CompanyServiceID *int64   `gorm:"column:company_service_id"`
	Quantity         int      `gorm:"column:quantity"`
	CustomPrice      *float64 `gorm:"column:custom_price"`
}

func (bookingServiceModel) TableName() string { return "booking_services" }

func toDomainBooking(m bookingModel, lines []bookingServiceModel) *domain.Booking {
	var customerNotes, adminNotes string
	if m.CustomerNotes != nil {
		customerNotes = *m.CustomerNotes
	}
	if m.AdminNotes != nil {
		adminNotes = *m.AdminNotes
	}

	services := make([]domain.BookingService, 0, len(lines))
	for _, l := range lines {
		services = append(services, domain.BookingService{
			ServiceID:        l.ServiceID,
			CompanyServiceID: l.CompanyServiceID,
			Quantity:         l.Quantity,
			CustomPrice:      l.CustomPrice,
		})
	}

	return &domain.Booking{
		ID:                m.ID,
		CustomerID:        m.CustomerID,
		Services:          services,
		BookingDate:       m.BookingDate,
		BookingTime:       m.BookingTime,
		Duration:          m.Duration,
		TotalPrice:        m.TotalPrice,
		Status:            domain.BookingStatus(m.Status),
		PaymentStatus:     domain.PaymentStatus(m.PaymentStatus),
		AssignedCompanyID: m.AssignedCompanyID,
		AssignedUserID:    m.AssignedUserID,
		AssignedBy:        m.AssignedBy,
		CustomerNotes:     customerNotes,
		AdminNotes:        adminNotes,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var customerNotes, adminNotes *string
	if b.CustomerNotes != "" {
		v := b.CustomerNotes
		customerNotes = &v
	}
	if b.AdminNotes != "" {
		v := b.AdminNotes
		adminNotes = &v
	}

	return bookingModel{
		ID:                b.ID,
		CustomerID:        b.CustomerID,
		BookingDate:       b.BookingDate,
		BookingTime:       b.BookingTime,
		Duration:          b.Duration,
		TotalPrice:        b.TotalPrice,
		Status:            string(b.Status),
		PaymentStatus:     string(b.PaymentStatus),
		AssignedCompanyID: b.AssignedCompanyID,
		AssignedUserID:    b.AssignedUserID,
		AssignedBy:        b.AssignedBy,
		CustomerNotes:     customerNotes,
		AdminNotes:        adminNotes,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// Create inserts the booking and its service lines in one transaction.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	lines := make([]bookingServiceModel, 0, len(b.Services))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, s := range b.Services {
			lines = append(lines, bookingServiceModel{
				BookingID:        m.ID,
				ServiceID:        s.ServiceID,
				CompanyServiceID: s.CompanyServiceID,
				Quantity:         s.Quantity,
				CustomPrice:      s.CustomPrice,
			})
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	*b = *toDomainBooking(m, lines)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}

	lines, err := r.linesFor(ctx, []int64{m.ID})
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m, lines[m.ID]), nil
}

// Update persists booking fields. Service lines are immutable after creation.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}

	lines, err := r.linesFor(ctx, []int64{m.ID})
	if err != nil {
		return err
	}
	*b = *toDomainBooking(m, lines[m.ID])
	return nil
}

type BookingFilter struct {
	Status            string
	PaymentStatus     string
	CustomerID        *int64
	AssignedCompanyID *int64
	AssignedUserID    *int64
	StartDate         *time.Time
	EndDate           *time.Time
	Page              int
	Limit             int
	SortBy            string
	SortDesc          bool
}

var sortableBookingColumns = map[string]string{
	"created_at":   "created_at",
	"booking_date": "booking_date",
	"total_price":  "total_price",
	"status":       "status",
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilter) ([]*domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.AssignedCompanyID != nil {
		q = q.Where("assigned_company_id = ?", *f.AssignedCompanyID)
	}
	if f.AssignedUserID != nil {
		q = q.Where("assigned_user_id = ?", *f.AssignedUserID)
	}
	if f.StartDate != nil {
		q = q.Where("booking_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("booking_date <= ?", *f.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortableBookingColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	order := column + " ASC"
	if f.SortDesc {
		order = column + " DESC"
	}
	q = q.Order(order)

	if f.Limit > 0 {
		q = q.Offset((f.Page - 1) * f.Limit).Limit(f.Limit)
	}

	var models []bookingModel
	if err := q.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	return r.attachLines(ctx, models, total)
}

// ListActiveOnDay returns all bookings on the given calendar day whose status
// still occupies the schedule (everything except completed and cancelled).
func (r *BookingRepository) ListActiveOnDay(ctx context.Context, day time.Time) ([]*domain.Booking, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.Add(24 * time.Hour)

	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("booking_date >= ? AND booking_date < ?", startOfDay, endOfDay).
		Where("status NOT IN ?", []string{
			string(domain.BookingCancelled),
			string(domain.BookingCompleted),
		}).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	bookings, _, err := r.attachLines(ctx, models, int64(len(models)))
	return bookings, err
}

func (r *BookingRepository) attachLines(ctx context.Context, models []bookingModel, total int64) ([]*domain.Booking, int64, error) {
	ids := make([]int64, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}

	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	bookings := make([]*domain.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, toDomainBooking(m, lines[m.ID]))
	}
	return bookings, total, nil
}

func (r *BookingRepository) linesFor(ctx context.Context, bookingIDs []int64) (map[int64][]bookingServiceModel, error) {
	result := make(map[int64][]bookingServiceModel, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return result, nil
	}

	var lines []bookingServiceModel
	tx := r.db.WithContext(ctx).
		Where("booking_id IN ?", bookingIDs).
		Order("id ASC").
		Find(&lines)
	if tx.Error != nil {
		return nil, tx.Error
	}

	for _, l := range lines {
		result[l.BookingID] = append(result[l.BookingID], l)
	}
	return result, nil
}
