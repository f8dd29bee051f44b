package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"wellbook/internal/domain"
	"wellbook/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	bookings        BookingRepository
	services        ServiceCatalog
	companyServices CompanyServiceCatalog
	companies       CompanyRepository
	users           UserRepository
}

func NewService(
	bookings BookingRepository,
	services ServiceCatalog,
	companyServices CompanyServiceCatalog,
	companies CompanyRepository,
	users UserRepository,
) *Service {
	return &Service{
		bookings:        bookings,
		services:        services,
		companyServices: companyServices,
		companies:       companies,
		users:           users,
	}
}

type validatedLine struct {
	line     domain.BookingService
	service  *domain.Service
	offering *domain.CompanyService
}

func (s *Service) Create(ctx context.Context, customerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	day, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrValidation
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	startMinutes, ok := minutesSinceMidnight(req.BookingTime)
	if !ok {
		return nil, ErrValidation
	}

	// booking start must be strictly in the future
	start := day.Add(time.Duration(startMinutes) * time.Minute)
	if !start.After(time.Now().UTC()) {
		return nil, ErrValidation
	}

	if len(req.CustomerNotes) > domain.MaxCustomerNotesLen {
		return nil, ErrValidation
	}

	lines, err := s.validateLines(ctx, req.Services)
	if err != nil {
		return nil, err
	}

	duration, totalPrice := bookingTotals(lines)
	if duration > domain.MaxBookingDuration {
		return nil, ErrDurationTooLong
	}

	if err := s.checkSchedulingConflicts(ctx, day, startMinutes, duration); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		CustomerID:    customerID,
		BookingDate:   day,
		BookingTime:   req.BookingTime,
		Duration:      duration,
		TotalPrice:    totalPrice,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		CustomerNotes: req.CustomerNotes,
	}
	for _, l := range lines {
		b.Services = append(b.Services, l.line)
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) validateLines(ctx context.Context, inputs []BookingServiceInput) ([]validatedLine, error) {
	if len(inputs) == 0 {
		return nil, ErrValidation
	}

	lines := make([]validatedLine, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, ErrValidation
		}
		if in.CustomPrice != nil && *in.CustomPrice < 0 {
			return nil, ErrValidation
		}

		svc, err := s.services.GetByID(ctx, in.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, err
		}
		if !svc.IsActive {
			return nil, ErrServiceNotFound
		}

		var offering *domain.CompanyService
		if in.CompanyServiceID != nil {
			offering, err = s.companyServices.GetByID(ctx, *in.CompanyServiceID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrServiceNotFound
				}
				return nil, err
			}
			if !offering.IsActive {
				return nil, ErrServiceNotFound
			}
		}

		lines = append(lines, validatedLine{
			line: domain.BookingService{
				ServiceID:        in.ServiceID,
				CompanyServiceID: in.CompanyServiceID,
				Quantity:         in.Quantity,
				CustomPrice:      in.CustomPrice,
			},
			service:  svc,
			offering: offering,
		})
	}
	return lines, nil
}

// bookingTotals sums duration and price across the lines. Price precedence
// per line: request custom price, then company offering price, then the
// catalog base price.
func bookingTotals(lines []validatedLine) (int, float64) {
	duration := 0
	total := 0.0

	for _, l := range lines {
		duration += l.service.Duration * l.line.Quantity

		price := l.service.Price
		if l.offering != nil && l.offering.CustomPrice != nil {
			price = *l.offering.CustomPrice
		}
		if l.line.CustomPrice != nil {
			price = *l.line.CustomPrice
		}
		total += price * float64(l.line.Quantity)
	}

	return duration, math.Round(total*100) / 100
}

func (s *Service) checkSchedulingConflicts(ctx context.Context, day time.Time, newStart, duration int) error {
	sameDay, err := s.bookings.ListActiveOnDay(ctx, day)
	if err != nil {
		return err
	}

	newEnd := newStart + duration
	for _, b := range sameDay {
		existingStart, ok := minutesSinceMidnight(b.BookingTime)
		if !ok {
			continue
		}
		existingEnd := existingStart + b.Duration
		if overlaps(newStart, newEnd, existingStart, existingEnd) {
			return ErrTimeConflict
		}
	}
	return nil
}

// Actor identifies the authenticated caller for access checks.
type Actor struct {
	UserID    int64
	Role      domain.UserRole
	CompanyID *int64
}

func (s *Service) GetByID(ctx context.Context, id int64, actor Actor) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkBookingAccess(b, actor); err != nil {
		return nil, err
	}
	return b, nil
}

func checkBookingAccess(b *domain.Booking, actor Actor) error {
	switch {
	case actor.Role == domain.RoleSuperAdmin:
		return nil
	case b.CustomerID == actor.UserID:
		return nil
	case actor.Role == domain.RoleCompanyAdmin &&
		b.AssignedCompanyID != nil &&
		actor.CompanyID != nil &&
		*b.AssignedCompanyID == *actor.CompanyID:
		return nil
	case actor.Role == domain.RoleMember &&
		b.AssignedUserID != nil &&
		*b.AssignedUserID == actor.UserID:
		return nil
	}
	return ErrForbidden
}

func (s *Service) ListMine(ctx context.Context, customerID int64, q ListQuery) (*ListResult, error) {
	f, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	f.CustomerID = &customerID
	f.AssignedCompanyID = nil
	f.AssignedUserID = nil
	return s.list(ctx, f)
}

func (s *Service) ListAll(ctx context.Context, q ListQuery) (*ListResult, error) {
	f, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, f)
}

// ListRequests lists new booking requests, which are always the pending ones.
// Any status filter in the query is overridden.
func (s *Service) ListRequests(ctx context.Context, q ListQuery) (*ListResult, error) {
	q.Status = string(domain.BookingPending)
	return s.ListAll(ctx, q)
}

func (s *Service) ListCompanyAssigned(ctx context.Context, companyID int64, q ListQuery) (*ListResult, error) {
	f, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	f.AssignedCompanyID = &companyID
	f.CustomerID = nil
	f.AssignedUserID = nil
	return s.list(ctx, f)
}

func (s *Service) ListAssignedToMe(ctx context.Context, userID int64, q ListQuery) (*ListResult, error) {
	f, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	f.AssignedUserID = &userID
	f.CustomerID = nil
	f.AssignedCompanyID = nil
	return s.list(ctx, f)
}

func (s *Service) list(ctx context.Context, f repository.BookingFilter) (*ListResult, error) {
	bookings, total, err := s.bookings.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Bookings: bookings,
		Total:    total,
		Page:     f.Page,
		Limit:    f.Limit,
	}, nil
}

func buildFilter(q ListQuery) (repository.BookingFilter, error) {
	f := repository.BookingFilter{
		Status:            q.Status,
		PaymentStatus:     q.PaymentStatus,
		CustomerID:        q.CustomerID,
		AssignedCompanyID: q.AssignedCompanyID,
		AssignedUserID:    q.AssignedUserID,
		Page:              q.Page,
		Limit:             q.Limit,
		SortBy:            q.SortBy,
		SortDesc:          q.SortOrder != "asc",
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.SortBy == "" {
		f.SortBy = "created_at"
	}

	if q.StartDate != "" {
		t, err := time.Parse("2006-01-02", q.StartDate)
		if err != nil {
			return f, ErrValidation
		}
		f.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := time.Parse("2006-01-02", q.EndDate)
		if err != nil {
			return f, ErrValidation
		}
		f.EndDate = &t
	}

	return f, nil
}

func (s *Service) Cancel(ctx context.Context, id int64, actor Actor) (*domain.Booking, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	// members never cancel bookings
	if actor.Role == domain.RoleMember {
		return nil, ErrForbidden
	}

	if actor.Role != domain.RoleSuperAdmin && b.CustomerID != actor.UserID {
		return nil, ErrForbidden
	}

	if b.Status.IsTerminal() {
		return nil, ErrInvalidStatusTransition
	}

	b.Status = domain.BookingCancelled
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Assign routes a pending booking to a company, a member, or both. Super
// admin only.
func (s *Service) Assign(ctx context.Context, id int64, req AssignRequest, assignedBy int64) (*domain.Booking, error) {
	if req.CompanyID == nil && req.UserID == nil {
		return nil, ErrValidation
	}
	if len(req.AdminNotes) > domain.MaxAdminNotesLen {
		return nil, ErrValidation
	}

	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyID != nil {
		if _, err := s.companies.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, err
		}
		b.AssignedCompanyID = req.CompanyID
	}

	if req.UserID != nil {
		user, err := s.users.GetByID(ctx, *req.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}

		if req.CompanyID != nil {
			if user.CompanyID == nil || *user.CompanyID != *req.CompanyID {
				return nil, ErrValidation
			}
		} else if user.CompanyID != nil {
			b.AssignedCompanyID = user.CompanyID
		}

		b.AssignedUserID = req.UserID
	}

	b.AssignedBy = &assignedBy
	if req.AdminNotes != "" {
		b.AdminNotes = req.AdminNotes
	}

	if req.UserID != nil {
		b.Status = domain.BookingAssignedToMember
	} else {
		b.Status = domain.BookingAssignedToCompany
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// AssignToMember hands a company-assigned booking to one of the company's
// own members.
func (s *Service) AssignToMember(ctx context.Context, id int64, req AssignToMemberRequest, companyID, assignedBy int64) (*domain.Booking, error) {
	if len(req.AdminNotes) > domain.MaxAdminNotesLen {
		return nil, ErrValidation
	}

	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.AssignedCompanyID == nil || *b.AssignedCompanyID != companyID {
		return nil, ErrForbidden
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.CompanyID == nil || *user.CompanyID != companyID {
		return nil, ErrValidation
	}

	b.AssignedUserID = &req.UserID
	b.AssignedBy = &assignedBy
	b.Status = domain.BookingAssignedToMember
	if req.AdminNotes != "" {
		b.AdminNotes = req.AdminNotes
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest, actor Actor) (*domain.Booking, error) {
	newStatus := domain.BookingStatus(req.Status)
	if !validStatus(newStatus) {
		return nil, ErrValidation
	}
	if len(req.AdminNotes) > domain.MaxAdminNotesLen {
		return nil, ErrValidation
	}

	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkStatusUpdatePermissions(b, actor, newStatus); err != nil {
		return nil, err
	}

	if !canTransition(b.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	b.Status = newStatus
	if req.PaymentStatus != "" {
		ps := domain.PaymentStatus(req.PaymentStatus)
		if ps != domain.PaymentPending && ps != domain.PaymentPaid && ps != domain.PaymentRefunded {
			return nil, ErrValidation
		}
		b.PaymentStatus = ps
	}
	if req.AdminNotes != "" {
		b.AdminNotes = req.AdminNotes
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateNotes replaces the admin notes without touching status or payment.
// Works on any booking, terminal ones included.
func (s *Service) UpdateNotes(ctx context.Context, id int64, req UpdateNotesRequest) (*domain.Booking, error) {
	if req.AdminNotes == "" || len(req.AdminNotes) > domain.MaxAdminNotesLen {
		return nil, ErrValidation
	}

	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	b.AdminNotes = req.AdminNotes
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// memberAllowedStatuses are the only targets a member may move their own
// assignments to.
var memberAllowedStatuses = map[domain.BookingStatus]bool{
	domain.BookingConfirmed:  true,
	domain.BookingInProgress: true,
	domain.BookingCompleted:  true,
}

func checkStatusUpdatePermissions(b *domain.Booking, actor Actor, newStatus domain.BookingStatus) error {
	switch actor.Role {
	case domain.RoleSuperAdmin:
		return nil

	case domain.RoleCompanyAdmin:
		if b.AssignedCompanyID == nil || actor.CompanyID == nil || *b.AssignedCompanyID != *actor.CompanyID {
			return ErrForbidden
		}
		return nil

	case domain.RoleMember:
		if b.AssignedUserID == nil || *b.AssignedUserID != actor.UserID {
			return ErrForbidden
		}
		if !memberAllowedStatuses[newStatus] {
			return ErrForbidden
		}
		return nil
	}

	return ErrForbidden
}

func (s *Service) CompanyMembers(ctx context.Context, companyID int64) ([]*domain.User, error) {
	return s.users.ListMembers(ctx, companyID)
}

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
