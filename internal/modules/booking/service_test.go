package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"wellbook/internal/domain"
	"wellbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilter) ([]*domain.Booking, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) ListActiveOnDay(ctx context.Context, day time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockServiceCatalog struct {
	mock.Mock
}

func (m *MockServiceCatalog) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type MockCompanyServiceCatalog struct {
	mock.Mock
}

func (m *MockCompanyServiceCatalog) GetByID(ctx context.Context, id int64) (*domain.CompanyService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyService), args.Error(1)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListMembers(ctx context.Context, companyID int64) ([]*domain.User, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

type mocks struct {
	bookings        *MockBookingRepository
	services        *MockServiceCatalog
	companyServices *MockCompanyServiceCatalog
	companies       *MockCompanyRepository
	users           *MockUserRepository
}

func newServiceWithMocks() (*Service, *mocks) {
	m := &mocks{
		bookings:        new(MockBookingRepository),
		services:        new(MockServiceCatalog),
		companyServices: new(MockCompanyServiceCatalog),
		companies:       new(MockCompanyRepository),
		users:           new(MockUserRepository),
	}
	return NewService(m.bookings, m.services, m.companyServices, m.companies, m.users), m
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func futureDate() string {
	return time.Now().UTC().AddDate(0, 0, 30).Format("2006-01-02")
}

func TestCreate_Success(t *testing.T) {
	service, m := newServiceWithMocks()

	m.services.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Service{ID: 1, Duration: 60, Price: 50, IsActive: true}, nil)
	m.bookings.On("ListActiveOnDay", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := service.Create(context.Background(), 42, CreateBookingRequest{
		Services:    []BookingServiceInput{{ServiceID: 1, Quantity: 2}},
		BookingDate: futureDate(),
		BookingTime: "10:00",
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 100.0, b.TotalPrice)
	assert.Equal(t, 120, b.Duration)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.Equal(t, int64(42), b.CustomerID)
}

func TestCreate_CustomPriceOverridesBasePrice(t *testing.T) {
	service, m := newServiceWithMocks()

	m.services.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Service{ID: 1, Duration: 30, Price: 50, IsActive: true}, nil)
	m.bookings.On("ListActiveOnDay", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := service.Create(context.Background(), 42, CreateBookingRequest{
		Services:    []BookingServiceInput{{ServiceID: 1, Quantity: 2, CustomPrice: float64Ptr(40)}},
		BookingDate: futureDate(),
		BookingTime: "10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, 80.0, b.TotalPrice)
}

func TestCreate_CompanyPriceOverridesBasePrice(t *testing.T) {
	service, m := newServiceWithMocks()

	m.services.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Service{ID: 1, Duration: 30, Price: 50, IsActive: true}, nil)
	m.companyServices.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.CompanyService{ID: 7, CompanyID: 3, ServiceID: 1, CustomPrice: float64Ptr(45), IsActive: true}, nil)
	m.bookings.On("ListActiveOnDay", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := service.Create(context.Background(), 42, CreateBookingRequest{
		Services:    []BookingServiceInput{{ServiceID: 1, CompanyServiceID: int64Ptr(7), Quantity: 1}},
		BookingDate: futureDate(),
		BookingTime: "10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, 45.0, b.TotalPrice)
}

func TestCreate_PastDateRejected(t *testing.T) {
	service, _ := newServiceWithMocks()

	_, err := service.Create(context.Background(), 42, CreateBookingRequest{
		Services:    []BookingServiceInput{{ServiceID: 1, Quantity: 1}},
		BookingDate: "2020-01-01",
		BookingTime: "10:00",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreate_DurationLimit(t *testing.T) {
	service, m := newServiceWithMocks()

	// 7 x 60min + 1 x 61min = 481 minutes
	m.services.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Service{ID: 1, Duration: 481, Price: 10, IsActive: true}, nil)

	_, err := service.Create(context.Background(), 42, CreateBookingRequest{
		Services:    []BookingServiceInput{{ServiceID: 1, Quantity: 1}},
		BookingDate: futureDate(),
		BookingTime: "08:00",
	})
	assert.ErrorIs(t, err, ErrDurationTooLong)

	// exactly 480 minutes passes
	m2services := new(MockServiceCatalog)
	m2services.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Service{ID: 1, Duration: 480, Price: 10, IsActive: true}, nil)
	m.bookings.On("ListActiveOnDay", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	service2 := NewService(m.bookings, m2services, m.companyServices, m.companies, m.users)

	b, err := service2.Create(context.Background(), 42, CreateBookingRequest{
		Services:    []BookingServiceInput{{ServiceID: 1, Quantity: 1}},
		BookingDate: futureDate(),
		BookingTime: "08:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, 480, b.Duration)
}

func TestCreate_InactiveServiceRejected(t *testing.T) {
	service, m := newServiceWithMocks()

	m.services.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Service{ID: 1, Duration: 60, Price: 50, IsActive: false}, nil)

	_, err := service.Create(context.Background(), 42, CreateBookingRequest{
		Services:    []BookingServiceInput{{ServiceID: 1, Quantity: 1}},
		BookingDate: futureDate(),
		BookingTime: "10:00",
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreate_SchedulingConflict(t *testing.T) {
	service, m := newServiceWithMocks()

	m.services.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Service{ID: 1, Duration: 60, Price: 50, IsActive: true}, nil)
	// existing booking [10:00, 11:00)
	m.bookings.On("ListActiveOnDay", mock.Anything, mock.Anything).Return([]*domain.Booking{
		{ID: 1, BookingTime: "10:00", Duration: 60, Status: domain.BookingConfirmed},
	}, nil)

	// [10:30, 11:30) overlaps
	_, err := service.Create(context.Background(), 42, CreateBookingRequest{
		Services:    []BookingServiceInput{{ServiceID: 1, Quantity: 1}},
		BookingDate: futureDate(),
		BookingTime: "10:30",
	})
	assert.ErrorIs(t, err, ErrTimeConflict)

	// [11:00, 12:00) does not
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	b, err := service.Create(context.Background(), 42, CreateBookingRequest{
		Services:    []BookingServiceInput{{ServiceID: 1, Quantity: 1}},
		BookingDate: futureDate(),
		BookingTime: "11:00",
	})
	assert.NoError(t, err)
	assert.NotNil(t, b)
}

func TestUpdateStatus_MemberConfirmsOwnAssignment(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:             1,
		Status:         domain.BookingAssignedToMember,
		AssignedUserID: int64Ptr(7),
	}, nil)
	m.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	b, err := service.UpdateStatus(context.Background(), 1,
		UpdateStatusRequest{Status: string(domain.BookingConfirmed)},
		Actor{UserID: 7, Role: domain.RoleMember})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestUpdateStatus_MemberCannotAssign(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:             1,
		Status:         domain.BookingPending,
		AssignedUserID: int64Ptr(7),
	}, nil)

	_, err := service.UpdateStatus(context.Background(), 1,
		UpdateStatusRequest{Status: string(domain.BookingAssignedToCompany)},
		Actor{UserID: 7, Role: domain.RoleMember})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatus_MemberCannotTouchOthersBooking(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:             1,
		Status:         domain.BookingAssignedToMember,
		AssignedUserID: int64Ptr(8),
	}, nil)

	_, err := service.UpdateStatus(context.Background(), 1,
		UpdateStatusRequest{Status: string(domain.BookingConfirmed)},
		Actor{UserID: 7, Role: domain.RoleMember})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatus_CompanyAdminScopedToOwnCompany(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:                1,
		Status:            domain.BookingAssignedToCompany,
		AssignedCompanyID: int64Ptr(3),
	}, nil)

	_, err := service.UpdateStatus(context.Background(), 1,
		UpdateStatusRequest{Status: string(domain.BookingCancelled)},
		Actor{UserID: 7, Role: domain.RoleCompanyAdmin, CompanyID: int64Ptr(4)})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:     1,
		Status: domain.BookingCompleted,
	}, nil)

	_, err := service.UpdateStatus(context.Background(), 1,
		UpdateStatusRequest{Status: string(domain.BookingCancelled)},
		Actor{UserID: 1, Role: domain.RoleSuperAdmin})

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	service, _ := newServiceWithMocks()

	_, err := service.UpdateStatus(context.Background(), 1,
		UpdateStatusRequest{Status: "teleported"},
		Actor{UserID: 1, Role: domain.RoleSuperAdmin})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCancel_MemberForbidden(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, CustomerID: 42, Status: domain.BookingPending,
	}, nil)

	_, err := service.Cancel(context.Background(), 1, Actor{UserID: 42, Role: domain.RoleMember})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancel_CustomerOwnBooking(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, CustomerID: 42, Status: domain.BookingConfirmed,
	}, nil)
	m.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	b, err := service.Cancel(context.Background(), 1, Actor{UserID: 42, Role: domain.RoleCustomer})
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestCancel_CustomerForeignBookingForbidden(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, CustomerID: 43, Status: domain.BookingPending,
	}, nil)

	_, err := service.Cancel(context.Background(), 1, Actor{UserID: 42, Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancel_TerminalStateRejected(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, CustomerID: 42, Status: domain.BookingCompleted,
	}, nil)

	_, err := service.Cancel(context.Background(), 1, Actor{UserID: 1, Role: domain.RoleSuperAdmin})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestAssign_ToCompany(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, Status: domain.BookingPending,
	}, nil)
	m.companies.On("GetByID", mock.Anything, int64(3)).Return(&domain.Company{ID: 3}, nil)
	m.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	b, err := service.Assign(context.Background(), 1, AssignRequest{CompanyID: int64Ptr(3)}, 100)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingAssignedToCompany, b.Status)
	assert.Equal(t, int64(3), *b.AssignedCompanyID)
	assert.Equal(t, int64(100), *b.AssignedBy)
}

func TestAssign_ToUserInheritsCompany(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, Status: domain.BookingPending,
	}, nil)
	m.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID: 7, Role: domain.RoleMember, CompanyID: int64Ptr(3),
	}, nil)
	m.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	b, err := service.Assign(context.Background(), 1, AssignRequest{UserID: int64Ptr(7)}, 100)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingAssignedToMember, b.Status)
	assert.Equal(t, int64(3), *b.AssignedCompanyID)
	assert.Equal(t, int64(7), *b.AssignedUserID)
}

func TestAssign_UserCompanyMismatch(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, Status: domain.BookingPending,
	}, nil)
	m.companies.On("GetByID", mock.Anything, int64(3)).Return(&domain.Company{ID: 3}, nil)
	m.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID: 7, Role: domain.RoleMember, CompanyID: int64Ptr(4),
	}, nil)

	_, err := service.Assign(context.Background(), 1,
		AssignRequest{CompanyID: int64Ptr(3), UserID: int64Ptr(7)}, 100)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestAssign_RequiresTarget(t *testing.T) {
	service, _ := newServiceWithMocks()

	_, err := service.Assign(context.Background(), 1, AssignRequest{}, 100)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAssignToMember_Success(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, Status: domain.BookingAssignedToCompany, AssignedCompanyID: int64Ptr(3),
	}, nil)
	m.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID: 7, Role: domain.RoleMember, CompanyID: int64Ptr(3),
	}, nil)
	m.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	b, err := service.AssignToMember(context.Background(), 1,
		AssignToMemberRequest{UserID: 7, AdminNotes: "prefers mornings"}, 3, 50)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingAssignedToMember, b.Status)
	assert.Equal(t, int64(7), *b.AssignedUserID)
	assert.Equal(t, "prefers mornings", b.AdminNotes)
}

func TestAssignToMember_WrongCompany(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, Status: domain.BookingAssignedToCompany, AssignedCompanyID: int64Ptr(4),
	}, nil)

	_, err := service.AssignToMember(context.Background(), 1,
		AssignToMemberRequest{UserID: 7}, 3, 50)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAssignToMember_UserOutsideCompany(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, Status: domain.BookingAssignedToCompany, AssignedCompanyID: int64Ptr(3),
	}, nil)
	m.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID: 7, Role: domain.RoleMember, CompanyID: int64Ptr(4),
	}, nil)

	_, err := service.AssignToMember(context.Background(), 1,
		AssignToMemberRequest{UserID: 7}, 3, 50)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetByID_AccessRules(t *testing.T) {
	b := &domain.Booking{
		ID:                1,
		CustomerID:        42,
		AssignedCompanyID: int64Ptr(3),
		AssignedUserID:    int64Ptr(7),
	}

	assert.NoError(t, checkBookingAccess(b, Actor{UserID: 1, Role: domain.RoleSuperAdmin}))
	assert.NoError(t, checkBookingAccess(b, Actor{UserID: 42, Role: domain.RoleCustomer}))
	assert.NoError(t, checkBookingAccess(b, Actor{UserID: 5, Role: domain.RoleCompanyAdmin, CompanyID: int64Ptr(3)}))
	assert.NoError(t, checkBookingAccess(b, Actor{UserID: 7, Role: domain.RoleMember}))

	assert.ErrorIs(t, checkBookingAccess(b, Actor{UserID: 43, Role: domain.RoleCustomer}), ErrForbidden)
	assert.ErrorIs(t, checkBookingAccess(b, Actor{UserID: 5, Role: domain.RoleCompanyAdmin, CompanyID: int64Ptr(4)}), ErrForbidden)
	assert.ErrorIs(t, checkBookingAccess(b, Actor{UserID: 8, Role: domain.RoleMember}), ErrForbidden)
}

func TestGetByID_NotFound(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetByID(context.Background(), 1, Actor{UserID: 1, Role: domain.RoleSuperAdmin})
	assert.ErrorIs(t, err, ErrNotFound)
}

// Full lifecycle walk: pending -> assigned_to_company -> assigned_to_member
// -> confirmed -> in_progress -> completed.
func TestBookingLifecycle_EndToEnd(t *testing.T) {
	service, m := newServiceWithMocks()

	state := &domain.Booking{ID: 1, CustomerID: 42, Status: domain.BookingPending}

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(state, nil)
	m.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.companies.On("GetByID", mock.Anything, int64(3)).Return(&domain.Company{ID: 3}, nil)
	m.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID: 7, Role: domain.RoleMember, CompanyID: int64Ptr(3),
	}, nil)

	admin := Actor{UserID: 100, Role: domain.RoleSuperAdmin}
	member := Actor{UserID: 7, Role: domain.RoleMember}

	b, err := service.Assign(context.Background(), 1, AssignRequest{CompanyID: int64Ptr(3)}, 100)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingAssignedToCompany, b.Status)

	b, err = service.AssignToMember(context.Background(), 1, AssignToMemberRequest{UserID: 7}, 3, 50)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingAssignedToMember, b.Status)

	for _, next := range []domain.BookingStatus{
		domain.BookingConfirmed,
		domain.BookingInProgress,
		domain.BookingCompleted,
	} {
		b, err = service.UpdateStatus(context.Background(), 1,
			UpdateStatusRequest{Status: string(next)}, member)
		assert.NoError(t, err)
		assert.Equal(t, next, b.Status)
	}

	// completed is terminal, even for the super admin
	_, err = service.UpdateStatus(context.Background(), 1,
		UpdateStatusRequest{Status: string(domain.BookingCancelled)}, admin)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

// Note length limits

func TestCreate_CustomerNotesTooLong(t *testing.T) {
	service, _ := newServiceWithMocks()

	_, err := service.Create(context.Background(), 42, CreateBookingRequest{
		Services:      []BookingServiceInput{{ServiceID: 1, Quantity: 1}},
		BookingDate:   futureDate(),
		BookingTime:   "10:00",
		CustomerNotes: strings.Repeat("x", domain.MaxCustomerNotesLen+1),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreate_CustomerNotesAtLimit(t *testing.T) {
	service, m := newServiceWithMocks()

	m.services.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Service{ID: 1, Duration: 60, Price: 50, IsActive: true}, nil)
	m.bookings.On("ListActiveOnDay", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := service.Create(context.Background(), 42, CreateBookingRequest{
		Services:      []BookingServiceInput{{ServiceID: 1, Quantity: 1}},
		BookingDate:   futureDate(),
		BookingTime:   "10:00",
		CustomerNotes: strings.Repeat("x", domain.MaxCustomerNotesLen),
	})

	assert.NoError(t, err)
	assert.Len(t, b.CustomerNotes, domain.MaxCustomerNotesLen)
}

func TestUpdateStatus_AdminNotesTooLong(t *testing.T) {
	service, _ := newServiceWithMocks()
	admin := Actor{UserID: 100, Role: domain.RoleSuperAdmin}

	_, err := service.UpdateStatus(context.Background(), 1, UpdateStatusRequest{
		Status:     string(domain.BookingConfirmed),
		AdminNotes: strings.Repeat("x", domain.MaxAdminNotesLen+1),
	}, admin)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestAssign_AdminNotesTooLong(t *testing.T) {
	service, _ := newServiceWithMocks()

	_, err := service.Assign(context.Background(), 1, AssignRequest{
		CompanyID:  int64Ptr(3),
		AdminNotes: strings.Repeat("x", domain.MaxAdminNotesLen+1),
	}, 100)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestAssignToMember_AdminNotesTooLong(t *testing.T) {
	service, _ := newServiceWithMocks()

	_, err := service.AssignToMember(context.Background(), 1, AssignToMemberRequest{
		UserID:     7,
		AdminNotes: strings.Repeat("x", domain.MaxAdminNotesLen+1),
	}, 3, 100)

	assert.ErrorIs(t, err, ErrValidation)
}

// Notes-only updates

func TestUpdateNotes_LeavesStatusAlone(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID: 1, Status: domain.BookingCompleted, PaymentStatus: domain.PaymentPaid,
	}, nil)
	m.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	b, err := service.UpdateNotes(context.Background(), 1, UpdateNotesRequest{AdminNotes: "follow up next week"})

	assert.NoError(t, err)
	assert.Equal(t, "follow up next week", b.AdminNotes)
	assert.Equal(t, domain.BookingCompleted, b.Status)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
}

func TestUpdateNotes_Rejected(t *testing.T) {
	service, _ := newServiceWithMocks()

	_, err := service.UpdateNotes(context.Background(), 1, UpdateNotesRequest{AdminNotes: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.UpdateNotes(context.Background(), 1, UpdateNotesRequest{
		AdminNotes: strings.Repeat("x", domain.MaxAdminNotesLen+1),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateNotes_NotFound(t *testing.T) {
	service, m := newServiceWithMocks()
	m.bookings.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.UpdateNotes(context.Background(), 42, UpdateNotesRequest{AdminNotes: "note"})

	assert.ErrorIs(t, err, ErrNotFound)
}

// Requests view

func TestListRequests_PinsPendingStatus(t *testing.T) {
	service, m := newServiceWithMocks()

	m.bookings.On("List", mock.Anything, mock.MatchedBy(func(f repository.BookingFilter) bool {
		return f.Status == string(domain.BookingPending)
	})).Return([]*domain.Booking{{ID: 1, Status: domain.BookingPending}}, int64(1), nil)

	// a caller-supplied status filter must not leak through
	res, err := service.ListRequests(context.Background(), ListQuery{Status: string(domain.BookingConfirmed)})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	m.bookings.AssertExpectations(t)
}
