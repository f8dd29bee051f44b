package catalog

import (
	"context"
	"testing"

	"wellbook/internal/domain"
	"wellbook/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *domain.ServiceCategory) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceCategory), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *domain.ServiceCategory) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context, onlyActive bool) ([]*domain.ServiceCategory, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ServiceCategory), args.Error(1)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 999
	}
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) List(ctx context.Context, f repository.ServiceFilter) ([]*domain.Service, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Service), args.Get(1).(int64), args.Error(2)
}

type MockOfferingRepository struct {
	mock.Mock
}

func (m *MockOfferingRepository) ListByService(ctx context.Context, serviceID int64, onlyActive bool) ([]*domain.CompanyService, error) {
	args := m.Called(ctx, serviceID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CompanyService), args.Error(1)
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

func newServiceWithMocks() (*Service, *MockCategoryRepository, *MockServiceRepository, *MockOfferingRepository, *MockCompanyRepository) {
	categories := new(MockCategoryRepository)
	services := new(MockServiceRepository)
	offerings := new(MockOfferingRepository)
	companies := new(MockCompanyRepository)
	return NewService(categories, services, offerings, companies), categories, services, offerings, companies
}

func float64Ptr(v float64) *float64 { return &v }

func TestCreateCategory_Success(t *testing.T) {
	service, categories, _, _, _ := newServiceWithMocks()
	categories.On("Create", mock.Anything, mock.Anything).Return(nil)

	c, err := service.CreateCategory(context.Background(), CreateCategoryRequest{
		Name: "Deep Tissue Massage",
		Type: "SPA",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.CategorySpa, c.Type)
	assert.Equal(t, "deep-tissue-massage", c.Slug)
	assert.True(t, c.IsActive)
}

func TestCreateCategory_UnknownType(t *testing.T) {
	service, _, _, _, _ := newServiceWithMocks()

	_, err := service.CreateCategory(context.Background(), CreateCategoryRequest{
		Name: "Something",
		Type: "FITNESS",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateCategory_SlugConflict(t *testing.T) {
	service, categories, _, _, _ := newServiceWithMocks()
	categories.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

	_, err := service.CreateCategory(context.Background(), CreateCategoryRequest{
		Name: "Therapy",
		Type: "THERAPY",
	})

	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestCreateService_CategoryMustExist(t *testing.T) {
	service, categories, _, _, _ := newServiceWithMocks()
	categories.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.CreateService(context.Background(), CreateServiceRequest{
		Name:       "Massage",
		CategoryID: 9,
		Duration:   60,
		Price:      50,
	})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateService_RejectsInvalidInput(t *testing.T) {
	service, _, _, _, _ := newServiceWithMocks()

	_, err := service.CreateService(context.Background(), CreateServiceRequest{
		Name: "Massage", CategoryID: 1, Duration: 0, Price: 50,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateService(context.Background(), CreateServiceRequest{
		Name: "Massage", CategoryID: 1, Duration: 60, Price: -1,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateService_ChangeCategoryValidated(t *testing.T) {
	service, categories, services, _, _ := newServiceWithMocks()
	services.On("GetByID", mock.Anything, int64(5)).Return(&domain.Service{ID: 5, CategoryID: 1}, nil)
	categories.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

	newCat := int64(2)
	_, err := service.UpdateService(context.Background(), 5, UpdateServiceRequest{CategoryID: &newCat})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeactivateService(t *testing.T) {
	service, _, services, _, _ := newServiceWithMocks()
	services.On("GetByID", mock.Anything, int64(5)).Return(&domain.Service{ID: 5, IsActive: true}, nil)
	services.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return !s.IsActive
	})).Return(nil)

	svc, err := service.DeactivateService(context.Background(), 5)

	assert.NoError(t, err)
	assert.False(t, svc.IsActive)
}

func TestServiceProviders_EffectivePrice(t *testing.T) {
	service, _, services, offerings, companies := newServiceWithMocks()

	services.On("GetByID", mock.Anything, int64(5)).Return(&domain.Service{
		ID: 5, Name: "Swedish Massage", Price: 50, IsActive: true,
	}, nil)
	offerings.On("ListByService", mock.Anything, int64(5), true).Return([]*domain.CompanyService{
		{ID: 10, CompanyID: 1, ServiceID: 5, IsActive: true},
		{ID: 11, CompanyID: 2, ServiceID: 5, CustomPrice: float64Ptr(45), IsActive: true},
	}, nil)
	companies.On("GetByID", mock.Anything, int64(1)).Return(&domain.Company{
		ID: 1, Name: "Harmony Wellness", Slug: "harmony-wellness", IsActive: true,
	}, nil)
	companies.On("GetByID", mock.Anything, int64(2)).Return(&domain.Company{
		ID: 2, Name: "Serenity Spa", Slug: "serenity-spa", IsActive: true,
	}, nil)

	providers, err := service.ServiceProviders(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, providers, 2)
	assert.Equal(t, 50.0, providers[0].Price)
	assert.Equal(t, 45.0, providers[1].Price)
	assert.Equal(t, "harmony-wellness", providers[0].CompanySlug)
}

func TestServiceProviders_SkipsInactiveCompanies(t *testing.T) {
	service, _, services, offerings, companies := newServiceWithMocks()

	services.On("GetByID", mock.Anything, int64(5)).Return(&domain.Service{ID: 5, Price: 50, IsActive: true}, nil)
	offerings.On("ListByService", mock.Anything, int64(5), true).Return([]*domain.CompanyService{
		{ID: 10, CompanyID: 1, ServiceID: 5, IsActive: true},
		{ID: 11, CompanyID: 2, ServiceID: 5, IsActive: true},
	}, nil)
	companies.On("GetByID", mock.Anything, int64(1)).Return(&domain.Company{ID: 1, IsActive: false}, nil)
	companies.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

	providers, err := service.ServiceProviders(context.Background(), 5)

	assert.NoError(t, err)
	assert.Empty(t, providers)
}

func TestServiceProviders_UnknownService(t *testing.T) {
	service, _, services, _, _ := newServiceWithMocks()
	services.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.ServiceProviders(context.Background(), 42)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
