package catalog

import (
	"context"

	"wellbook/internal/domain"
	"wellbook/internal/repository"
)

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.ServiceCategory) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceCategory, error)
	Update(ctx context.Context, c *domain.ServiceCategory) error
	List(ctx context.Context, onlyActive bool) ([]*domain.ServiceCategory, error)
}

// ServiceRepository defines the interface for service storage.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	List(ctx context.Context, f repository.ServiceFilter) ([]*domain.Service, int64, error)
}

// OfferingRepository resolves which companies offer a service.
type OfferingRepository interface {
	ListByService(ctx context.Context, serviceID int64, onlyActive bool) ([]*domain.CompanyService, error)
}

// CompanyRepository resolves company details for public listings.
type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
}
