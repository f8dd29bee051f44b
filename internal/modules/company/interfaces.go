package company

import (
	"context"

	"wellbook/internal/domain"
	"wellbook/internal/repository"
)

// CompanyRepository defines the interface for company storage.
type CompanyRepository interface {
	Create(ctx context.Context, c *domain.Company) error
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
	List(ctx context.Context, f repository.CompanyFilter) ([]*domain.Company, int64, error)
}

// OfferingRepository defines the interface for company service offerings.
type OfferingRepository interface {
	Create(ctx context.Context, cs *domain.CompanyService) error
	GetByID(ctx context.Context, id int64) (*domain.CompanyService, error)
	Update(ctx context.Context, cs *domain.CompanyService) error
	ListByCompany(ctx context.Context, companyID int64, onlyActive bool) ([]*domain.CompanyService, error)
}

// ServiceCatalog resolves catalog services referenced by offerings.
type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}
