package catalog

import (
	"context"
	"errors"
	"strings"

	"wellbook/internal/domain"
	"wellbook/internal/repository"

	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	categories CategoryRepository
	services   ServiceRepository
	offerings  OfferingRepository
	companies  CompanyRepository
}

func NewService(
	categories CategoryRepository,
	services ServiceRepository,
	offerings OfferingRepository,
	companies CompanyRepository,
) *Service {
	return &Service{
		categories: categories,
		services:   services,
		offerings:  offerings,
		companies:  companies,
	}
}

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.ServiceCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}
	if !domain.ValidCategoryType(req.Type) {
		return nil, ErrValidation
	}

	c := &domain.ServiceCategory{
		Name:        name,
		Type:        domain.ServiceCategoryType(req.Type),
		Slug:        slug.Make(name),
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.categories.Create(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*domain.ServiceCategory, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ListCategories(ctx context.Context, onlyActive bool) ([]*domain.ServiceCategory, error) {
	return s.categories.List(ctx, onlyActive)
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req UpdateCategoryRequest) (*domain.ServiceCategory, error) {
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrValidation
		}
		c.Name = name
		c.Slug = slug.Make(name)
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.categories.Update(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) DeactivateCategory(ctx context.Context, id int64) (*domain.ServiceCategory, error) {
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	c.IsActive = false
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Duration < 1 || req.Price < 0 {
		return nil, ErrValidation
	}

	if _, err := s.GetCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	svc := &domain.Service{
		Name:        name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Duration:    req.Duration,
		Price:       req.Price,
		Notes:       req.Notes,
		IsActive:    true,
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context, q ServiceListQuery) (*ServiceListResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	services, total, err := s.services.List(ctx, repository.ServiceFilter{
		CategoryID: q.CategoryID,
		IsActive:   q.IsActive,
		Page:       q.Page,
		Limit:      q.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ServiceListResult{Services: services, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrValidation
		}
		svc.Name = name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.CategoryID != nil {
		if _, err := s.GetCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		svc.CategoryID = *req.CategoryID
	}
	if req.Duration != nil {
		if *req.Duration < 1 {
			return nil, ErrValidation
		}
		svc.Duration = *req.Duration
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrValidation
		}
		svc.Price = *req.Price
	}
	if req.Notes != nil {
		svc.Notes = *req.Notes
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeactivateService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.IsActive = false
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// ServiceProviders lists the active companies offering a service, with the
// effective price each one charges.
func (s *Service) ServiceProviders(ctx context.Context, serviceID int64) ([]ServiceProvider, error) {
	svc, err := s.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	offerings, err := s.offerings.ListByService(ctx, serviceID, true)
	if err != nil {
		return nil, err
	}

	providers := make([]ServiceProvider, 0, len(offerings))
	for _, o := range offerings {
		company, err := s.companies.GetByID(ctx, o.CompanyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		if !company.IsActive {
			continue
		}

		price := svc.Price
		if o.CustomPrice != nil {
			price = *o.CustomPrice
		}

		providers = append(providers, ServiceProvider{
			CompanyID:        company.ID,
			CompanyName:      company.Name,
			CompanySlug:      company.Slug,
			CompanyServiceID: o.ID,
			Price:            price,
			Notes:            o.Notes,
		})
	}
	return providers, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
