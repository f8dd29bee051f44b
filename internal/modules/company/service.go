package company

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
	companies CompanyRepository
	offerings OfferingRepository
	catalog   ServiceCatalog
}

func NewService(companies CompanyRepository, offerings OfferingRepository, catalog ServiceCatalog) *Service {
	return &Service{companies: companies, offerings: offerings, catalog: catalog}
}

type ListResult struct {
	Companies []*domain.Company `json:"companies"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
}

func (s *Service) Create(ctx context.Context, req CreateCompanyRequest) (*domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	c := &domain.Company{
		Name:     name,
		Slug:     slug.Make(name),
		IsActive: true,
	}

	if err := s.companies.Create(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	companies, total, err := s.companies.List(ctx, repository.CompanyFilter{
		IsActive: q.IsActive,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListResult{Companies: companies, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCompanyRequest) (*domain.Company, error) {
	c, err := s.GetByID(ctx, id)
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
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.companies.Update(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return c, nil
}

// Deactivate soft-deletes a company. Bookings already assigned to it are
// left untouched.
func (s *Service) Deactivate(ctx context.Context, id int64) (*domain.Company, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.IsActive = false
	if err := s.companies.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) AddOffering(ctx context.Context, companyID int64, req AddOfferingRequest) (*domain.CompanyService, error) {
	if _, err := s.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	if req.CustomPrice != nil && *req.CustomPrice < 0 {
		return nil, ErrValidation
	}

	svc, err := s.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !svc.IsActive {
		return nil, ErrServiceNotFound
	}

	cs := &domain.CompanyService{
		CompanyID:   companyID,
		ServiceID:   req.ServiceID,
		CustomPrice: req.CustomPrice,
		Notes:       req.Notes,
		IsActive:    true,
	}

	if err := s.offerings.Create(ctx, cs); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrOfferingExists
		}
		return nil, err
	}
	return cs, nil
}

func (s *Service) ListOfferings(ctx context.Context, companyID int64, onlyActive bool) ([]*domain.CompanyService, error) {
	if _, err := s.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.offerings.ListByCompany(ctx, companyID, onlyActive)
}

func (s *Service) UpdateOffering(ctx context.Context, companyID, offeringID int64, req UpdateOfferingRequest) (*domain.CompanyService, error) {
	cs, err := s.getOffering(ctx, companyID, offeringID)
	if err != nil {
		return nil, err
	}

	if req.CustomPrice != nil {
		if *req.CustomPrice < 0 {
			return nil, ErrValidation
		}
		cs.CustomPrice = req.CustomPrice
	}
	if req.Notes != nil {
		cs.Notes = *req.Notes
	}
	if req.IsActive != nil {
		cs.IsActive = *req.IsActive
	}

	if err := s.offerings.Update(ctx, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *Service) RemoveOffering(ctx context.Context, companyID, offeringID int64) (*domain.CompanyService, error) {
	cs, err := s.getOffering(ctx, companyID, offeringID)
	if err != nil {
		return nil, err
	}

	cs.IsActive = false
	if err := s.offerings.Update(ctx, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *Service) getOffering(ctx context.Context, companyID, offeringID int64) (*domain.CompanyService, error) {
	cs, err := s.offerings.GetByID(ctx, offeringID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}
	if cs.CompanyID != companyID {
		return nil, ErrOfferingNotFound
	}
	return cs, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
