package user

import (
	"context"
	"errors"

	"wellbook/internal/domain"
	"wellbook/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users     UserRepository
	companies CompanyRepository
}

func NewService(users UserRepository, companies CompanyRepository) *Service {
	return &Service{users: users, companies: companies}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	if q.Role != "" && !domain.ValidUserRole(q.Role) {
		return nil, ErrValidation
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	users, total, err := s.users.List(ctx, repository.UserFilter{
		Role:      q.Role,
		CompanyID: q.CompanyID,
		IsActive:  q.IsActive,
		Page:      q.Page,
		Limit:     q.Limit,
	})
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		u.PasswordHash = ""
	}
	return &ListResult{Users: users, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *Service) ListByCompany(ctx context.Context, companyID int64, q ListQuery) (*ListResult, error) {
	q.CompanyID = &companyID
	return s.List(ctx, q)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Role != nil {
		if !domain.ValidUserRole(*req.Role) {
			return nil, ErrValidation
		}
		u.Role = domain.UserRole(*req.Role)
	}

	if req.CompanyID != nil {
		if _, err := s.companies.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, err
		}
		u.CompanyID = req.CompanyID
	}

	// company roles must keep a company reference
	if (u.Role == domain.RoleCompanyAdmin || u.Role == domain.RoleMember) && u.CompanyID == nil {
		return nil, ErrValidation
	}
	if u.Role == domain.RoleSuperAdmin || u.Role == domain.RoleCustomer {
		u.CompanyID = nil
	}

	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if req.Password != nil {
		if len(*req.Password) < 8 {
			return nil, ErrValidation
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) Deactivate(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	u.IsActive = false
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}
