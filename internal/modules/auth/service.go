package auth

import (
	"context"
	"errors"
	"strings"

	"wellbook/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for authentication.
type Service struct {
	users     UserRepositoryInterface
	companies CompanyRepositoryInterface
	jwt       jwtService
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginResult struct {
	User *domain.User `json:"user"`
	TokenPair
}

func NewService(users UserRepositoryInterface, companies CompanyRepositoryInterface, jwt jwtService) *Service {
	return &Service{users: users, companies: companies, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, TokenPair: *pair}, nil
}

// Register creates a staff or customer account. Super admin only; company
// roles must reference an existing company.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if !domain.ValidUserRole(req.Role) {
		return nil, ErrValidation
	}

	role := domain.UserRole(req.Role)
	if role == domain.RoleCompanyAdmin || role == domain.RoleMember {
		if req.CompanyID == nil {
			return nil, ErrValidation
		}
		if _, err := s.companies.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCompanyNotFound
			}
			return nil, err
		}
	} else {
		req.CompanyID = nil
	}

	return s.createUser(ctx, req.Email, req.Password, role, req.CompanyID)
}

// RegisterCustomer is the public self-service signup.
func (s *Service) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*domain.User, error) {
	return s.createUser(ctx, req.Email, req.Password, domain.RoleCustomer, nil)
}

func (s *Service) createUser(ctx context.Context, email, password string, role domain.UserRole, companyID *int64) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CompanyID:    companyID,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Refresh(ctx context.Context, req RefreshRequest) (*TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return s.issueTokens(user)
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) issueTokens(user *domain.User) (*TokenPair, error) {
	access, err := s.jwt.GenerateToken(user.ID, string(user.Role), user.CompanyID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID, string(user.Role), user.CompanyID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
