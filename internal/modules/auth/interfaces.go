package auth

import (
	"context"

	"wellbook/internal/domain"
	jwtsvc "wellbook/internal/pkg/jwt"
)

// UserRepositoryInterface defines the user storage operations auth needs.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// CompanyRepositoryInterface resolves companies referenced at registration.
type CompanyRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
}

type jwtService interface {
	GenerateToken(userID int64, role string, companyID *int64) (string, error)
	GenerateRefreshToken(userID int64, role string, companyID *int64) (string, error)
	ValidateRefreshToken(tokenStr string) (*jwtsvc.Claims, error)
}
