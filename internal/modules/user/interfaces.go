package user

import (
	"context"

	"wellbook/internal/domain"
	"wellbook/internal/repository"
)

// UserRepository defines the interface for user storage.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context, f repository.UserFilter) ([]*domain.User, int64, error)
}

// CompanyRepository resolves companies referenced on role changes.
type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
}
