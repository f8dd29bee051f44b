package booking

import (
	"context"
	"time"

	"wellbook/internal/domain"
	"wellbook/internal/repository"
)

// BookingRepository defines the interface for booking storage.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context, f repository.BookingFilter) ([]*domain.Booking, int64, error)
	ListActiveOnDay(ctx context.Context, day time.Time) ([]*domain.Booking, error)
}

// ServiceCatalog resolves catalog services referenced by booking lines.
type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// CompanyServiceCatalog resolves company offerings referenced by booking lines.
type CompanyServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.CompanyService, error)
}

// CompanyRepository defines the interface for company lookups.
type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
}

// UserRepository defines the interface for user lookups.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListMembers(ctx context.Context, companyID int64) ([]*domain.User, error)
}
