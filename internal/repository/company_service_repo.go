package repository

import (
	"context"
	"time"

	"wellbook/internal/domain"

	"gorm.io/gorm"
)

type CompanyServiceRepository struct {
	db *gorm.DB
}

func NewCompanyServiceRepository(db *gorm.DB) *CompanyServiceRepository {
	return &CompanyServiceRepository{db: db}
}

type companyServiceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	CompanyID   int64     `gorm:"column:company_id;uniqueIndex:idx_company_service"`
	ServiceID   int64     `gorm:"column:service_id;uniqueIndex:idx_company_service"`
	CustomPrice *float64  `gorm:"column:custom_price"`
	Notes       *string   `gorm:"column:notes"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (companyServiceModel) TableName() string { return "company_services" }

func toDomainCompanyService(m companyServiceModel) *domain.CompanyService {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.CompanyService{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		ServiceID:   m.ServiceID,
		CustomPrice: m.CustomPrice,
		Notes:       notes,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toCompanyServiceModel(cs *domain.CompanyService) companyServiceModel {
	var notes *string
	if cs.Notes != "" {
		v := cs.Notes
		notes = &v
	}

	return companyServiceModel{
		ID:          cs.ID,
		CompanyID:   cs.CompanyID,
		ServiceID:   cs.ServiceID,
		CustomPrice: cs.CustomPrice,
		Notes:       notes,
		IsActive:    cs.IsActive,
		CreatedAt:   cs.CreatedAt,
		UpdatedAt:   cs.UpdatedAt,
	}
}

func (r *CompanyServiceRepository) Create(ctx context.Context, cs *domain.CompanyService) error {
	m := toCompanyServiceModel(cs)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*cs = *toDomainCompanyService(m)
	return nil
}

func (r *CompanyServiceRepository) GetByID(ctx context.Context, id int64) (*domain.CompanyService, error) {
	var m companyServiceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCompanyService(m), nil
}

func (r *CompanyServiceRepository) Update(ctx context.Context, cs *domain.CompanyService) error {
	m := toCompanyServiceModel(cs)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*cs = *toDomainCompanyService(m)
	return nil
}

func (r *CompanyServiceRepository) ListByCompany(ctx context.Context, companyID int64, onlyActive bool) ([]*domain.CompanyService, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	var models []companyServiceModel
	if err := q.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	offers := make([]*domain.CompanyService, 0, len(models))
	for _, m := range models {
		offers = append(offers, toDomainCompanyService(m))
	}
	return offers, nil
}

func (r *CompanyServiceRepository) ListByService(ctx context.Context, serviceID int64, onlyActive bool) ([]*domain.CompanyService, error) {
	q := r.db.WithContext(ctx).Where("service_id = ?", serviceID)
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	var models []companyServiceModel
	if err := q.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	offers := make([]*domain.CompanyService, 0, len(models))
	for _, m := range models {
		offers = append(offers, toDomainCompanyService(m))
	}
	return offers, nil
}
