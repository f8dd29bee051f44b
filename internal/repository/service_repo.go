package repository

import (
	"context"
	"time"

	"wellbook/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	CategoryID  int64     `gorm:"column:category_id"`
	Duration    int       `gorm:"column:duration"`
	Price       float64   `gorm:"column:price"`
	Notes       *string   `gorm:"column:notes"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	var description, notes string
	if m.Description != nil {
		description = *m.Description
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Service{
		ID:          m.ID,
		Name:        m.Name,
		Description: description,
		CategoryID:  m.CategoryID,
		Duration:    m.Duration,
		Price:       m.Price,
		Notes:       notes,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toServiceModel(s *domain.Service) serviceModel {
	var description, notes *string
	if s.Description != "" {
		v := s.Description
		description = &v
	}
	if s.Notes != "" {
		v := s.Notes
		notes = &v
	}

	return serviceModel{
		ID:          s.ID,
		Name:        s.Name,
		Description: description,
		CategoryID:  s.CategoryID,
		Duration:    s.Duration,
		Price:       s.Price,
		Notes:       notes,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

type ServiceFilter struct {
	CategoryID *int64
	IsActive   *bool
	Page       int
	Limit      int
}

func (r *ServiceRepository) List(ctx context.Context, f ServiceFilter) ([]*domain.Service, int64, error) {
	q := r.db.WithContext(ctx).Model(&serviceModel{})

	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Offset((f.Page - 1) * f.Limit).Limit(f.Limit)
	}

	var models []serviceModel
	if err := q.Order("name ASC").Find(&models).Error; err != nil {
		return nil, 0, err
	}

	services := make([]*domain.Service, 0, len(models))
	for _, m := range models {
		services = append(services, toDomainService(m))
	}
	return services, total, nil
}
