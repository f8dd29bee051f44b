package repository

import (
	"context"
	"time"

	"wellbook/internal/domain"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Type        string    `gorm:"column:type"`
	Slug        string    `gorm:"column:slug;uniqueIndex"`
	Description *string   `gorm:"column:description"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (categoryModel) TableName() string { return "service_categories" }

func toDomainCategory(m categoryModel) *domain.ServiceCategory {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.ServiceCategory{
		ID:          m.ID,
		Name:        m.Name,
		Type:        domain.ServiceCategoryType(m.Type),
		Slug:        m.Slug,
		Description: description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toCategoryModel(c *domain.ServiceCategory) categoryModel {
	var description *string
	if c.Description != "" {
		v := c.Description
		description = &v
	}

	return categoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Type:        string(c.Type),
		Slug:        c.Slug,
		Description: description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.ServiceCategory) error {
	m := toCategoryModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCategory(m)
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceCategory, error) {
	var m categoryModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCategory(m), nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.ServiceCategory) error {
	m := toCategoryModel(c)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCategory(m)
	return nil
}

func (r *CategoryRepository) List(ctx context.Context, onlyActive bool) ([]*domain.ServiceCategory, error) {
	q := r.db.WithContext(ctx).Model(&categoryModel{})
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	var models []categoryModel
	if err := q.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	categories := make([]*domain.ServiceCategory, 0, len(models))
	for _, m := range models {
		categories = append(categories, toDomainCategory(m))
	}
	return categories, nil
}
