package repository

import (
	"context"
	"time"

	"wellbook/internal/domain"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

type companyModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Slug      string    `gorm:"column:slug;uniqueIndex"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (companyModel) TableName() string { return "companies" }

func toDomainCompany(m companyModel) *domain.Company {
	return &domain.Company{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCompanyModel(c *domain.Company) companyModel {
	return companyModel{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	m := toCompanyModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCompany(m)
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var m companyModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCompany(m), nil
}

func (r *CompanyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	var m companyModel
	tx := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCompany(m), nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *domain.Company) error {
	m := toCompanyModel(c)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCompany(m)
	return nil
}

type CompanyFilter struct {
	IsActive *bool
	Page     int
	Limit    int
}

func (r *CompanyRepository) List(ctx context.Context, f CompanyFilter) ([]*domain.Company, int64, error) {
	q := r.db.WithContext(ctx).Model(&companyModel{})

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

	var models []companyModel
	if err := q.Order("name ASC").Find(&models).Error; err != nil {
		return nil, 0, err
	}

	companies := make([]*domain.Company, 0, len(models))
	for _, m := range models {
		companies = append(companies, toDomainCompany(m))
	}
	return companies, total, nil
}
