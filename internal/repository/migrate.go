package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for all persisted models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&companyModel{},
		&categoryModel{},
		&serviceModel{},
		&companyServiceModel{},
		&bookingModel{},
		&bookingServiceModel{},
	)
}
