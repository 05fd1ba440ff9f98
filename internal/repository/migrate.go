package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables backing the repositories.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&eventModel{},
		&bookingModel{},
	)
}
