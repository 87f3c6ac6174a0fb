package controllers

import (
	"smartanom/config"
	"smartanom/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) error {
	config.DB = db
	return db.AutoMigrate(
		&models.User{},
		&models.Hydroponic{},
		&models.SmarTanom{},
		&models.Sensor{},
		&models.SmarTanomData{},
	)
}
