package controllers

import (
	"errors"

	"smartanom/models"

	"gorm.io/gorm"
)

var (
	// ErrSensorNotFound means the user has no sensor of the requested type.
	ErrSensorNotFound = errors.New("sensor not found")
	// ErrSensorAmbiguous means more than one sensor of the requested type is
	// reachable from the user, so the lookup cannot pick one.
	ErrSensorAmbiguous = errors.New("multiple sensors configured")
)

// FindUserSensor resolves the unique sensor of the given type owned by the
// user through the hydroponic -> smar_tanom -> sensor chain.
func FindUserSensor(db *gorm.DB, userID uint, sensorType string) (*models.Sensor, error) {
	var sensors []models.Sensor
	err := db.
		Select("sensors.*").
		Joins("JOIN smar_tanoms ON smar_tanoms.id = sensors.smar_tanom_id").
		Joins("JOIN hydroponics ON hydroponics.id = smar_tanoms.hydroponic_id").
		Where("hydroponics.user_id = ? AND sensors.type = ?", userID, sensorType).
		Limit(2).
		Find(&sensors).Error
	if err != nil {
		return nil, err
	}

	switch len(sensors) {
	case 0:
		return nil, ErrSensorNotFound
	case 1:
		return &sensors[0], nil
	default:
		return nil, ErrSensorAmbiguous
	}
}
