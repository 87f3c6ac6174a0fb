package models

import "time"

// Hydroponic is a grow system owned by a single user.
type Hydroponic struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Name      string    `json:"name"`
	PlantType string    `json:"plant_type"`
	StartDate time.Time `json:"start_date"`
}

// SmarTanom is the monitoring unit installed on a hydroponic system.
type SmarTanom struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	HydroponicID uint   `json:"hydroponic_id" gorm:"not null;index"`
	Name         string `json:"name"`
	Status       string `json:"status" gorm:"default:active"`
}

// Sensor is a physical sensor attached to a SmarTanom unit.
type Sensor struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SmarTanomID uint      `json:"smar_tanom_id" gorm:"not null;index"`
	Type        string    `json:"type"`
	Unit        string    `json:"unit"`
	Status      string    `json:"status" gorm:"default:active"`
	CreatedAt   time.Time `json:"created_at"`
}

// SmarTanomData is one reading reported by a sensor. Rows are append-only,
// one row per metric per submission.
type SmarTanomData struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SensorID  uint      `json:"sensor_id" gorm:"not null;index:idx_sensor_type_ts,priority:1"`
	Value     float64   `json:"value"`
	DataType  string    `json:"data_type" gorm:"index:idx_sensor_type_ts,priority:2"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_sensor_type_ts,priority:3"`
}

func (SmarTanomData) TableName() string {
	return "smar_tanom_data"
}
