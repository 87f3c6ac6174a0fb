package controllers

import (
	"errors"
	"net/http"
	"time"

	"smartanom/config"
	"smartanom/models"
	"smartanom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dht22SensorType = "DHT22"

// ReceiveDHT22Data stores one temperature/humidity pair for the caller's
// DHT22 sensor. Every call appends a new pair; readings are never updated.
func ReceiveDHT22Data(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		// Empty or malformed body: fall through so the field validation
		// reports both fields as missing.
		payload = nil
	}

	reading, fieldErrors := utils.ParseReading(payload)
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fieldErrors})
		return
	}

	sensor, err := FindUserSensor(config.DB, userID, dht22SensorType)
	if err != nil {
		respondSensorLookupError(c, err, userID)
		return
	}

	// One timestamp for the pair, so temperature and humidity stay matched.
	now := time.Now().UTC()
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		records := []models.SmarTanomData{
			{SensorID: sensor.ID, Value: reading.Temperature, DataType: "temperature", CreatedAt: now},
			{SensorID: sensor.ID, Value: reading.Humidity, DataType: "humidity", CreatedAt: now},
		}
		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		config.Logger.Error("failed to save DHT22 data",
			zap.Uint("user_id", userID),
			zap.Uint("sensor_id", sensor.ID),
			zap.Error(err))
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Data saved",
		"temperature": reading.Temperature,
		"humidity":    reading.Humidity,
		"timestamp":   now.Format(time.RFC3339),
	})
}

// GetLatestDHT22Data returns the most recent temperature and humidity
// readings for the caller's DHT22 sensor. Either value may be null when no
// reading of that type exists yet. The timestamp follows the temperature
// record.
func GetLatestDHT22Data(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sensor, err := FindUserSensor(config.DB, userID, dht22SensorType)
	if err != nil {
		respondSensorLookupError(c, err, userID)
		return
	}

	latestTemp, err := latestReading(config.DB, sensor.ID, "temperature")
	if err != nil {
		config.Logger.Error("failed to query DHT22 data",
			zap.Uint("user_id", userID),
			zap.Uint("sensor_id", sensor.ID),
			zap.Error(err))
		respondInternalError(c, err)
		return
	}
	latestHumidity, err := latestReading(config.DB, sensor.ID, "humidity")
	if err != nil {
		config.Logger.Error("failed to query DHT22 data",
			zap.Uint("user_id", userID),
			zap.Uint("sensor_id", sensor.ID),
			zap.Error(err))
		respondInternalError(c, err)
		return
	}

	response := gin.H{
		"success":     true,
		"temperature": nil,
		"humidity":    nil,
		"timestamp":   nil,
	}
	if latestTemp != nil {
		response["temperature"] = latestTemp.Value
		response["timestamp"] = latestTemp.CreatedAt.UTC().Format(time.RFC3339)
	}
	if latestHumidity != nil {
		response["humidity"] = latestHumidity.Value
	}
	c.JSON(http.StatusOK, response)
}

// latestReading fetches the newest record of one data type, or nil when the
// sensor has not reported that type yet.
func latestReading(db *gorm.DB, sensorID uint, dataType string) (*models.SmarTanomData, error) {
	var record models.SmarTanomData
	err := db.Where("sensor_id = ? AND data_type = ?", sensorID, dataType).
		Order("created_at desc").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func respondSensorLookupError(c *gin.Context, err error, userID uint) {
	switch {
	case errors.Is(err, ErrSensorNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Please configure a DHT22 sensor first",
		})
	case errors.Is(err, ErrSensorAmbiguous):
		config.Logger.Error("multiple DHT22 sensors configured", zap.Uint("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Multiple DHT22 sensors configured for this account",
		})
	default:
		config.Logger.Error("sensor lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		respondInternalError(c, err)
	}
}

// respondInternalError hides internals in production; development mode
// includes the underlying error for easier debugging.
func respondInternalError(c *gin.Context, err error) {
	body := gin.H{"success": false, "error": "Internal server error"}
	if config.Debug() {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
