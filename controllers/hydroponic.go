package controllers

import (
	"fmt"
	"net/http"
	"time"

	"smartanom/config"
	"smartanom/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateSystem echoes the requested system back to the client without
// persisting anything. Kept for mobile client compatibility.
func CreateSystem(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Name      string `json:"name"`
		PlantType string `json:"plant_type"`
	}
	// Missing fields just echo as empty, matching the original endpoint.
	_ = c.ShouldBindJSON(&input)

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("System %s created for %s", input.Name, input.PlantType),
	})
}

// CreateHydroponicSystem provisions the default hydroponic system, SmarTanom
// unit and DHT22 sensor for the caller. Repeated calls create duplicates.
func CreateHydroponicSystem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hydroponic := models.Hydroponic{
		UserID:    userID,
		Name:      "Lettuce Farm",
		PlantType: "Lettuce Romaine",
		StartDate: time.Now().UTC().Truncate(24 * time.Hour),
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hydroponic).Error; err != nil {
			return err
		}

		smarTanom := models.SmarTanom{
			HydroponicID: hydroponic.ID,
			Name:         "Main SmarTanom",
			Status:       "active",
		}
		if err := tx.Create(&smarTanom).Error; err != nil {
			return err
		}

		sensor := models.Sensor{
			SmarTanomID: smarTanom.ID,
			Type:        dht22SensorType,
			Unit:        "°C/%",
			Status:      "active",
		}
		return tx.Create(&sensor).Error
	})
	if err != nil {
		config.Logger.Error("failed to provision hydroponic system",
			zap.Uint("user_id", userID),
			zap.Error(err))
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Hydroponic system created successfully",
		"system_id": hydroponic.ID,
	})
}
