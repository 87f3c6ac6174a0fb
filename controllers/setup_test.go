package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smartanom/config"
	"smartanom/middlewares"
	"smartanom/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a unique in-memory DB per test to avoid cross-test
// contamination, migrates it, and installs it as the global handle.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := MigrateModels(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// setupRouter mirrors the route table in main.go, minus CORS.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/signup", Signup)
	r.POST("/login", Login)

	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	auth.GET("/profile", GetProfile)
	auth.POST("/systems", CreateSystem)
	auth.POST("/hydroponic", CreateHydroponicSystem)
	auth.POST("/dht22-data", ReceiveDHT22Data)
	auth.GET("/dht22-data", GetLatestDHT22Data)
	return r
}

func authToken(t *testing.T, userID uint) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(config.SecretKey())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// createUser inserts a bare user row. Telemetry tests don't need a real
// password hash.
func createUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user.ID
}

// seedSensor builds the full ownership chain for a user and returns the
// sensor id.
func seedSensor(t *testing.T, db *gorm.DB, userID uint) uint {
	t.Helper()
	hydroponic := models.Hydroponic{
		UserID:    userID,
		Name:      "Lettuce Farm",
		PlantType: "Lettuce Romaine",
		StartDate: time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := db.Create(&hydroponic).Error; err != nil {
		t.Fatalf("create hydroponic: %v", err)
	}
	smarTanom := models.SmarTanom{HydroponicID: hydroponic.ID, Name: "Main SmarTanom", Status: "active"}
	if err := db.Create(&smarTanom).Error; err != nil {
		t.Fatalf("create smar_tanom: %v", err)
	}
	sensor := models.Sensor{SmarTanomID: smarTanom.ID, Type: "DHT22", Unit: "°C/%", Status: "active"}
	if err := db.Create(&sensor).Error; err != nil {
		t.Fatalf("create sensor: %v", err)
	}
	return sensor.ID
}

func doJSON(t *testing.T, r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}
