package main

import (
	"log"
	"os"

	"smartanom/config"
	"smartanom/controllers"
	"smartanom/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	godotenv.Load()

	if err := config.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer config.Logger.Sync()

	// Connect to PostgreSQL database
	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Set the global DB in the config package and migrate models
	if err := controllers.MigrateModels(db); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}

	// Set up Gin router with CORS configuration
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://smartanom-frontend.onrender.com",
			"http://localhost:8081",
			"http://localhost:19006",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes
	r.POST("/signup", controllers.Signup)
	r.POST("/login", controllers.Login)

	// Protected routes using auth middleware
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	auth.GET("/profile", controllers.GetProfile)
	auth.POST("/systems", controllers.CreateSystem)
	auth.POST("/hydroponic", controllers.CreateHydroponicSystem)
	auth.POST("/dht22-data", controllers.ReceiveDHT22Data)
	auth.GET("/dht22-data", controllers.GetLatestDHT22Data)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
