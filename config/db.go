package config

import (
	"os"

	"gorm.io/gorm"
)

// DB is a global variable to hold the database connection
var DB *gorm.DB

// SecretKey returns the JWT signing key. Set SECRET_KEY in production;
// the fallback is only for local development.
func SecretKey() []byte {
	if key := os.Getenv("SECRET_KEY"); key != "" {
		return []byte(key)
	}
	return []byte("smartanom-insecure-dev-key")
}

// Debug reports whether the server runs in development mode.
// Defaults to true, same as the original deployment.
func Debug() bool {
	if value, exists := os.LookupEnv("DEBUG"); exists {
		return value == "True"
	}
	return true
}
