package config

import (
	"go.uber.org/zap"
)

// Logger is the global application logger. It is a no-op until InitLogger
// runs, so packages can log unconditionally (tests included).
var Logger = zap.NewNop()

// InitLogger builds the global logger. Development mode gets the
// human-readable console encoder, production gets JSON.
func InitLogger() error {
	var cfg zap.Config
	if Debug() {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}
