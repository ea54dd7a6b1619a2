package main

import (
	"survey_system/internal/config" // Custom import path (Config)
	"survey_system/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	// Only the relational backend has a schema to create
	if cfg.StoreDriver != config.DriverMySQL {
		logrus.Infof("store driver %q needs no migration", cfg.StoreDriver)
		return
	}
	db.Migrate(cfg.MySQLDSN())
}
