package db

import (
	"survey_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
)

// Migrate performs automatic migration for the MySQL backend schema
func Migrate(dsn string) {
	db, err := OpenMySQL(dsn) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate creates the survey_records table and any missing columns
	err = db.AutoMigrate(&domain.SurveyRecord{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
