package db

import (
	"context"                       // Context for database operations
	"fmt"                           // Error wrapping
	"survey_system/internal/domain" // Importing domain models

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// GormStore stores one row per submission in a relational table
type GormStore struct {
	db *gorm.DB // Database handle
}

// NewGormStore creates a GormStore on an open database handle
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// OpenMySQL opens a GORM connection to MySQL
func OpenMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	return db, nil
}

// InsertRecord creates a new row, the ID and timestamp are assigned by the database
func (s *GormStore) InsertRecord(ctx context.Context, record domain.SurveyRecord) error {
	if err := checkRecord(record); err != nil {
		return err
	}
	record.ID = 0 // Never overwrite an existing row
	if record.Expenses == nil {
		record.Expenses = map[string]float64{} // Serialize as {} rather than null
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert survey record: %w", err)
	}
	return nil
}

// FindAllRecords reads every row in insertion order
func (s *GormStore) FindAllRecords(ctx context.Context) ([]domain.SurveyRecord, error) {
	records := []domain.SurveyRecord{}
	if err := s.db.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query survey records: %w", err)
	}
	return records, nil
}
