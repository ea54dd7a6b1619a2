package db

import (
	"context"                       // Context for store operations
	"errors"                        // Sentinel errors
	"fmt"                           // Error wrapping
	"strings"                       // Joining category names
	"survey_system/internal/domain" // Importing domain models
)

// ErrUnknownCategory is returned when a record carries an expense outside the fixed categories
var ErrUnknownCategory = errors.New("unknown expense category")

// RecordStore persists survey submissions
type RecordStore interface {
	InsertRecord(ctx context.Context, record domain.SurveyRecord) error // Append one submission
	FindAllRecords(ctx context.Context) ([]domain.SurveyRecord, error)  // Read the whole collection
}

// checkRecord rejects records the report columns cannot represent
func checkRecord(record domain.SurveyRecord) error {
	if unknown := record.UnknownCategories(); len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, strings.Join(unknown, ", "))
	}
	return nil
}
