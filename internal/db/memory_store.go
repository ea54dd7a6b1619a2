package db

import (
	"context"                       // Context for store operations
	"survey_system/internal/domain" // Importing domain models
	"sync"                          // Guards the record slice
)

// MemoryStore keeps records in process memory
type MemoryStore struct {
	mu      sync.RWMutex          // Guards records
	records []domain.SurveyRecord // Records in insertion order
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// InsertRecord appends a copy of record
func (s *MemoryStore) InsertRecord(_ context.Context, record domain.SurveyRecord) error {
	if err := checkRecord(record); err != nil {
		return err
	}
	expenses := make(map[string]float64, len(record.Expenses)) // Copy so callers cannot mutate stored data
	for k, v := range record.Expenses {
		expenses[k] = v
	}
	record.Expenses = expenses
	s.mu.Lock()
	defer s.mu.Unlock()
	record.ID = uint(len(s.records) + 1) // Mimic an auto-increment key
	s.records = append(s.records, record)
	return nil
}

// FindAllRecords returns a snapshot of every stored record
func (s *MemoryStore) FindAllRecords(_ context.Context) ([]domain.SurveyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SurveyRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}
