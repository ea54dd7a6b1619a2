package db_test

import (
	"context"
	"testing"

	"survey_system/internal/db"
	"survey_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()

	records, err := store.FindAllRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	expenses := map[string]float64{domain.Shopping: 10}
	require.NoError(t, store.InsertRecord(ctx, domain.SurveyRecord{Age: 30, Gender: "F", Expenses: expenses}))
	require.NoError(t, store.InsertRecord(ctx, domain.SurveyRecord{Age: 40, Gender: "M"}))
	expenses[domain.Shopping] = 99 // Mutating the caller's map must not leak into the store

	records, err = store.FindAllRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 30, records[0].Age)
	assert.Equal(t, 10.0, records[0].Expense(domain.Shopping))
	assert.Equal(t, 40, records[1].Age)
	assert.Equal(t, uint(2), records[1].ID)
}

func TestMemoryStore_RejectsUnknownCategory(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()

	err := store.InsertRecord(ctx, domain.SurveyRecord{Age: 30, Expenses: map[string]float64{"rent": 900}})
	assert.ErrorIs(t, err, db.ErrUnknownCategory)

	records, err := store.FindAllRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
