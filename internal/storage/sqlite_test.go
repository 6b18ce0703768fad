package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liwesley02/order-up/internal/common"
	"github.com/liwesley02/order-up/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func makeTestRecord(i int, completedAt time.Time) *model.PrepTimeRecord {
	orderedAt := completedAt.Add(-12 * time.Minute)
	return &model.PrepTimeRecord{
		OrderID:         fmt.Sprintf("order-%03d", i),
		OrderedAt:       orderedAt,
		CompletedAt:     completedAt,
		PrepTimeMinutes: 12,
		DayOfWeek:       int(completedAt.Weekday()),
		HourOfDay:       completedAt.Hour(),
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.Migrate(context.Background()))

	version, err := store.schemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSavePrepTime(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)

	t.Run("saves and reads back a record", func(t *testing.T) {
		record := makeTestRecord(1, now)
		require.NoError(t, store.SavePrepTime(ctx, record))

		records, err := store.GetPrepTimes(ctx, now.Add(-time.Hour))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, record.OrderID, records[0].OrderID)
		assert.Equal(t, record.PrepTimeMinutes, records[0].PrepTimeMinutes)
		assert.Equal(t, record.DayOfWeek, records[0].DayOfWeek)
		assert.Equal(t, record.HourOfDay, records[0].HourOfDay)
	})

	t.Run("replaying the same order does not duplicate", func(t *testing.T) {
		record := makeTestRecord(1, now)
		record.PrepTimeMinutes = 20
		require.NoError(t, store.SavePrepTime(ctx, record))

		records, err := store.GetPrepTimes(ctx, now.Add(-time.Hour))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 20, records[0].PrepTimeMinutes)
	})

	t.Run("rejects nil record", func(t *testing.T) {
		err := store.SavePrepTime(ctx, nil)
		assert.ErrorIs(t, err, ErrNilRecord)
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		record := makeTestRecord(2, now)
		record.OrderID = "  "
		err := store.SavePrepTime(ctx, record)
		assert.ErrorIs(t, err, ErrEmptyString)
	})

	t.Run("rejects completion before ordering", func(t *testing.T) {
		record := makeTestRecord(3, now)
		record.CompletedAt = record.OrderedAt.Add(-time.Minute)
		err := store.SavePrepTime(ctx, record)
		assert.ErrorIs(t, err, ErrInvalidTime)
	})
}

func TestGetPrepTimesWindow(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for i, age := range []time.Duration{10 * time.Minute, 2 * time.Hour, 26 * time.Hour} {
		require.NoError(t, store.SavePrepTime(ctx, makeTestRecord(i+1, now.Add(-age))))
	}

	t.Run("filters by since", func(t *testing.T) {
		records, err := store.GetPrepTimes(ctx, now.Add(-time.Hour))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "order-001", records[0].OrderID)
	})

	t.Run("returns oldest first", func(t *testing.T) {
		records, err := store.GetPrepTimes(ctx, now.Add(-48*time.Hour))
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "order-003", records[0].OrderID)
		assert.Equal(t, "order-001", records[2].OrderID)
	})

	t.Run("empty window returns no records", func(t *testing.T) {
		records, err := store.GetPrepTimes(ctx, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestPrunePrepTimes(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for i, age := range []time.Duration{time.Hour, 8 * 24 * time.Hour, 9 * 24 * time.Hour} {
		require.NoError(t, store.SavePrepTime(ctx, makeTestRecord(i+1, now.Add(-age))))
	}

	deleted, err := store.PrunePrepTimes(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	records, err := store.GetPrepTimes(ctx, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "order-001", records[0].OrderID)
}

func TestSettings(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("missing key returns not found", func(t *testing.T) {
		_, err := store.GetSetting(ctx, "max_batch_capacity")
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.SetSetting(ctx, "max_batch_capacity", "5"))

		value, err := store.GetSetting(ctx, "max_batch_capacity")
		require.NoError(t, err)
		assert.Equal(t, "5", value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.SetSetting(ctx, "max_batch_capacity", "8"))

		value, err := store.GetSetting(ctx, "max_batch_capacity")
		require.NoError(t, err)
		assert.Equal(t, "8", value)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		err := store.SetSetting(ctx, "", "5")
		assert.ErrorIs(t, err, ErrEmptyString)
	})
}
