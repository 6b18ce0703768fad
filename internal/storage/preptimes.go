package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/liwesley02/order-up/internal/model"
)

// SavePrepTime persists a prep time record. Saving the same order twice
// replaces the prior row, so completion replays are harmless.
func (s *SQLiteStorage) SavePrepTime(ctx context.Context, record *model.PrepTimeRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePrepTimeRecord(record); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prep_times (order_id, ordered_at, completed_at, prep_time_minutes, day_of_week, hour_of_day)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(order_id) DO UPDATE SET
			ordered_at = excluded.ordered_at,
			completed_at = excluded.completed_at,
			prep_time_minutes = excluded.prep_time_minutes,
			day_of_week = excluded.day_of_week,
			hour_of_day = excluded.hour_of_day
	`, record.OrderID, record.OrderedAt.UTC(), record.CompletedAt.UTC(),
		record.PrepTimeMinutes, record.DayOfWeek, record.HourOfDay)
	if err != nil {
		return fmt.Errorf("failed to save prep time for order %s: %w", record.OrderID, err)
	}
	return nil
}

// GetPrepTimes returns records completed at or after since, oldest first.
func (s *SQLiteStorage) GetPrepTimes(ctx context.Context, since time.Time) ([]model.PrepTimeRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT order_id, ordered_at, completed_at, prep_time_minutes, day_of_week, hour_of_day
		FROM prep_times
		WHERE completed_at >= ?
		ORDER BY completed_at ASC
	`, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query prep times: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.PrepTimeRecord
	for rows.Next() {
		var record model.PrepTimeRecord
		if err := rows.Scan(
			&record.OrderID,
			&record.OrderedAt,
			&record.CompletedAt,
			&record.PrepTimeMinutes,
			&record.DayOfWeek,
			&record.HourOfDay,
		); err != nil {
			return nil, fmt.Errorf("failed to scan prep time record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate prep times: %w", err)
	}
	return records, nil
}

// PrunePrepTimes deletes records completed before the cutoff and reports
// how many rows were removed.
func (s *SQLiteStorage) PrunePrepTimes(ctx context.Context, before time.Time) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM prep_times WHERE completed_at < ?`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune prep times: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned prep times: %w", err)
	}
	return deleted, nil
}
