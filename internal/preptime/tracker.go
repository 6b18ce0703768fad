// Package preptime records observed order completion durations and
// computes the rolling averages used for urgency and ETA estimates.
package preptime

import (
	"context"
	"log/slog"
	"time"

	"github.com/liwesley02/order-up/internal/model"
	"github.com/liwesley02/order-up/internal/service"
)

// RetentionPeriod is how long completion records are kept.
const RetentionPeriod = 7 * 24 * time.Hour

// Tracker keeps a rolling window of completion records. It can run
// purely in memory or write records through to storage.
type Tracker struct {
	now     func() time.Time
	storage service.Storage
	tracked map[string]bool
	records []model.PrepTimeRecord
}

// Option configures a tracker.
type Option func(*Tracker)

// WithStorage makes the tracker persist records and prune the persisted
// window alongside the in-memory one.
func WithStorage(storage service.Storage) Option {
	return func(t *Tracker) { t.storage = storage }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		now:     time.Now,
		tracked: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load restores the persisted window into memory. Without storage it is
// a no-op.
func (t *Tracker) Load(ctx context.Context) error {
	if t.storage == nil {
		return nil
	}

	records, err := t.storage.GetPrepTimes(ctx, t.now().Add(-RetentionPeriod))
	if err != nil {
		return err
	}

	t.records = records
	for _, record := range records {
		t.tracked[record.OrderID] = true
	}
	slog.Debug("loaded prep time records", "count", len(records))
	return nil
}

// TrackOrderCompletion records one completion. Re-tracking an order id
// is a no-op. Durations are floored to whole minutes.
func (t *Tracker) TrackOrderCompletion(orderID string, orderedAt, completedAt time.Time) {
	if orderID == "" || t.tracked[orderID] {
		return
	}
	if orderedAt.IsZero() || completedAt.Before(orderedAt) {
		slog.Warn("ignoring completion with invalid timestamps",
			"order_id", orderID,
			"ordered_at", orderedAt,
			"completed_at", completedAt)
		return
	}
	t.tracked[orderID] = true

	record := model.PrepTimeRecord{
		OrderID:         orderID,
		OrderedAt:       orderedAt,
		CompletedAt:     completedAt,
		PrepTimeMinutes: int(completedAt.Sub(orderedAt).Minutes()),
		DayOfWeek:       int(completedAt.Weekday()),
		HourOfDay:       completedAt.Hour(),
	}
	t.records = append(t.records, record)
	t.prune()

	if t.storage != nil {
		ctx := context.Background()
		if err := t.storage.SavePrepTime(ctx, &record); err != nil {
			slog.Warn("failed to persist prep time record", "order_id", orderID, "error", err)
		}
		if _, err := t.storage.PrunePrepTimes(ctx, t.now().Add(-RetentionPeriod)); err != nil {
			slog.Warn("failed to prune persisted prep times", "error", err)
		}
	}
}

// prune drops in-memory records older than the retention period.
func (t *Tracker) prune() {
	cutoff := t.now().Add(-RetentionPeriod)
	kept := t.records[:0]
	for _, record := range t.records {
		if record.CompletedAt.After(cutoff) {
			kept = append(kept, record)
		} else {
			delete(t.tracked, record.OrderID)
		}
	}
	t.records = kept
}

// LastHourAverage returns the mean prep time over the trailing hour.
// An OrderCount of zero means no estimate is available.
func (t *Tracker) LastHourAverage() model.PrepTimeAverage {
	return t.averageSince(t.now().Add(-time.Hour))
}

// TodayAverage returns the mean prep time since local midnight.
func (t *Tracker) TodayAverage() model.PrepTimeAverage {
	now := t.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.averageSince(midnight)
}

func (t *Tracker) averageSince(cutoff time.Time) model.PrepTimeAverage {
	sum, count := 0, 0
	for _, record := range t.records {
		if record.CompletedAt.Before(cutoff) {
			continue
		}
		sum += record.PrepTimeMinutes
		count++
	}
	if count == 0 {
		return model.PrepTimeAverage{}
	}
	return model.PrepTimeAverage{
		AverageMinutes: float64(sum) / float64(count),
		OrderCount:     count,
	}
}

// RecordCount reports how many records are in the rolling window.
func (t *Tracker) RecordCount() int {
	return len(t.records)
}
