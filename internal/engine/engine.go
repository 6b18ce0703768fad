// Package engine wires the order feed, item aggregation, batch
// lifecycle, and prep-time tracking into one synchronized facade.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/liwesley02/order-up/internal/batch"
	"github.com/liwesley02/order-up/internal/batcher"
	"github.com/liwesley02/order-up/internal/category"
	"github.com/liwesley02/order-up/internal/common"
	"github.com/liwesley02/order-up/internal/feed"
	"github.com/liwesley02/order-up/internal/match"
	"github.com/liwesley02/order-up/internal/model"
	"github.com/liwesley02/order-up/internal/preptime"
	"github.com/liwesley02/order-up/internal/service"
)

// Config holds configuration options for the engine.
type Config struct {
	// PollInterval is how often Run fetches a fresh snapshot.
	PollInterval time.Duration
	// CleanupInterval is how often completed-order and new-order TTLs
	// are enforced.
	CleanupInterval time.Duration
	// Retry governs feed fetches inside Run.
	Retry service.RetryOptions
	// Batch configures the batch lifecycle.
	Batch batch.Config
	// Category configures item classification.
	Category category.Config
	// Matcher configures canonical item keying.
	Matcher match.Config
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PollInterval:    5 * time.Second,
		CleanupInterval: 5 * time.Second,
		Retry: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     10 * time.Second,
			Multiplier:   2.0,
		},
		Batch:    batch.DefaultConfig(),
		Category: category.DefaultConfig(),
		Matcher:  match.Config{},
	}
}

// Engine owns the live batching state. All reads and writes go through
// its mutex so the run loop and interactive views never race.
type Engine struct {
	feed       feed.Feed
	storage    service.Storage
	matcher    *match.Matcher
	categories *category.Manager
	items      *batcher.Batcher
	batches    *batch.Manager
	prepTimes  *preptime.Tracker
	cfg        Config
	mu         sync.Mutex
}

// New creates an engine with default configuration. Storage may be nil;
// prep times and capacity then live in memory only.
func New(orderFeed feed.Feed, storage service.Storage) *Engine {
	return NewWithConfig(orderFeed, storage, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(orderFeed feed.Feed, storage service.Storage, cfg Config) *Engine {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultConfig().CleanupInterval
	}

	matcher := match.NewWithConfig(cfg.Matcher)
	categories := category.NewWithConfig(cfg.Category)

	trackerOpts := []preptime.Option{}
	if storage != nil {
		trackerOpts = append(trackerOpts, preptime.WithStorage(storage))
	}
	prepTimes := preptime.New(trackerOpts...)

	return &Engine{
		feed:       orderFeed,
		storage:    storage,
		matcher:    matcher,
		categories: categories,
		items:      batcher.New(matcher, categories),
		batches:    batch.NewWithConfig(prepTimes, matcher, categories, cfg.Batch),
		prepTimes:  prepTimes,
		cfg:        cfg,
	}
}

// Load restores persisted state: prep-time history and the saved batch
// capacity. Call once before Run or Process.
func (e *Engine) Load(ctx context.Context) error {
	if e.storage == nil {
		return nil
	}

	if err := e.prepTimes.Load(ctx); err != nil {
		return fmt.Errorf("failed to load prep times: %w", err)
	}

	value, err := e.storage.GetSetting(ctx, service.SettingMaxBatchCapacity)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load batch capacity: %w", err)
	}

	capacity, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("ignoring malformed batch capacity setting", "value", value)
		return nil
	}

	e.mu.Lock()
	e.batches.SetCapacity(capacity)
	e.mu.Unlock()
	slog.Info("restored batch capacity", "capacity", capacity)
	return nil
}

// Process fetches one snapshot from the feed and reconciles it.
func (e *Engine) Process(ctx context.Context) error {
	var orders []model.Order
	err := common.WithRetry(ctx, func() error {
		var fetchErr error
		orders, fetchErr = e.feed.Fetch(ctx)
		return fetchErr
	}, e.cfg.Retry)
	if err != nil {
		return fmt.Errorf("failed to fetch orders: %w", err)
	}

	e.Refresh(orders, time.Now())
	return nil
}

// Refresh reconciles a full order snapshot at the given instant. Calling
// it twice with the same snapshot leaves all state unchanged.
func (e *Engine) Refresh(orders []model.Order, now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	live := make([]model.Order, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		if order.Completed {
			// Completions flagged in the snapshot carry their own
			// timestamps; vanished orders are handled by Assign.
			completedAt := now
			if order.CompletedAt != nil {
				completedAt = *order.CompletedAt
			}
			e.prepTimes.TrackOrderCompletion(order.ID, order.OrderedAt, completedAt)
			continue
		}
		live = append(live, order.Clone())
		e.items.AddOrder(order.Clone())
	}

	e.batches.Assign(live, now)
}

// Run polls the feed until the context is canceled, enforcing cleanup
// TTLs between polls. Feed outages are logged and retried on the next
// tick rather than stopping the loop.
func (e *Engine) Run(ctx context.Context) error {
	slog.Info("starting batching engine",
		"poll_interval", e.cfg.PollInterval,
		"cleanup_interval", e.cfg.CleanupInterval)

	if err := e.Process(ctx); err != nil {
		slog.Error("initial fetch failed", "error", err)
	}

	poll := time.NewTicker(e.cfg.PollInterval)
	defer poll.Stop()
	cleanup := time.NewTicker(e.cfg.CleanupInterval)
	defer cleanup.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("batching engine stopped")
			return ctx.Err()
		case <-poll.C:
			if err := e.Process(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				if common.IsRetryable(err) {
					slog.Warn("snapshot fetch failed, will retry next tick", "error", err)
				} else {
					common.LogError(err, "snapshot fetch failed", nil)
				}
			}
		case <-cleanup.C:
			e.Cleanup(time.Now())
		}
	}
}

// Cleanup enforces the completed-order and new-order TTLs.
func (e *Engine) Cleanup(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.batches.CleanupCompletedOrders(now)
	e.batches.ClearNewOrderStatus(now)
}

// SetCapacity changes the capacity of batches created from now on and
// persists the setting when storage is available.
func (e *Engine) SetCapacity(ctx context.Context, capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: batch capacity must be at least 1", common.ErrInvalidConfig)
	}

	e.mu.Lock()
	e.batches.SetCapacity(capacity)
	e.mu.Unlock()

	if e.storage == nil {
		return nil
	}
	if err := e.storage.SetSetting(ctx, service.SettingMaxBatchCapacity, strconv.Itoa(capacity)); err != nil {
		return fmt.Errorf("failed to persist batch capacity: %w", err)
	}
	return nil
}

// CompleteBatch marks a batch done by its number.
func (e *Engine) CompleteBatch(number int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.batches.CompleteBatch(number)
}
