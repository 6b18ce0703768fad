// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/liwesley02/order-up/internal/model"
)

// Storage defines the contract for our persistence layer: prep-time
// telemetry and runtime settings.
type Storage interface {
	// Prep-time telemetry
	SavePrepTime(ctx context.Context, record *model.PrepTimeRecord) error
	GetPrepTimes(ctx context.Context, since time.Time) ([]model.PrepTimeRecord, error)
	PrunePrepTimes(ctx context.Context, before time.Time) (int64, error)

	// Settings
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// Setting keys persisted in storage.
const (
	SettingMaxBatchCapacity = "max_batch_capacity"
)
