package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/liwesley02/order-up/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrNilRecord   = errors.New("record cannot be nil")
	ErrInvalidTime = errors.New("completed time must not precede ordered time")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validatePrepTimeRecord validates a single prep time record.
func validatePrepTimeRecord(record *model.PrepTimeRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record", ErrNilRecord)
	}
	if err := validateString(record.OrderID, "record.OrderID"); err != nil {
		return err
	}
	if record.CompletedAt.Before(record.OrderedAt) {
		return fmt.Errorf("%w: order %s", ErrInvalidTime, record.OrderID)
	}
	return nil
}
