package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/liwesley02/order-up/internal/common"
	"github.com/liwesley02/order-up/internal/model"
)

// FileFeed reads order snapshots from a JSON file. The file holds either
// a bare array of orders or an object with an "orders" array, matching
// the export format of the order tablet.
type FileFeed struct {
	path string
}

// NewFileFeed creates a feed backed by a JSON snapshot file.
func NewFileFeed(path string) (*FileFeed, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: feed file path", common.ErrMissingConfig)
	}
	return &FileFeed{path: path}, nil
}

type snapshotEnvelope struct {
	Orders []model.Order `json:"orders"`
}

// Fetch reads and parses the snapshot file. The file is re-read on every
// call so an external process can keep it current.
func (f *FileFeed) Fetch(ctx context.Context) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", common.ErrFeedUnavailable, f.path, err)
	}

	return parseSnapshot(data)
}

// parseSnapshot accepts both envelope and bare-array snapshot layouts.
func parseSnapshot(data []byte) ([]model.Order, error) {
	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err == nil {
		return orders, nil
	}

	var envelope snapshotEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse order snapshot: %w", err)
	}
	return envelope.Orders, nil
}
