// Package feed provides order sources for the batching engine. A feed is
// any source that can produce the current snapshot of live orders.
package feed

import (
	"context"

	"github.com/liwesley02/order-up/internal/model"
)

// Feed defines the contract for fetching the current order snapshot.
// Implementations must return the full set of live orders on every call;
// the engine reconciles against previous snapshots itself.
type Feed interface {
	Fetch(ctx context.Context) ([]model.Order, error)
}
