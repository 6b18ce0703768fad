package model

import "time"

// Urgency is the derived priority tier of a batch.
type Urgency string

// Urgency tiers.
const (
	UrgencyNormal  Urgency = "normal"
	UrgencyWarning Urgency = "warning"
	UrgencyUrgent  Urgency = "urgent"
)

// BatchState tracks the lifecycle of a batch. Transitions are one-way:
// active -> locked -> completed.
type BatchState string

// Batch states.
const (
	BatchStateActive    BatchState = "active"
	BatchStateLocked    BatchState = "locked"
	BatchStateCompleted BatchState = "completed"
)

// BatchItem is the per-batch aggregation of one canonical item key,
// distinct from the global aggregation in BatchedItem.
type BatchItem struct {
	Key          string        `json:"key"`
	Name         string        `json:"name"`
	BaseName     string        `json:"baseName,omitempty"`
	Size         string        `json:"size"`
	CategoryInfo *CategoryInfo `json:"categoryInfo,omitempty"`
	Modifiers    []string      `json:"modifiers,omitempty"`
	OrderIDs     []string      `json:"orderIds"`
	Quantity     int           `json:"quantity"`
}

// HasOrder reports whether an order already contributed to this item
// within the current reconciliation pass.
func (bi *BatchItem) HasOrder(orderID string) bool {
	for _, id := range bi.OrderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}

// BatchOrder is an order's membership record inside a batch.
type BatchOrder struct {
	AddedAt     time.Time  `json:"addedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Order       Order      `json:"order"`
	Completed   bool       `json:"completed"`
}

// BatchView is the read-only snapshot of one batch handed to renderers.
type BatchView struct {
	CreatedAt   time.Time    `json:"createdAt"`
	ID          string       `json:"id"`
	State       BatchState   `json:"state"`
	Urgency     Urgency      `json:"urgency"`
	Orders      []BatchOrder `json:"orders"`
	Items       []BatchItem  `json:"items"`
	NewOrderIDs []string     `json:"newOrderIds,omitempty"`
	Number      int          `json:"number"`
	Capacity    int          `json:"capacity"`
	Locked      bool         `json:"locked"`
}

// BatchStats summarizes all active batches for the dashboard.
type BatchStats struct {
	TotalBatches    int `json:"totalBatches"`
	ActiveBatches   int `json:"activeBatches"`
	LockedBatches   int `json:"lockedBatches"`
	TotalOrders     int `json:"totalOrders"`
	CompletedOrders int `json:"completedOrders"`
	UrgentBatches   int `json:"urgentBatches"`
	WarningBatches  int `json:"warningBatches"`
}
