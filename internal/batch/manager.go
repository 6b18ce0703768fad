// Package batch assigns orders to sequential capacity-bounded batches
// and tracks their lifecycle, urgency, and completion.
package batch

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/liwesley02/order-up/internal/category"
	"github.com/liwesley02/order-up/internal/match"
	"github.com/liwesley02/order-up/internal/model"
)

// PrepTimes is the slice of the prep-time tracker the manager needs for
// urgency scoring and completion telemetry.
type PrepTimes interface {
	TrackOrderCompletion(orderID string, orderedAt, completedAt time.Time)
	LastHourAverage() model.PrepTimeAverage
	TodayAverage() model.PrepTimeAverage
}

// Config holds configuration options for the batch manager.
type Config struct {
	// Capacity is the order capacity of newly created batches.
	Capacity int
	// CompletedOrderTTL is how long a completed order stays visible in
	// its batch before cleanup removes it.
	CompletedOrderTTL time.Duration
	// NewOrderTTL is how long an order keeps its "new" highlight.
	NewOrderTTL time.Duration
	// UrgentThresholdMinutes and WarningThresholdMinutes are the fixed
	// elapsed-time policy cutoffs.
	UrgentThresholdMinutes  int
	WarningThresholdMinutes int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Capacity:                5,
		CompletedOrderTTL:       30 * time.Second,
		NewOrderTTL:             30 * time.Second,
		UrgentThresholdMinutes:  15,
		WarningThresholdMinutes: 8,
	}
}

// record is one batch. Batches are created lazily and never deleted;
// they only move forward through active -> locked -> completed.
type record struct {
	createdAt   time.Time
	orders      map[string]*model.BatchOrder
	items       map[string]*model.BatchItem
	newOrderIDs map[string]time.Time
	id          string
	orderIDs    []string
	itemKeys    []string
	number      int
	capacity    int
	locked      bool
	completed   bool
}

// Manager owns all batches. All mutation happens synchronously within a
// single reconciliation pass; idempotence of Assign stands in for
// locking (the same snapshot may be delivered repeatedly).
type Manager struct {
	prepTimes    PrepTimes
	matcher      *match.Matcher
	categories   *category.Manager
	orderToBatch map[string]*record
	batches      []*record
	cfg          Config
	nextNumber   int
}

// New creates a batch manager with default configuration.
func New(prepTimes PrepTimes, matcher *match.Matcher, categories *category.Manager) *Manager {
	return NewWithConfig(prepTimes, matcher, categories, DefaultConfig())
}

// NewWithConfig creates a batch manager with custom configuration.
func NewWithConfig(prepTimes PrepTimes, matcher *match.Matcher, categories *category.Manager, cfg Config) *Manager {
	if cfg.Capacity < 1 {
		cfg.Capacity = DefaultConfig().Capacity
	}
	if cfg.CompletedOrderTTL <= 0 {
		cfg.CompletedOrderTTL = DefaultConfig().CompletedOrderTTL
	}
	if cfg.NewOrderTTL <= 0 {
		cfg.NewOrderTTL = DefaultConfig().NewOrderTTL
	}
	if cfg.UrgentThresholdMinutes <= 0 {
		cfg.UrgentThresholdMinutes = DefaultConfig().UrgentThresholdMinutes
	}
	if cfg.WarningThresholdMinutes <= 0 {
		cfg.WarningThresholdMinutes = DefaultConfig().WarningThresholdMinutes
	}
	return &Manager{
		prepTimes:    prepTimes,
		matcher:      matcher,
		categories:   categories,
		orderToBatch: make(map[string]*record),
		cfg:          cfg,
		nextNumber:   1,
	}
}

// SetCapacity changes the capacity used for batches created from now on.
// Existing batches keep the capacity they were created with.
func (m *Manager) SetCapacity(capacity int) {
	if capacity < 1 {
		slog.Warn("ignoring invalid batch capacity", "capacity", capacity)
		return
	}
	m.cfg.Capacity = capacity
}

// batchForOrder returns the batch a new order should join: the current
// (most recently created) unlocked batch with spare capacity, else the
// first such batch in creation order, else a newly created batch. FIFO:
// a locked batch is never revisited for new assignment.
func (m *Manager) batchForOrder() *record {
	if n := len(m.batches); n > 0 {
		current := m.batches[n-1]
		if current.accepting() {
			return current
		}
	}
	for _, b := range m.batches {
		if b.accepting() {
			return b
		}
	}
	return m.createBatch()
}

func (b *record) accepting() bool {
	return !b.locked && !b.completed && len(b.orders) < b.capacity
}

func (m *Manager) createBatch() *record {
	b := &record{
		id:          fmt.Sprintf("batch-%d", m.nextNumber),
		number:      m.nextNumber,
		capacity:    m.cfg.Capacity,
		createdAt:   time.Now(),
		orders:      make(map[string]*model.BatchOrder),
		items:       make(map[string]*model.BatchItem),
		newOrderIDs: make(map[string]time.Time),
	}
	m.nextNumber++
	m.batches = append(m.batches, b)
	slog.Info("created batch", "batch", b.number, "capacity", b.capacity)
	return b
}

// Assign reconciles the full live order snapshot against the batches.
// It is safe to call repeatedly with the same snapshot: a second call
// with identical input leaves every batch unchanged.
func (m *Manager) Assign(orders []model.Order, now time.Time) {
	incoming := make(map[string]bool, len(orders))
	for i := range orders {
		incoming[orders[i].ID] = true
	}

	// Orders that vanished from the feed and are not yet completed just
	// got picked up; record the completion.
	for orderID, b := range m.orderToBatch {
		if incoming[orderID] {
			continue
		}
		rec := b.orders[orderID]
		if rec == nil || rec.Completed {
			continue
		}
		rec.Completed = true
		completedAt := now
		rec.CompletedAt = &completedAt
		if m.prepTimes != nil {
			m.prepTimes.TrackOrderCompletion(orderID, rec.Order.OrderedAt, now)
		}
		slog.Info("order completed", "order_id", orderID, "batch", b.number)
	}

	// Unlocked batches re-derive their item maps from the live snapshot;
	// locked batches keep their frozen item view.
	for _, b := range m.batches {
		if !b.locked {
			b.items = make(map[string]*model.BatchItem)
			b.itemKeys = nil
		}
	}

	// Oldest orders first so per-item accumulation reflects wait time.
	sorted := make([]model.Order, len(orders))
	for i := range orders {
		sorted[i] = orders[i].Clone()
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ElapsedMinutes > sorted[j].ElapsedMinutes
	})

	for i := range sorted {
		order := &sorted[i]
		if order.ID == "" {
			slog.Warn("skipping order without id in snapshot", "number", order.Number)
			continue
		}

		b, assigned := m.orderToBatch[order.ID]
		if assigned {
			if rec := b.orders[order.ID]; rec != nil && !rec.Completed {
				rec.Order = order.Clone()
			}
		} else {
			b = m.batchForOrder()
			b.orders[order.ID] = &model.BatchOrder{
				Order:   order.Clone(),
				AddedAt: now,
			}
			b.orderIDs = append(b.orderIDs, order.ID)
			b.newOrderIDs[order.ID] = now
			m.orderToBatch[order.ID] = b
			if len(b.orders) >= b.capacity {
				b.locked = true
				slog.Info("batch locked", "batch", b.number, "orders", len(b.orders))
			}
		}

		m.accumulateItems(b, order)
	}
}

// accumulateItems folds an order's items into its batch's local item
// map. The per-item order list guards against adding the same order's
// contribution twice within one reconciliation pass.
func (m *Manager) accumulateItems(b *record, order *model.Order) {
	for i := range order.Items {
		item := &order.Items[i]
		info := m.categoryInfo(item)
		key := m.matcher.ItemKey(item, string(info.TopCategory))

		existing, ok := b.items[key]
		if !ok {
			existing = &model.BatchItem{
				Key:      key,
				Name:     item.Name,
				BaseName: item.BaseName,
				Size:     item.Size,
			}
			if existing.Size == "" {
				existing.Size = match.NoSize
			}
			ci := info.Clone()
			existing.CategoryInfo = &ci
			if len(item.Modifiers) > 0 {
				existing.Modifiers = make([]string, len(item.Modifiers))
				copy(existing.Modifiers, item.Modifiers)
			}
			b.items[key] = existing
			b.itemKeys = append(b.itemKeys, key)
		}

		if existing.HasOrder(order.ID) {
			continue
		}
		existing.OrderIDs = append(existing.OrderIDs, order.ID)
		existing.Quantity += item.EffectiveQuantity()
	}
}

func (m *Manager) categoryInfo(item *model.Item) model.CategoryInfo {
	if item.CategoryInfo != nil {
		return *item.CategoryInfo
	}
	return m.categories.Categorize(item.Name, item.Size, category.ItemData{
		Sauce:     item.ModifierDetails.Sauce,
		Modifiers: item.Modifiers,
	})
}

// urgency scores a batch from the longest-waiting non-completed order,
// flagging it urgent early when the wait exceeds the observed average
// prep time.
func (m *Manager) urgency(b *record, now time.Time) model.Urgency {
	maxElapsed := 0
	for _, rec := range b.orders {
		if rec.Completed {
			continue
		}
		if elapsed := orderElapsed(rec, now); elapsed > maxElapsed {
			maxElapsed = elapsed
		}
	}

	runningLate := false
	if m.prepTimes != nil && maxElapsed > 0 {
		avg := m.prepTimes.LastHourAverage()
		if avg.OrderCount == 0 {
			avg = m.prepTimes.TodayAverage()
		}
		// OrderCount == 0 means no estimate, never a zero-minute one.
		if avg.OrderCount > 0 && float64(maxElapsed) > avg.AverageMinutes {
			runningLate = true
		}
	}

	switch {
	case maxElapsed >= m.cfg.UrgentThresholdMinutes || runningLate:
		return model.UrgencyUrgent
	case maxElapsed >= m.cfg.WarningThresholdMinutes:
		return model.UrgencyWarning
	default:
		return model.UrgencyNormal
	}
}

// orderElapsed derives the current wait in whole minutes, never less
// than the feed-reported elapsed time.
func orderElapsed(rec *model.BatchOrder, now time.Time) int {
	elapsed := rec.Order.ElapsedMinutes
	if !rec.Order.OrderedAt.IsZero() {
		if derived := int(now.Sub(rec.Order.OrderedAt).Minutes()); derived > elapsed {
			elapsed = derived
		}
	}
	return elapsed
}

// CleanupCompletedOrders removes completed orders from their batches
// once the completion TTL has passed. Batch records themselves survive.
func (m *Manager) CleanupCompletedOrders(now time.Time) int {
	removed := 0
	for _, b := range m.batches {
		for _, orderID := range append([]string(nil), b.orderIDs...) {
			rec := b.orders[orderID]
			if rec == nil || !rec.Completed || rec.CompletedAt == nil {
				continue
			}
			if now.Sub(*rec.CompletedAt) < m.cfg.CompletedOrderTTL {
				continue
			}
			delete(b.orders, orderID)
			b.orderIDs = removeString(b.orderIDs, orderID)
			delete(b.newOrderIDs, orderID)
			delete(m.orderToBatch, orderID)
			removed++
		}
	}
	if removed > 0 {
		slog.Debug("cleaned up completed orders", "count", removed)
	}
	return removed
}

// ClearNewOrderStatus drops the "new" highlight from orders older than
// the new-order TTL, independent of completion.
func (m *Manager) ClearNewOrderStatus(now time.Time) int {
	cleared := 0
	for _, b := range m.batches {
		for orderID, addedAt := range b.newOrderIDs {
			if now.Sub(addedAt) >= m.cfg.NewOrderTTL {
				delete(b.newOrderIDs, orderID)
				cleared++
			}
		}
	}
	return cleared
}

// CompleteBatch marks a batch completed by its number, removing it from
// active views. The transition is not reversible.
func (m *Manager) CompleteBatch(number int) bool {
	for _, b := range m.batches {
		if b.number != number {
			continue
		}
		b.completed = true
		b.locked = true
		for _, orderID := range b.orderIDs {
			delete(m.orderToBatch, orderID)
		}
		slog.Info("batch completed", "batch", number)
		return true
	}
	return false
}

func removeString(list []string, target string) []string {
	for i, s := range list {
		if s == target {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
