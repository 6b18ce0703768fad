package engine

import (
	"time"

	"github.com/liwesley02/order-up/internal/model"
)

// BatchedItems returns the aggregated cross-order item list.
func (e *Engine) BatchedItems() []model.BatchedItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.items.BatchedItems()
}

// ItemsByCategory returns aggregated items grouped by display category.
func (e *Engine) ItemsByCategory() []model.CategoryGroup {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.items.ItemsByCategory()
}

// ItemsBySize returns aggregated items grouped by size.
func (e *Engine) ItemsBySize() []model.SizeGroup {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.items.ItemsBySize()
}

// RemoveItem drops an aggregated item by its canonical key.
func (e *Engine) RemoveItem(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.items.RemoveItem(key)
}

// UpdateQuantity rewrites one order's contribution to an aggregated item.
func (e *Engine) UpdateQuantity(key, orderID string, quantity int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.items.UpdateQuantity(key, orderID, quantity)
}

// Batches returns views of every non-completed batch.
func (e *Engine) Batches(now time.Time) []model.BatchView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.batches.Batches(now)
}

// BatchUrgency scores a single batch by number.
func (e *Engine) BatchUrgency(number int, now time.Time) (model.Urgency, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.batches.BatchUrgency(number, now)
}

// BatchBySize returns one batch's items grouped by size.
func (e *Engine) BatchBySize(index int, now time.Time) ([]model.SizeGroup, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.batches.BatchBySize(index, now)
}

// BatchByCategory returns one batch's items grouped by category.
func (e *Engine) BatchByCategory(index int, now time.Time) ([]model.CategoryGroup, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.batches.BatchByCategory(index, now)
}

// Stats summarizes the current batch population.
func (e *Engine) Stats(now time.Time) model.BatchStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.batches.Stats(now)
}

// LastHourAverage reports the trailing-hour prep-time average.
func (e *Engine) LastHourAverage() model.PrepTimeAverage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prepTimes.LastHourAverage()
}

// TodayAverage reports the since-midnight prep-time average.
func (e *Engine) TodayAverage() model.PrepTimeAverage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prepTimes.TodayAverage()
}

// PrepTimeRecordCount reports how many completions are retained.
func (e *Engine) PrepTimeRecordCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prepTimes.RecordCount()
}
